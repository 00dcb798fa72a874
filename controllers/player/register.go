package player

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
)

type RegisterPlayerRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Experience  string `json:"experience"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	playerID := strings.TrimSpace(req.PlayerID)
	if !models.PlayerKeyPattern.MatchString(playerID) {
		return helpers.JSONError(c, "PLAYER_ID_MUST_BE_ALPHANUMERIC_3_TO_50")
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = playerID
	}

	player := models.Player{
		PlayerID:    playerID,
		DisplayName: displayName,
		Experience:  strings.TrimSpace(req.Experience),
	}

	if err := database.DB.Create(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.JSONErrorStatus(c, fiber.StatusConflict, "PLAYER_ALREADY_EXISTS", nil)
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_REGISTER_PLAYER", nil)
	}

	return helpers.JSONSuccess(c, "Player registered successfully", player)
}
