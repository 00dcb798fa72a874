package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/middlewares"
	"pokernight/models"
)

type LoginRequest struct {
	PlayerID string `json:"player_id"`
}

// Login is password-less: presenting a registered player key yields a
// bearer token for that player.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return helpers.JSONError(c, "PLAYER_ID_REQUIRED")
	}

	var player models.Player
	if err := database.DB.Where("player_id = ?", playerID).First(&player).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", nil)
	}

	token, err := middlewares.IssueToken(player)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_ISSUE_TOKEN", nil)
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token":  token,
		"player": player,
	})
}
