package player

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
)

func Me(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	// Re-read so the response reflects any recalculation that happened
	// after the auth middleware loaded the row.
	var fresh models.Player
	if err := database.DB.Where("player_id = ?", player.PlayerID).First(&fresh).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", nil)
	}

	return helpers.JSONSuccess(c, "Profile retrieved successfully", fresh)
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Experience  *string `json:"experience"`
}

// UpdateMe edits the mutable profile fields. The player key and the
// winnings total are not editable here: the key is immutable and the total
// belongs to the recalculation.
func UpdateMe(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	updates := map[string]any{}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return helpers.JSONError(c, "DISPLAY_NAME_REQUIRED")
		}
		updates["display_name"] = name
	}
	if req.Experience != nil {
		updates["experience"] = strings.TrimSpace(*req.Experience)
	}
	if len(updates) == 0 {
		return helpers.JSONError(c, "NO_FIELDS_TO_UPDATE")
	}

	if err := database.DB.Model(&models.Player{}).
		Where("player_id = ?", player.PlayerID).
		Updates(updates).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_PROFILE", nil)
	}

	var fresh models.Player
	if err := database.DB.Where("player_id = ?", player.PlayerID).First(&fresh).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_PROFILE", nil)
	}

	return helpers.JSONSuccess(c, "Profile updated successfully", fresh)
}
