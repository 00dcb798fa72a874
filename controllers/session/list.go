package session

import (
	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

func List(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	sessions, err := services.PlayerSessions(database.DB, player.PlayerID)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_SESSIONS", nil)
	}

	return helpers.JSONSuccess(c, "Sessions retrieved successfully", sessions)
}

// Active answers the "am I checked in" question for one date. No session is
// a normal answer, not an error.
func Active(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	date, msg := normalizeDate(c.Query("date"))
	if msg != "" {
		return helpers.JSONError(c, msg)
	}

	active, err := services.ActiveSession(database.DB, player.PlayerID, date)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_SESSION", nil)
	}
	if active == nil {
		return helpers.JSONSuccess(c, "No active session", nil)
	}

	return helpers.JSONSuccess(c, "Active session retrieved successfully", active)
}
