package session

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

type CheckinRequest struct {
	Date      string           `json:"date"`
	Total     *decimal.Decimal `json:"total"`
	Breakdown map[string]int   `json:"breakdown"`
	PhotoRef  string           `json:"photo_ref"`
}

func CheckIn(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	var req CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	date, msg := normalizeDate(req.Date)
	if msg != "" {
		return helpers.JSONError(c, msg)
	}
	if msg := validateChipData(req.Total, req.Breakdown); msg != "" {
		return helpers.JSONError(c, msg)
	}

	created, err := services.CheckIn(database.DB, player.PlayerID, date, req.Total, req.Breakdown, req.PhotoRef)
	if err != nil {
		var conflict *models.OpenSessionConflictError
		if errors.As(err, &conflict) {
			existing := conflict.Existing
			if existing == nil {
				// Lost the insert race; fetch the winner for the response.
				existing, _ = services.ActiveSession(database.DB, player.PlayerID, date)
			}
			return helpers.JSONErrorStatus(c, fiber.StatusConflict, "SESSION_ALREADY_OPEN", existing)
		}
		if errors.Is(err, models.ErrPlayerNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", nil)
		}
		if errors.Is(err, models.ErrMissingChipData) {
			return helpers.JSONError(c, "TOTAL_OR_BREAKDOWN_REQUIRED")
		}
		log.Printf("❌ Check-in failed for %s on %s: %v\n", player.PlayerID, date, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Checked in successfully", created)
}
