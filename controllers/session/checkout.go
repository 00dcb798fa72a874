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

type CheckoutRequest struct {
	Date      string           `json:"date"`
	Total     *decimal.Decimal `json:"total"`
	Breakdown map[string]int   `json:"breakdown"`
	PhotoRef  string           `json:"photo_ref"`
}

func CheckOut(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	var req CheckoutRequest
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

	closed, err := services.CheckOut(database.DB, player.PlayerID, date, req.Total, req.Breakdown, req.PhotoRef)
	if err != nil {
		if errors.Is(err, models.ErrNoActiveSession) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "NO_ACTIVE_SESSION", nil)
		}
		if errors.Is(err, models.ErrMissingChipData) {
			return helpers.JSONError(c, "TOTAL_OR_BREAKDOWN_REQUIRED")
		}
		log.Printf("❌ Check-out failed for %s on %s: %v\n", player.PlayerID, date, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Checked out successfully", closed)
}
