package session

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

type UpdateSessionRequest struct {
	Date           *string          `json:"date"`
	StartTotal     *decimal.Decimal `json:"start_total"`
	StartBreakdown map[string]int   `json:"start_breakdown"`
	EndTotal       *decimal.Decimal `json:"end_total"`
	EndBreakdown   map[string]int   `json:"end_breakdown"`
	StartPhoto     *string          `json:"start_photo"`
	EndPhoto       *string          `json:"end_photo"`
}

// Update applies a corrective edit to one session. Players may only edit
// their own sessions; admins may edit anyone's.
func Update(c *fiber.Ctx) error {
	player, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helpers.JSONError(c, "INVALID_SESSION_ID")
	}

	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Date != nil {
		normalized, msg := normalizeDate(*req.Date)
		if msg != "" {
			return helpers.JSONError(c, msg)
		}
		req.Date = &normalized
	}
	for _, breakdown := range []map[string]int{req.StartBreakdown, req.EndBreakdown} {
		for _, count := range breakdown {
			if count < 0 {
				return helpers.JSONError(c, "CHIP_COUNTS_MUST_BE_NON_NEGATIVE")
			}
		}
	}

	existing, err := services.SessionByID(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", nil)
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}
	if existing.PlayerID != player.PlayerID && !player.IsAdmin {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "NOT_YOUR_SESSION", nil)
	}

	updated, err := services.UpdateSession(database.DB, uint(id), services.SessionUpdate{
		Date:           req.Date,
		StartTotal:     req.StartTotal,
		StartBreakdown: req.StartBreakdown,
		EndTotal:       req.EndTotal,
		EndBreakdown:   req.EndBreakdown,
		StartPhoto:     req.StartPhoto,
		EndPhoto:       req.EndPhoto,
	})
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", nil)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Moving an open session onto a date that already has one.
			return helpers.JSONErrorStatus(c, fiber.StatusConflict, "SESSION_ALREADY_OPEN", nil)
		}
		log.Printf("❌ Session %d update failed: %v\n", id, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Session updated successfully", updated)
}
