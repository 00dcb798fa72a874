package admin

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

type OverrideSessionRequest struct {
	NetWinnings *decimal.Decimal `json:"net_winnings"`
	Reason      string           `json:"reason"`
}

// OverrideSession forces a session's net winnings. The admin gate runs
// upstream; this handler only shapes the request and maps errors.
func OverrideSession(c *fiber.Ctx) error {
	actor, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helpers.JSONError(c, "INVALID_SESSION_ID")
	}

	var req OverrideSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.NetWinnings == nil {
		return helpers.JSONError(c, "NET_WINNINGS_REQUIRED")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return helpers.JSONError(c, "REASON_REQUIRED")
	}

	overridden, err := services.AdminOverride(database.DB, uint(id), *req.NetWinnings, reason, actor.PlayerID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", nil)
		}
		log.Printf("❌ Override of session %d by %s failed: %v\n", id, actor.PlayerID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Session overridden successfully", overridden)
}
