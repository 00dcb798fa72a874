package admin

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

// ListChipPrices is readable by any authenticated player; clients need the
// table to preview a breakdown's value before checking in.
func ListChipPrices(c *fiber.Ctx) error {
	var rows []models.ChipPrice
	if err := database.DB.Order("color ASC").Find(&rows).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_CHIP_PRICES", nil)
	}
	return helpers.JSONSuccess(c, "Chip prices retrieved successfully", rows)
}

type UpdateChipPricesRequest struct {
	Prices map[string]decimal.Decimal `json:"prices"`
}

func UpdateChipPrices(c *fiber.Ctx) error {
	actor, ok := c.Locals("player").(models.Player)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_PLAYER_SESSION", nil)
	}

	var req UpdateChipPricesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if len(req.Prices) == 0 {
		return helpers.JSONError(c, "PRICES_REQUIRED")
	}

	result, err := services.UpdateChipPrices(database.DB, req.Prices, actor.PlayerID)
	if err != nil {
		if errors.Is(err, models.ErrUnknownChipColor) {
			return helpers.JSONError(c, "UNKNOWN_CHIP_COLOR")
		}
		if errors.Is(err, models.ErrInvalidChipValue) {
			return helpers.JSONError(c, "CHIP_VALUE_MUST_BE_POSITIVE")
		}
		log.Printf("❌ Chip price update by %s failed: %v\n", actor.PlayerID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Chip prices updated successfully", result)
}
