package admin

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

// RecalculatePlayer reruns the winnings recompute for one player on demand.
// The request paths keep totals in sync on their own; this is the manual
// repair lever after database surgery.
func RecalculatePlayer(c *fiber.Ctx) error {
	playerID := c.Params("player_id")

	total, err := services.RecalculatePlayer(database.DB, playerID)
	if err != nil {
		if errors.Is(err, models.ErrPlayerNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "PLAYER_NOT_FOUND", nil)
		}
		log.Printf("❌ Recalculation for %s failed: %v\n", playerID, err)
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "STORAGE_ERROR", nil)
	}

	return helpers.JSONSuccess(c, "Winnings recalculated successfully", fiber.Map{
		"player_id":      playerID,
		"total_winnings": total,
	})
}
