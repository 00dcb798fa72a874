package admin

import (
	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
)

func AuditTrail(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var entries []models.AuditLogEntry
	if err := database.DB.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_AUDIT_LOG", nil)
	}

	return helpers.JSONSuccess(c, "Audit log retrieved successfully", entries)
}
