package vision

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pokernight/database"
	"pokernight/helpers"
	visionprovider "pokernight/providers/vision"
	"pokernight/services"
)

type AnalyzeRequest struct {
	PhotoRef string `json:"photo_ref"`
}

// Analyze runs the mocked detector over an uploaded photo reference and
// prices the fabricated breakdown with the current chip table, so clients
// can pre-fill a check-in form.
func Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	photoRef := strings.TrimSpace(req.PhotoRef)
	if photoRef == "" {
		return helpers.JSONError(c, "PHOTO_REF_REQUIRED")
	}

	breakdown := visionprovider.Detect(photoRef)

	prices, err := services.PriceTable(database.DB)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_CHIP_PRICES", nil)
	}

	return helpers.JSONSuccess(c, "Photo analyzed successfully", fiber.Map{
		"request_id": uuid.New().String(),
		"photo_ref":  photoRef,
		"breakdown":  breakdown,
		"total":      services.TotalValue(breakdown, prices),
	})
}
