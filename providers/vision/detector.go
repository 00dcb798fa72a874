package vision

import (
	"math/rand"

	"pokernight/models"
)

// Detect stands in for the chip-detection service: it fabricates a
// plausible count per known color from the photo reference. There is no
// image recognition behind it and the counts are not reproducible.
func Detect(photoRef string) map[string]int {
	counts := make(map[string]int, len(models.ChipColors))
	for _, color := range models.ChipColors {
		counts[color] = rand.Intn(41)
	}
	return counts
}
