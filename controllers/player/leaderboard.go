package player

import (
	"github.com/gofiber/fiber/v2"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"
)

type leaderboardEntry struct {
	Rank          int    `json:"rank"`
	PlayerID      string `json:"player_id"`
	DisplayName   string `json:"display_name"`
	TotalWinnings string `json:"total_winnings"`
}

// Leaderboard orders players by lifetime winnings. The Redis sorted set is
// consulted first; a cold or absent cache falls back to ordering by the
// players table, which is always authoritative.
func Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var players []models.Player
	if ids, ok := services.LeaderboardFromCache(limit); ok {
		for _, id := range ids {
			var p models.Player
			if err := database.DB.Where("player_id = ?", id).First(&p).Error; err != nil {
				continue
			}
			players = append(players, p)
		}
	}

	if len(players) == 0 {
		if err := database.DB.
			Order("total_winnings DESC, player_id ASC").
			Limit(limit).
			Find(&players).Error; err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_LEADERBOARD", nil)
		}
	}

	entries := make([]leaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, leaderboardEntry{
			Rank:          i + 1,
			PlayerID:      p.PlayerID,
			DisplayName:   p.DisplayName,
			TotalWinnings: p.TotalWinnings.StringFixed(2),
		})
	}

	return helpers.JSONSuccess(c, "Leaderboard retrieved successfully", entries)
}
