package services

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
)

const leaderboardKey = "pokernight:leaderboard"

// RecalculatePlayer re-derives a player's lifetime total as the full sum of
// net winnings over their completed sessions and writes it back. It is the
// only writer of Player.TotalWinnings. Idempotent: rerunning it without
// intervening session changes produces the same total.
func RecalculatePlayer(tx *gorm.DB, playerID string) (decimal.Decimal, error) {
	var player models.Player
	if err := tx.Where("player_id = ?", playerID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, models.ErrPlayerNotFound
		}
		return decimal.Zero, err
	}

	var sessions []models.Session
	if err := tx.Where("player_id = ? AND is_completed = ?", playerID, true).
		Find(&sessions).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, s := range sessions {
		if s.NetWinnings != nil {
			total = total.Add(*s.NetWinnings)
		}
	}
	total = helpers.RoundMoney(total)

	if err := tx.Model(&player).Update("total_winnings", total).Error; err != nil {
		return decimal.Zero, err
	}

	cacheLeaderboardScore(playerID, total)
	return total, nil
}

// RecalculateAll reruns the per-player recompute for every player and
// reports how many were touched. Used after chip-price changes and by the
// reconciliation sweep.
func RecalculateAll(tx *gorm.DB) (int, error) {
	var players []models.Player
	if err := tx.Find(&players).Error; err != nil {
		return 0, err
	}

	for _, p := range players {
		if _, err := RecalculatePlayer(tx, p.PlayerID); err != nil {
			return 0, err
		}
	}
	return len(players), nil
}

// Best effort: the sorted set is a cache of players.total_winnings, never
// the source of truth, so a Redis failure must not fail the transaction.
func cacheLeaderboardScore(playerID string, total decimal.Decimal) {
	if database.Redis == nil {
		return
	}
	score, _ := total.Float64()
	err := database.Redis.ZAdd(context.Background(), leaderboardKey, redis.Z{
		Score:  score,
		Member: playerID,
	}).Err()
	if err != nil {
		log.Printf("⚠️  Failed to update leaderboard cache for %s: %v\n", playerID, err)
	}
}

// LeaderboardFromCache reads the top players from the Redis sorted set.
// Returns ok=false when the cache is absent or cold so callers can order by
// the database column instead.
func LeaderboardFromCache(limit int) ([]string, bool) {
	if database.Redis == nil {
		return nil, false
	}
	ids, err := database.Redis.ZRevRange(context.Background(), leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil || len(ids) == 0 {
		return nil, false
	}
	return ids, true
}
