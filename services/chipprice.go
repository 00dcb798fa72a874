package services

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pokernight/helpers"
	"pokernight/models"
)

// PriceTable loads the current color -> value mapping. Callers inside a
// transaction pass their tx handle so one recompute pass never mixes old
// and new prices.
func PriceTable(db *gorm.DB) (map[string]decimal.Decimal, error) {
	var rows []models.ChipPrice
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		prices[row.Color] = row.Value
	}
	return prices, nil
}

type ChipPriceUpdateResult struct {
	UpdatedCount        int `json:"updated_count"`
	RecalculatedPlayers int `json:"recalculated_players"`
}

// UpdateChipPrices applies an admin's new chip values and recomputes every
// player's total inside one transaction, so a partially applied price table
// is never observable. Session totals are frozen at check-in/check-out
// time; a price change only affects how future breakdowns convert, which is
// why the recompute is idempotent over the stored net winnings.
func UpdateChipPrices(db *gorm.DB, newPrices map[string]decimal.Decimal, actor string) (*ChipPriceUpdateResult, error) {
	for color, value := range newPrices {
		if !models.IsChipColor(color) {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownChipColor, color)
		}
		if !value.IsPositive() {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidChipValue, color)
		}
	}
	if len(newPrices) == 0 {
		return nil, models.ErrMissingChipData
	}

	result := &ChipPriceUpdateResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		before, err := PriceTable(tx)
		if err != nil {
			return err
		}

		for color, value := range newPrices {
			res := tx.Model(&models.ChipPrice{}).
				Where("color = ?", color).
				Update("value", helpers.RoundMoney(value))
			if res.Error != nil {
				return res.Error
			}
			result.UpdatedCount += int(res.RowsAffected)
		}

		after, err := PriceTable(tx)
		if err != nil {
			return err
		}

		beforeJSON, err := json.Marshal(before)
		if err != nil {
			return err
		}
		afterJSON, err := json.Marshal(after)
		if err != nil {
			return err
		}

		audit := models.AuditLogEntry{
			Actor:       actor,
			Action:      "chip_prices.update",
			TargetTable: "chip_prices",
			Before:      beforeJSON,
			After:       afterJSON,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		recalculated, err := RecalculateAll(tx)
		if err != nil {
			return err
		}
		result.RecalculatedPlayers = recalculated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
