package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChipColors is the fixed set of chip colors the table knows about. One
// ChipPrice row exists per color.
var ChipColors = []string{"white", "red", "green", "black", "blue"}

type ChipPrice struct {
	gorm.Model

	Color string          `gorm:"uniqueIndex;size:16;not null" json:"color"`
	Value decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"value"`
}

func IsChipColor(color string) bool {
	for _, c := range ChipColors {
		if c == color {
			return true
		}
	}
	return false
}
