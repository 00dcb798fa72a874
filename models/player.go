package models

import (
	"regexp"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlayerKeyPattern is the format a player key must match: alphanumeric,
// 3 to 50 characters, immutable after registration.
var PlayerKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,50}$`)

type Player struct {
	gorm.Model

	PlayerID    string `gorm:"uniqueIndex;size:50;not null" json:"player_id"`
	DisplayName string `gorm:"size:64" json:"display_name"`
	Experience  string `gorm:"size:32" json:"experience"`
	IsAdmin     bool   `gorm:"default:false" json:"is_admin"`

	// Derived from completed sessions; only the winnings recalculation
	// writes this field.
	TotalWinnings decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_winnings"`

	Sessions []Session `gorm:"foreignKey:PlayerID;references:PlayerID"`
}
