package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Session is one poker night for one player: checked in with a starting
// chip value, checked out with an ending one. The partial unique index
// keeps at most one open session per player per calendar date; a race
// between two concurrent check-ins is settled by the database, not by
// application code.
type Session struct {
	gorm.Model

	PlayerID string `gorm:"size:50;not null;index;uniqueIndex:udx_open_session,where:is_completed = false" json:"player_id"`
	Date     string `gorm:"size:10;not null;uniqueIndex:udx_open_session,where:is_completed = false" json:"date"`

	StartTotal     decimal.Decimal  `gorm:"type:numeric(12,2);default:0" json:"start_total"`
	StartBreakdown datatypes.JSON   `gorm:"type:jsonb" json:"start_breakdown,omitempty"`
	EndTotal       *decimal.Decimal `gorm:"type:numeric(12,2)" json:"end_total,omitempty"`
	EndBreakdown   datatypes.JSON   `gorm:"type:jsonb" json:"end_breakdown,omitempty"`

	// Set only when IsCompleted is true.
	NetWinnings *decimal.Decimal `gorm:"type:numeric(12,2)" json:"net_winnings,omitempty"`

	IsCompleted    bool   `gorm:"default:false;index" json:"is_completed"`
	AdminOverride  bool   `gorm:"default:false" json:"admin_override"`
	OverrideReason string `gorm:"size:255" json:"override_reason,omitempty"`

	// Opaque references owned by the upload service.
	StartPhoto string `gorm:"size:255" json:"start_photo,omitempty"`
	EndPhoto   string `gorm:"size:255" json:"end_photo,omitempty"`
}
