package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogEntry records one admin-privileged mutation. Entries are insert
// only: nothing in the application updates or deletes them.
type AuditLogEntry struct {
	gorm.Model

	RefID       string         `gorm:"size:36;uniqueIndex;not null" json:"ref_id"`
	Actor       string         `gorm:"size:50;index" json:"actor"`
	Action      string         `gorm:"size:32;index" json:"action"`
	TargetTable string         `gorm:"size:32" json:"target_table"`
	TargetID    string         `gorm:"size:64;index" json:"target_id"`
	Before      datatypes.JSON `gorm:"type:jsonb" json:"before,omitempty"`
	After       datatypes.JSON `gorm:"type:jsonb" json:"after,omitempty"`
}

func (e *AuditLogEntry) BeforeCreate(tx *gorm.DB) (err error) {
	e.RefID = strings.ToLower(uuid.New().String())
	return nil
}
