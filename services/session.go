package services

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pokernight/helpers"
	"pokernight/models"
)

// lockForUpdate takes a row lock where the dialect has one. SQLite, used by
// the test suites, serializes writers on its own and rejects FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// chipTotal resolves the monetary value of a check-in/check-out: a supplied
// breakdown wins over a declared total and is converted with the price
// table snapshot read inside the caller's transaction.
func chipTotal(tx *gorm.DB, declaredTotal *decimal.Decimal, breakdown map[string]int) (decimal.Decimal, datatypes.JSON, error) {
	if len(breakdown) > 0 {
		prices, err := PriceTable(tx)
		if err != nil {
			return decimal.Zero, nil, err
		}
		raw, err := json.Marshal(breakdown)
		if err != nil {
			return decimal.Zero, nil, err
		}
		return TotalValue(breakdown, prices), raw, nil
	}
	if declaredTotal != nil {
		return helpers.RoundMoney(*declaredTotal), nil, nil
	}
	return decimal.Zero, nil, models.ErrMissingChipData
}

// CheckIn opens a session for (player, date). The open-session probe runs
// under FOR UPDATE and the insert is backstopped by the partial unique
// index: of two racing check-ins exactly one commits, the other sees the
// conflict.
func CheckIn(db *gorm.DB, playerID, date string, declaredTotal *decimal.Decimal, breakdown map[string]int, photoRef string) (*models.Session, error) {
	var created *models.Session

	err := db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.Where("player_id = ?", playerID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPlayerNotFound
			}
			return err
		}

		var open models.Session
		err := lockForUpdate(tx).
			Where("player_id = ? AND date = ? AND is_completed = ?", playerID, date, false).
			First(&open).Error
		if err == nil {
			return &models.OpenSessionConflictError{Existing: &open}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		startTotal, startJSON, err := chipTotal(tx, declaredTotal, breakdown)
		if err != nil {
			return err
		}

		session := models.Session{
			PlayerID:       playerID,
			Date:           date,
			StartTotal:     startTotal,
			StartBreakdown: startJSON,
			StartPhoto:     photoRef,
		}
		if err := tx.Create(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &models.OpenSessionConflictError{}
			}
			return err
		}

		created = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckOut closes the open session for (player, date), fixes its net
// winnings and recomputes the player's lifetime total in the same
// transaction.
func CheckOut(db *gorm.DB, playerID, date string, declaredTotal *decimal.Decimal, breakdown map[string]int, photoRef string) (*models.Session, error) {
	var closed *models.Session

	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := lockForUpdate(tx).
			Where("player_id = ? AND date = ? AND is_completed = ?", playerID, date, false).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNoActiveSession
		}
		if err != nil {
			return err
		}

		endTotal, endJSON, err := chipTotal(tx, declaredTotal, breakdown)
		if err != nil {
			return err
		}

		net := NetWinnings(endTotal, session.StartTotal)
		session.EndTotal = &endTotal
		session.EndBreakdown = endJSON
		session.NetWinnings = &net
		session.IsCompleted = true
		if photoRef != "" {
			session.EndPhoto = photoRef
		}

		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		if _, err := RecalculatePlayer(tx, playerID); err != nil {
			return err
		}

		closed = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// SessionUpdate carries a corrective edit; nil fields are left alone.
type SessionUpdate struct {
	Date           *string
	StartTotal     *decimal.Decimal
	StartBreakdown map[string]int
	EndTotal       *decimal.Decimal
	EndBreakdown   map[string]int
	StartPhoto     *string
	EndPhoto       *string
}

// UpdateSession applies a partial edit. Supplying end chip data completes
// the session exactly like a check-out would; any edit that can move the
// net winnings of a completed session triggers the same recompute.
func UpdateSession(db *gorm.DB, sessionID uint, update SessionUpdate) (*models.Session, error) {
	var updated *models.Session

	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := lockForUpdate(tx).
			First(&session, sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		if update.Date != nil {
			session.Date = *update.Date
		}
		if update.StartPhoto != nil {
			session.StartPhoto = *update.StartPhoto
		}
		if update.EndPhoto != nil {
			session.EndPhoto = *update.EndPhoto
		}

		if len(update.StartBreakdown) > 0 {
			total, raw, err := chipTotal(tx, nil, update.StartBreakdown)
			if err != nil {
				return err
			}
			session.StartTotal = total
			session.StartBreakdown = raw
		} else if update.StartTotal != nil {
			session.StartTotal = helpers.RoundMoney(*update.StartTotal)
			session.StartBreakdown = nil
		}

		if len(update.EndBreakdown) > 0 {
			total, raw, err := chipTotal(tx, nil, update.EndBreakdown)
			if err != nil {
				return err
			}
			session.EndTotal = &total
			session.EndBreakdown = raw
			session.IsCompleted = true
		} else if update.EndTotal != nil {
			total := helpers.RoundMoney(*update.EndTotal)
			session.EndTotal = &total
			session.EndBreakdown = nil
			session.IsCompleted = true
		}

		winningsChanged := false
		if session.IsCompleted && session.EndTotal != nil && !session.AdminOverride {
			net := NetWinnings(*session.EndTotal, session.StartTotal)
			if session.NetWinnings == nil || !session.NetWinnings.Equal(net) {
				winningsChanged = true
			}
			session.NetWinnings = &net
		}

		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		if winningsChanged {
			if _, err := RecalculatePlayer(tx, session.PlayerID); err != nil {
				return err
			}
		}

		updated = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AdminOverride forces a session's net winnings regardless of its state,
// marks it overridden and completed, recomputes the player's total, and
// appends the audit entry.
func AdminOverride(db *gorm.DB, sessionID uint, newNet decimal.Decimal, reason, actor string) (*models.Session, error) {
	var overridden *models.Session

	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := lockForUpdate(tx).
			First(&session, sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		before, err := json.Marshal(map[string]any{
			"net_winnings":   session.NetWinnings,
			"is_completed":   session.IsCompleted,
			"admin_override": session.AdminOverride,
		})
		if err != nil {
			return err
		}

		net := helpers.RoundMoney(newNet)
		session.NetWinnings = &net
		session.AdminOverride = true
		session.IsCompleted = true
		session.OverrideReason = reason

		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		after, err := json.Marshal(map[string]any{
			"net_winnings":   net,
			"is_completed":   true,
			"admin_override": true,
			"reason":         reason,
		})
		if err != nil {
			return err
		}

		audit := models.AuditLogEntry{
			Actor:       actor,
			Action:      "session.override",
			TargetTable: "sessions",
			TargetID:    strconv.FormatUint(uint64(session.ID), 10),
			Before:      before,
			After:       after,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		if _, err := RecalculatePlayer(tx, session.PlayerID); err != nil {
			return err
		}

		overridden = &session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return overridden, nil
}

// ActiveSession returns the open session for (player, date), or nil when
// there is none.
func ActiveSession(db *gorm.DB, playerID, date string) (*models.Session, error) {
	var session models.Session
	err := db.Where("player_id = ? AND date = ? AND is_completed = ?", playerID, date, false).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// PlayerSessions lists a player's sessions, most recent date first.
func PlayerSessions(db *gorm.DB, playerID string) ([]models.Session, error) {
	var sessions []models.Session
	err := db.Where("player_id = ?", playerID).
		Order("date DESC, id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionByID loads one session; controllers use it for ownership checks
// before a corrective edit.
func SessionByID(db *gorm.DB, sessionID uint) (*models.Session, error) {
	var session models.Session
	err := db.First(&session, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}
