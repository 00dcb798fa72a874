package models

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPlayerExists     = errors.New("player already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActiveSession  = errors.New("no active session for that date")
	ErrSessionConflict  = errors.New("an open session already exists for that date")
	ErrMissingChipData  = errors.New("a chip total or breakdown is required")
	ErrUnknownChipColor = errors.New("unknown chip color")
	ErrInvalidChipValue = errors.New("chip value must be positive")
)

// OpenSessionConflictError carries the already-open session back to the
// caller so a duplicate check-in can show what is blocking it. Existing is
// nil when the conflict was detected by the unique index rather than the
// lookup.
type OpenSessionConflictError struct {
	Existing *Session
}

func (e *OpenSessionConflictError) Error() string {
	if e.Existing != nil {
		return fmt.Sprintf("%v (session %d)", ErrSessionConflict, e.Existing.ID)
	}
	return ErrSessionConflict.Error()
}

func (e *OpenSessionConflictError) Unwrap() error {
	return ErrSessionConflict
}
