package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"pokernight/models"
)

type SessionSuite struct {
	suite.Suite
	db *gorm.DB
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.Require().NoError(s.db.Create(&models.Player{PlayerID: "alice", DisplayName: "Alice"}).Error)
	s.Require().NoError(s.db.Create(&models.Player{PlayerID: "bob", DisplayName: "Bob"}).Error)
}

func (s *SessionSuite) player(id string) models.Player {
	var p models.Player
	s.Require().NoError(s.db.Where("player_id = ?", id).First(&p).Error)
	return p
}

func money(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func (s *SessionSuite) TestCheckInWithDeclaredTotal() {
	created, err := CheckIn(s.db, "alice", "2026-08-30", money("120"), nil, "")
	s.Require().NoError(err)

	s.Equal("alice", created.PlayerID)
	s.Equal("2026-08-30", created.Date)
	s.True(created.StartTotal.Equal(decimal.NewFromInt(120)))
	s.False(created.IsCompleted)
	s.Nil(created.NetWinnings)
}

func (s *SessionSuite) TestCheckInWithBreakdown() {
	// Seeded prices: white=1, red=2.
	created, err := CheckIn(s.db, "alice", "2026-08-30", nil, map[string]int{"white": 50, "red": 10}, "photo-1")
	s.Require().NoError(err)

	s.Equal("70.00", created.StartTotal.StringFixed(2))
	s.NotNil(created.StartBreakdown)
	s.Equal("photo-1", created.StartPhoto)
}

func (s *SessionSuite) TestCheckInUnknownPlayer() {
	_, err := CheckIn(s.db, "nobody", "2026-08-30", money("10"), nil, "")
	s.ErrorIs(err, models.ErrPlayerNotFound)
}

func (s *SessionSuite) TestCheckInWithoutChipData() {
	_, err := CheckIn(s.db, "alice", "2026-08-30", nil, nil, "")
	s.ErrorIs(err, models.ErrMissingChipData)
}

func (s *SessionSuite) TestDuplicateCheckInConflicts() {
	first, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)

	_, err = CheckIn(s.db, "alice", "2026-08-30", money("999"), nil, "")
	s.ErrorIs(err, models.ErrSessionConflict)

	var conflict *models.OpenSessionConflictError
	s.ErrorAs(err, &conflict)
	s.Require().NotNil(conflict.Existing)
	s.Equal(first.ID, conflict.Existing.ID)

	// The original session is untouched by the failed attempt.
	var stored models.Session
	s.Require().NoError(s.db.First(&stored, first.ID).Error)
	s.Equal("70.00", stored.StartTotal.StringFixed(2))
	s.False(stored.IsCompleted)

	var count int64
	s.db.Model(&models.Session{}).Where("player_id = ?", "alice").Count(&count)
	s.EqualValues(1, count)
}

func (s *SessionSuite) TestCheckInSameDateDifferentPlayers() {
	_, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)
	_, err = CheckIn(s.db, "bob", "2026-08-30", money("70"), nil, "")
	s.NoError(err)
}

func (s *SessionSuite) TestCheckInAfterCompletionOpensNewSession() {
	_, err := CheckIn(s.db, "alice", "2026-08-29", money("70"), nil, "")
	s.Require().NoError(err)
	_, err = CheckOut(s.db, "alice", "2026-08-29", money("75"), nil, "")
	s.Require().NoError(err)

	// Completed sessions do not block a new check-in on the same date.
	_, err = CheckIn(s.db, "alice", "2026-08-29", money("100"), nil, "")
	s.NoError(err)
}

func (s *SessionSuite) TestCheckOutWithoutCheckIn() {
	_, err := CheckOut(s.db, "alice", "2026-08-30", money("75"), nil, "")
	s.ErrorIs(err, models.ErrNoActiveSession)

	var count int64
	s.db.Model(&models.Session{}).Count(&count)
	s.EqualValues(0, count)
}

func (s *SessionSuite) TestCheckInCheckOutLifecycle() {
	// The worked scenario: in with {white:50, red:10} = 70.00, out with
	// {white:25, red:25} = 75.00, net +5.00.
	_, err := CheckIn(s.db, "alice", "2026-08-30", nil, map[string]int{"white": 50, "red": 10}, "")
	s.Require().NoError(err)

	closed, err := CheckOut(s.db, "alice", "2026-08-30", nil, map[string]int{"white": 25, "red": 25}, "photo-2")
	s.Require().NoError(err)

	s.True(closed.IsCompleted)
	s.Require().NotNil(closed.EndTotal)
	s.Equal("75.00", closed.EndTotal.StringFixed(2))
	s.Require().NotNil(closed.NetWinnings)
	s.Equal("5.00", closed.NetWinnings.StringFixed(2))
	s.Equal("photo-2", closed.EndPhoto)

	s.Equal("5.00", s.player("alice").TotalWinnings.StringFixed(2))

	var completed int64
	s.db.Model(&models.Session{}).
		Where("player_id = ? AND date = ? AND is_completed = ?", "alice", "2026-08-30", true).
		Count(&completed)
	s.EqualValues(1, completed)
}

func (s *SessionSuite) TestCheckOutNegativeNet() {
	_, err := CheckIn(s.db, "alice", "2026-08-30", money("100"), nil, "")
	s.Require().NoError(err)

	closed, err := CheckOut(s.db, "alice", "2026-08-30", money("40"), nil, "")
	s.Require().NoError(err)

	s.Equal("-60.00", closed.NetWinnings.StringFixed(2))
	s.Equal("-60.00", s.player("alice").TotalWinnings.StringFixed(2))
}

func (s *SessionSuite) TestUpdateSessionCompletesLikeCheckout() {
	open, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)

	updated, err := UpdateSession(s.db, open.ID, SessionUpdate{
		EndBreakdown: map[string]int{"white": 25, "red": 25},
	})
	s.Require().NoError(err)

	s.True(updated.IsCompleted)
	s.Equal("5.00", updated.NetWinnings.StringFixed(2))
	s.Equal("5.00", s.player("alice").TotalWinnings.StringFixed(2))
}

func (s *SessionSuite) TestUpdateSessionCorrectsCompletedTotals() {
	open, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)
	_, err = CheckOut(s.db, "alice", "2026-08-30", money("75"), nil, "")
	s.Require().NoError(err)

	updated, err := UpdateSession(s.db, open.ID, SessionUpdate{EndTotal: money("90")})
	s.Require().NoError(err)

	s.Equal("20.00", updated.NetWinnings.StringFixed(2))
	s.Equal("20.00", s.player("alice").TotalWinnings.StringFixed(2))
}

func (s *SessionSuite) TestUpdateSessionNotFound() {
	_, err := UpdateSession(s.db, 9999, SessionUpdate{EndTotal: money("1")})
	s.ErrorIs(err, models.ErrSessionNotFound)
}

func (s *SessionSuite) TestAdminOverride() {
	open, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)
	_, err = CheckOut(s.db, "alice", "2026-08-30", money("75"), nil, "")
	s.Require().NoError(err)
	s.Equal("5.00", s.player("alice").TotalWinnings.StringFixed(2))

	overridden, err := AdminOverride(s.db, open.ID, decimal.NewFromInt(50), "corrected count", "admin1")
	s.Require().NoError(err)

	s.True(overridden.AdminOverride)
	s.True(overridden.IsCompleted)
	s.Equal("corrected count", overridden.OverrideReason)
	s.Equal("50.00", overridden.NetWinnings.StringFixed(2))

	// The delta lands via the full recompute.
	s.Equal("50.00", s.player("alice").TotalWinnings.StringFixed(2))

	var entry models.AuditLogEntry
	s.Require().NoError(s.db.Where("action = ?", "session.override").First(&entry).Error)
	s.Equal("admin1", entry.Actor)
	s.Equal("sessions", entry.TargetTable)
	s.NotEmpty(entry.RefID)
	s.Contains(string(entry.Before), "5")
	s.Contains(string(entry.After), "50")
	s.Contains(string(entry.After), "corrected count")
}

func (s *SessionSuite) TestAdminOverrideOpenSession() {
	open, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)

	// Override works regardless of prior state, completing the session.
	overridden, err := AdminOverride(s.db, open.ID, decimal.NewFromInt(-10), "player left early", "admin1")
	s.Require().NoError(err)

	s.True(overridden.IsCompleted)
	s.Equal("-10.00", overridden.NetWinnings.StringFixed(2))
	s.Equal("-10.00", s.player("alice").TotalWinnings.StringFixed(2))
}

func (s *SessionSuite) TestActiveSessionLookup() {
	active, err := ActiveSession(s.db, "alice", "2026-08-30")
	s.Require().NoError(err)
	s.Nil(active)

	created, err := CheckIn(s.db, "alice", "2026-08-30", money("70"), nil, "")
	s.Require().NoError(err)

	active, err = ActiveSession(s.db, "alice", "2026-08-30")
	s.Require().NoError(err)
	s.Require().NotNil(active)
	s.Equal(created.ID, active.ID)

	// Exact date match only.
	active, err = ActiveSession(s.db, "alice", "2026-08-31")
	s.Require().NoError(err)
	s.Nil(active)
}

func (s *SessionSuite) TestPlayerSessionsOrder() {
	for _, date := range []string{"2026-08-28", "2026-08-29", "2026-08-30"} {
		_, err := CheckIn(s.db, "alice", date, money("50"), nil, "")
		s.Require().NoError(err)
		_, err = CheckOut(s.db, "alice", date, money("60"), nil, "")
		s.Require().NoError(err)
	}

	sessions, err := PlayerSessions(s.db, "alice")
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal("2026-08-30", sessions[0].Date)
	s.Equal("2026-08-28", sessions[2].Date)
}
