package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"pokernight/models"
)

type ChipPriceSuite struct {
	suite.Suite
	db *gorm.DB
}

func TestChipPriceSuite(t *testing.T) {
	suite.Run(t, new(ChipPriceSuite))
}

func (s *ChipPriceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.Require().NoError(s.db.Create(&models.Player{PlayerID: "alice"}).Error)
	s.Require().NoError(s.db.Create(&models.Player{PlayerID: "bob"}).Error)
}

func (s *ChipPriceSuite) TestSeededPriceTable() {
	prices, err := PriceTable(s.db)
	s.Require().NoError(err)

	s.Len(prices, len(models.ChipColors))
	s.True(prices["white"].Equal(decimal.NewFromInt(1)))
	s.True(prices["black"].Equal(decimal.NewFromInt(20)))
}

func (s *ChipPriceSuite) TestUpdateRecalculatesEveryPlayer() {
	for _, id := range []string{"alice", "bob"} {
		_, err := CheckIn(s.db, id, "2026-08-29", money("100"), nil, "")
		s.Require().NoError(err)
		_, err = CheckOut(s.db, id, "2026-08-29", money("120"), nil, "")
		s.Require().NoError(err)
	}

	result, err := UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"black": decimal.NewFromInt(25),
	}, "admin1")
	s.Require().NoError(err)

	s.Equal(1, result.UpdatedCount)
	s.Equal(2, result.RecalculatedPlayers)

	prices, err := PriceTable(s.db)
	s.Require().NoError(err)
	s.True(prices["black"].Equal(decimal.NewFromInt(25)))

	// Frozen session totals mean the recompute lands on the same numbers.
	var alice models.Player
	s.Require().NoError(s.db.Where("player_id = ?", "alice").First(&alice).Error)
	s.Equal("20.00", alice.TotalWinnings.StringFixed(2))
}

func (s *ChipPriceSuite) TestUpdateWritesAuditEntry() {
	_, err := UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"black": decimal.NewFromInt(25),
	}, "admin1")
	s.Require().NoError(err)

	var entry models.AuditLogEntry
	s.Require().NoError(s.db.Where("action = ?", "chip_prices.update").First(&entry).Error)
	s.Equal("admin1", entry.Actor)
	s.Equal("chip_prices", entry.TargetTable)
	s.Contains(string(entry.Before), "20")
	s.Contains(string(entry.After), "25")
}

func (s *ChipPriceSuite) TestUpdateRejectsUnknownColor() {
	_, err := UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"yellow": decimal.NewFromInt(5),
	}, "admin1")
	s.ErrorIs(err, models.ErrUnknownChipColor)
}

func (s *ChipPriceSuite) TestUpdateRejectsNonPositiveValue() {
	_, err := UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"black": decimal.Zero,
	}, "admin1")
	s.ErrorIs(err, models.ErrInvalidChipValue)

	_, err = UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"black": decimal.NewFromInt(-5),
	}, "admin1")
	s.ErrorIs(err, models.ErrInvalidChipValue)

	// A rejected update leaves the table untouched.
	prices, err := PriceTable(s.db)
	s.Require().NoError(err)
	s.True(prices["black"].Equal(decimal.NewFromInt(20)))
}

func (s *ChipPriceSuite) TestNewPricesApplyToFutureSessionsOnly() {
	_, err := CheckIn(s.db, "alice", "2026-08-29", nil, map[string]int{"black": 5}, "") // 100.00
	s.Require().NoError(err)
	_, err = CheckOut(s.db, "alice", "2026-08-29", nil, map[string]int{"black": 6}, "") // 120.00
	s.Require().NoError(err)

	_, err = UpdateChipPrices(s.db, map[string]decimal.Decimal{
		"black": decimal.NewFromInt(25),
	}, "admin1")
	s.Require().NoError(err)

	// The completed session keeps its frozen totals.
	var old models.Session
	s.Require().NoError(s.db.Where("player_id = ?", "alice").First(&old).Error)
	s.Equal("100.00", old.StartTotal.StringFixed(2))
	s.Equal("20.00", old.NetWinnings.StringFixed(2))

	// A new session converts with the new price.
	fresh, err := CheckIn(s.db, "alice", "2026-08-30", nil, map[string]int{"black": 5}, "")
	s.Require().NoError(err)
	s.Equal("125.00", fresh.StartTotal.StringFixed(2))
}
