package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"white": decimal.NewFromInt(1),
		"red":   decimal.NewFromInt(2),
		"green": decimal.NewFromInt(10),
		"black": decimal.NewFromInt(20),
		"blue":  decimal.NewFromInt(50),
	}
}

func TestTotalValue(t *testing.T) {
	prices := testPrices()

	total := TotalValue(map[string]int{"white": 50, "red": 10}, prices)
	assert.True(t, total.Equal(decimal.NewFromInt(70)), "got %s", total)

	total = TotalValue(map[string]int{"black": 3, "blue": 1}, prices)
	assert.True(t, total.Equal(decimal.NewFromInt(110)), "got %s", total)

	assert.True(t, TotalValue(nil, prices).IsZero())
	assert.True(t, TotalValue(map[string]int{}, prices).IsZero())
}

func TestTotalValueIgnoresUnknownColors(t *testing.T) {
	prices := map[string]decimal.Decimal{"red": decimal.NewFromInt(5)}

	total := TotalValue(map[string]int{"red": 10, "yellow": 3}, prices)
	assert.True(t, total.Equal(decimal.NewFromInt(50)), "got %s", total)
}

func TestTotalValueRoundsToCents(t *testing.T) {
	prices := map[string]decimal.Decimal{"white": decimal.RequireFromString("0.333")}

	total := TotalValue(map[string]int{"white": 2}, prices)
	assert.Equal(t, "0.67", total.StringFixed(2))
}

func TestNetWinnings(t *testing.T) {
	net := NetWinnings(decimal.NewFromInt(75), decimal.NewFromInt(70))
	assert.True(t, net.Equal(decimal.NewFromInt(5)))

	net = NetWinnings(decimal.NewFromInt(20), decimal.NewFromInt(100))
	assert.True(t, net.Equal(decimal.NewFromInt(-80)))

	net = NetWinnings(decimal.Zero, decimal.Zero)
	assert.True(t, net.IsZero())
}
