package helpers

import "github.com/shopspring/decimal"

// RoundMoney normalizes a monetary value to the 2 decimal places everything
// in the ledger is stored with.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
