package services

import (
	"github.com/shopspring/decimal"

	"pokernight/helpers"
)

// TotalValue converts a chip breakdown into money using the given price
// table. Colors with no price row contribute nothing; the detector and old
// clients sometimes report colors the table has never heard of.
func TotalValue(breakdown map[string]int, prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for color, count := range breakdown {
		price, ok := prices[color]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(count))))
	}
	return helpers.RoundMoney(total)
}

// NetWinnings is end minus start for one session. Negative means the player
// left with less than they bought in for.
func NetWinnings(endTotal, startTotal decimal.Decimal) decimal.Decimal {
	return helpers.RoundMoney(endTotal.Sub(startTotal))
}
