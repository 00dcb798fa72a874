package session

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// normalizeDate validates the YYYY-MM-DD form and rejects future dates.
// An empty date means today.
func normalizeDate(date string) (string, string) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format(dateLayout), ""
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "INVALID_DATE_FORMAT"
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if parsed.After(today) {
		return "", "SESSION_DATE_IN_FUTURE"
	}
	return date, ""
}

// validateChipData enforces the input boundary the ledger relies on:
// counts are non-negative integers, a declared total is non-negative, and
// at least one of the two is present. Unknown colors pass through; the
// ledger ignores them when converting.
func validateChipData(total *decimal.Decimal, breakdown map[string]int) string {
	if total == nil && len(breakdown) == 0 {
		return "TOTAL_OR_BREAKDOWN_REQUIRED"
	}
	if total != nil && total.IsNegative() {
		return "TOTAL_MUST_BE_NON_NEGATIVE"
	}
	for _, count := range breakdown {
		if count < 0 {
			return "CHIP_COUNTS_MUST_BE_NON_NEGATIVE"
		}
	}
	return ""
}
