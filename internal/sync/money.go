package sync

import (
	"math"

	"github.com/coltoneshaw/ynabsync/api/budget"
)

// currencyAmount pairs a raw milliunit amount with its currency-scaled
// presentation form. The milliunit value is always the source of truth;
// the scaled value is derived for display only and is never read back.
type currencyAmount struct {
	Milliunits int64   `json:"milliunits"`
	Amount     float64 `json:"amount"`
}

// currencyOf builds a currencyAmount for a milliunit value, scaled by the
// budget's own currency format: milliunits ÷ 10^decimal_digits. A nil
// format (not yet synced) falls back to 3, YNAB's own milliunit exponent.
func currencyOf(milliunits int64, format *budget.CurrencyFormat) currencyAmount {
	digits := 3
	if format != nil {
		digits = int(format.DecimalDigits)
	}
	return currencyAmount{
		Milliunits: milliunits,
		Amount:     float64(milliunits) / math.Pow10(digits),
	}
}
