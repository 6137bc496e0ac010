package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the minimum number of fractional digits shown for amounts.
const MoneyPrecision = 2

// FormatMoney renders an amount exactly, padded to at least MoneyPrecision
// fractional digits. Example: 50000 returns "50000.00", 1234.5678 returns
// "1234.5678", 0.005 returns "0.005".
func FormatMoney(amount decimal.Decimal) string {
	if amount.Exponent() < -MoneyPrecision && !amount.Round(MoneyPrecision).Equal(amount) {
		return amount.String()
	}
	return amount.StringFixed(MoneyPrecision)
}

// FormatOptionalMoney is FormatMoney for nullable amounts; nil stays nil.
func FormatOptionalMoney(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	s := FormatMoney(*amount)
	return &s
}
