package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// FormatAmount formats an amount for display in the given currency.
// ISO codes known to the go-money registry use its symbol and fraction
// digits; anything else falls back to the precision stored on the currency
// row.
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	if c := money.GetCurrency(currency.Code); c != nil {
		minor := amount.Shift(int32(c.Fraction)).Round(0)
		return money.New(minor.IntPart(), c.Code).Display()
	}
	formatted := FormatWithPrecision(amount, currency.Precision)
	if currency.Symbol != "" {
		return currency.Symbol + formatted
	}
	return formatted
}

// FormatWithPrecision formats an amount with the given number of fraction digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
