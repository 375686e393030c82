package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// ValidateLineSides checks each line in isolation: positive account and
// currency references, and exactly one of debit/credit strictly positive
// with the other exactly zero.
func ValidateLineSides(lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: journal entry must have at least one line", apperrors.ErrMissingField)
	}

	for i, line := range lines {
		if line.AccountID <= 0 {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrMissingField, i+1)
		}
		if line.CurrencyID <= 0 {
			return fmt.Errorf("%w: line %d has no currency", apperrors.ErrMissingField, i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrInvalidAmount, i+1)
		}

		debitSet := line.IsDebit()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet {
			// Both set or both zero.
			return fmt.Errorf("%w: line %d must have exactly one of debit or credit", apperrors.ErrInvalidAmount, i+1)
		}
	}
	return nil
}

// ValidateEntryBalance checks the double-entry invariant across the whole
// entry: the sum of debits must equal the sum of credits. Amounts are exact
// decimals so equality is required to zero difference.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalancedEntry, debits.String(), credits.String())
	}
	return nil
}

// SaleTotal computes a sale's total in its own currency from the full item
// and cost set. Always recomputed from scratch so repeated updates cannot
// drift.
func SaleTotal(items []domain.SaleItem, costs []domain.AdditionalCost) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.PerPrice.Mul(item.Quantity))
	}
	for _, cost := range costs {
		total = total.Add(cost.Amount)
	}
	return total
}
