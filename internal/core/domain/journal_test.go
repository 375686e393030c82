package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

func TestJournalLine_Amount(t *testing.T) {
	tests := []struct {
		name string
		line domain.JournalLine
		want string
	}{
		{
			name: "debit line",
			line: domain.JournalLine{Debit: decimal.RequireFromString("100")},
			want: "100",
		},
		{
			name: "credit line",
			line: domain.JournalLine{Credit: decimal.RequireFromString("42.50")},
			want: "42.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Amount()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestJournalLine_IsDebit(t *testing.T) {
	debit := domain.JournalLine{Debit: decimal.RequireFromString("10")}
	credit := domain.JournalLine{Credit: decimal.RequireFromString("10")}

	assert.True(t, debit.IsDebit())
	assert.False(t, credit.IsDebit())
}

func TestSale_Remaining(t *testing.T) {
	tests := []struct {
		name string
		sale domain.Sale
		want string
	}{
		{
			name: "unpaid",
			sale: domain.Sale{TotalAmount: decimal.RequireFromString("250")},
			want: "250",
		},
		{
			name: "partially paid",
			sale: domain.Sale{
				TotalAmount: decimal.RequireFromString("250"),
				PaidAmount:  decimal.RequireFromString("100"),
			},
			want: "150",
		},
		{
			name: "overpaid goes negative",
			sale: domain.Sale{
				TotalAmount: decimal.RequireFromString("250"),
				PaidAmount:  decimal.RequireFromString("300"),
			},
			want: "-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sale.Remaining()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
