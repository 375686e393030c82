package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
)

func TestFormatAmount(t *testing.T) {
	usd := domain.Currency{Code: "USD", Symbol: "$", Precision: 2}
	assert.Equal(t, "$230.00", utils.FormatAmount(decimal.RequireFromString("230"), usd))

	// Codes outside the ISO registry fall back to the stored symbol and precision.
	gold := domain.Currency{Code: "GLD", Symbol: "g", Precision: 3}
	assert.Equal(t, "g12.346", utils.FormatAmount(decimal.RequireFromString("12.3456"), gold))

	bare := domain.Currency{Code: "ZZZ", Precision: 0}
	assert.Equal(t, "8", utils.FormatAmount(decimal.RequireFromString("7.6"), bare))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "10.50", utils.FormatWithPrecision(decimal.RequireFromString("10.5"), 2))
	assert.Equal(t, "0.13", utils.FormatWithPrecision(decimal.RequireFromString("0.125"), 2))
}
