package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "$ 0"},
		{"under one thousand", 999, "$ 999"},
		{"exact thousand", 1000, "$ 1.000"},
		{"minimum income threshold", 1200000, "$ 1.200.000"},
		{"one million", 1000000, "$ 1.000.000"},
		{"thirty million", 30000000, "$ 30.000.000"},
		{"five billion housing cap", 5000000000, "$ 5.000.000.000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatCOPInt(tt.amount))
		})
	}
}

func TestFormatCOP_RoundsFractions(t *testing.T) {
	t.Parallel()

	// COP amounts display with zero fractional digits.
	got := FormatCOP(decimal.NewFromFloat(848333.3333333333))
	assert.Equal(t, "$ 848.333", got)

	got = FormatCOP(decimal.NewFromFloat(848333.5))
	assert.Equal(t, "$ 848.334", got)
}

func TestMoneyFormat_USD(t *testing.T) {
	t.Parallel()

	m := NewMoney(decimal.NewFromFloat(1234.5), USD)
	assert.Equal(t, "$1,234.50", m.Format())
}

func TestMoneyFormat_UnknownCurrency(t *testing.T) {
	t.Parallel()

	m := Money{Amount: decimal.NewFromInt(10), Currency: "XXX"}
	assert.Equal(t, "10.00 XXX", m.Format())
}

func TestNewMoney_DefaultsToCOP(t *testing.T) {
	t.Parallel()

	m := NewMoney(decimal.NewFromInt(5), "")
	assert.Equal(t, COP, m.Currency)
}

func TestNewMoneyFromString(t *testing.T) {
	t.Parallel()

	m, err := NewMoneyFromString("5000000", COP)
	assert.NoError(t, err)
	assert.True(t, m.Amount.Equal(decimal.NewFromInt(5000000)))

	_, err = NewMoneyFromString("not-a-number", COP)
	assert.Error(t, err)
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValid("COP"))
	assert.True(t, IsValid("USD"))
	assert.False(t, IsValid("VND"))
	assert.False(t, IsValid(""))
}
