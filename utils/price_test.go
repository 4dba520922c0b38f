package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplayLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity string
		want     string
	}{
		{"integers", "10", "2", "20.00"},
		{"decimal price", "3.50", "4", "14.00"},
		{"thousands", "15000", "100", "1,500,000.00"},
		{"padded input", " 2.25 ", " 2 ", "4.50"},
		{"text price", "ten", "2", "-"},
		{"empty quantity", "10", "", "-"},
		{"currency symbol", "$10", "1", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayLineTotal(tt.price, tt.quantity))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "999.99", FormatAmount(decimal.RequireFromString("999.99")))
	assert.Equal(t, "1,000.00", FormatAmount(decimal.NewFromInt(1000)))
	assert.Equal(t, "-1,234.50", FormatAmount(decimal.RequireFromString("-1234.5")))
}
