package stay_test

import (
	"testing"

	"innflow/internal/domains/stay"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{name: "two nights", checkIn: "2025-06-01", checkOut: "2025-06-03", expected: 2},
		{name: "one night", checkIn: "2025-06-01", checkOut: "2025-06-02", expected: 1},
		{name: "across month end", checkIn: "2025-06-29", checkOut: "2025-07-02", expected: 3},
		{name: "across leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", expected: 2},
		{name: "same day", checkIn: "2025-06-01", checkOut: "2025-06-01", expected: 0},
		{name: "reversed", checkIn: "2025-06-03", checkOut: "2025-06-01", expected: 0},
		{name: "missing check-in", checkIn: "", checkOut: "2025-06-03", expected: 0},
		{name: "missing check-out", checkIn: "2025-06-01", checkOut: "", expected: 0},
		{name: "unparseable", checkIn: "June 1", checkOut: "2025-06-03", expected: 0},
		{name: "partial day rounds up", checkIn: "2025-06-01T14:00", checkOut: "2025-06-03T12:00", expected: 2},
		{name: "rfc3339 with offsets", checkIn: "2025-06-01T00:00:00+08:00", checkOut: "2025-06-02T00:00:00Z", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stay.NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     decimal.Decimal
		nights   int
		expected decimal.Decimal
	}{
		{name: "deluxe double two nights", rate: decimal.NewFromInt(1500), nights: 2, expected: decimal.NewFromInt(3000)},
		{name: "zero nights", rate: decimal.NewFromInt(8000), nights: 0, expected: decimal.Zero},
		{name: "negative nights", rate: decimal.NewFromInt(700), nights: -3, expected: decimal.Zero},
		{name: "fractional rate", rate: decimal.RequireFromString("999.99"), nights: 3, expected: decimal.RequireFromString("2999.97")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(stay.TotalPrice(tt.rate, tt.nights)), "got %s", stay.TotalPrice(tt.rate, tt.nights))
		})
	}
}

func TestTotalPriceIsRateTimesNights(t *testing.T) {
	rate := decimal.NewFromInt(5000)

	for nights := 1; nights <= 30; nights++ {
		expected := rate.Mul(decimal.NewFromInt(int64(nights)))

		assert.True(t, expected.Equal(stay.TotalPrice(rate, nights)))
	}
}

func TestNewQuote(t *testing.T) {
	quote := stay.NewQuote(decimal.NewFromInt(1500), "2025-06-01", "2025-06-03")

	assert.Equal(t, 2, quote.Nights)
	assert.True(t, decimal.NewFromInt(3000).Equal(quote.Total))

	reversed := stay.NewQuote(decimal.NewFromInt(1500), "2025-06-03", "2025-06-01")

	assert.Equal(t, 0, reversed.Nights)
	assert.True(t, decimal.Zero.Equal(reversed.Total))
}
