// Package stay computes the length and price of a stay.
package stay

import (
	"strings"
	"time"

	"innflow/shared/constant"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var layouts = []string{
	constant.StayDateFormat,
	time.RFC3339,
	constant.StayTimeFormat,
}

// Quote is the price preview of a stay.
type Quote struct {
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Nights   int             `json:"nights"`
	Rate     decimal.Decimal `json:"rate"`
	Total    decimal.Decimal `json:"total"`
}

// ParseDate reads a stay date. Dates without a zone are taken as UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// NightsBetween counts the nights between two dates, rounding partial days up.
// It returns 0 when either date is missing or invalid, or when check-out is not
// after check-in.
func NightsBetween(checkIn, checkOut string) int {
	in, ok := ParseDate(checkIn)
	if !ok {
		return 0
	}

	out, ok := ParseDate(checkOut)
	if !ok {
		return 0
	}

	diff := out.Sub(in)
	if diff <= 0 {
		return 0
	}

	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}

	return nights
}

// TotalPrice is rate times nights, zero for non-positive nights.
func TotalPrice(rate decimal.Decimal, nights int) decimal.Decimal {
	if nights <= 0 {
		return decimal.Zero
	}

	return rate.Mul(decimal.NewFromInt(int64(nights)))
}

// NewQuote prices a stay at rate per night. Invalid or reversed dates give a
// zero night, zero total quote.
func NewQuote(rate decimal.Decimal, checkIn, checkOut string) Quote {
	nights := NightsBetween(checkIn, checkOut)

	return Quote{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   nights,
		Rate:     rate,
		Total:    TotalPrice(rate, nights),
	}
}
