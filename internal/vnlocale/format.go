// Package vnlocale renders amounts and dates the way Vietnamese users read
// them: '.'-grouped thousands, the đồng sign suffixed, dates as DD/MM/YYYY.
package vnlocale

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DisplayDateLayout is the Vietnamese display form, e.g. "18/12/2025".
	DisplayDateLayout = "02/01/2006"
	// DisplayDateTimeLayout adds the 24h clock, e.g. "18/12/2025 14:30".
	DisplayDateTimeLayout = "02/01/2006 15:04"
)

// FormatAmount renders a decimal as a '.'-grouped integer string, rounding
// half away from zero: 1234.56 -> "1.235". The minus sign of a negative
// amount is preserved in front of the grouped digits.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	digits := rounded.Abs().String()
	grouped := groupThousands(digits)

	if rounded.IsNegative() {
		return "-" + grouped
	}
	return grouped
}

// FormatCurrency renders a decimal as Vietnamese currency: "1.000.000 ₫".
func FormatCurrency(amount decimal.Decimal) string {
	return FormatAmount(amount) + " ₫"
}

// groupThousands inserts '.' separators into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + n/3)

	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate renders a date as DD/MM/YYYY with zero-padded day and month.
func FormatDate(d time.Time) string {
	return d.Format(DisplayDateLayout)
}

// FormatDateString parses an ISO-8601 date or timestamp string and renders
// it as DD/MM/YYYY. Accepts "2006-01-02" and RFC 3339 forms.
func FormatDateString(s string) (string, error) {
	d, err := parseISO(s)
	if err != nil {
		return "", err
	}
	return FormatDate(d), nil
}

// FormatDateTime renders a timestamp as DD/MM/YYYY HH:mm.
func FormatDateTime(d time.Time) string {
	return d.Format(DisplayDateTimeLayout)
}

// ParseDate is the inverse of FormatDate: it reads "DD/MM/YYYY" and returns
// the local calendar date at midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DisplayDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid display date %q: expected DD/MM/YYYY", s)
	}
	return d, nil
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano, time.RFC3339} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO date %q", s)
}
