package vnlocale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero", "0", "0"},
		{"under a thousand", "999", "999"},
		{"exactly a thousand", "1000", "1.000"},
		{"one million", "1000000", "1.000.000"},
		{"typical salary", "15500000", "15.500.000"},
		{"rounds half up", "1234.56", "1.235"},
		{"rounds half boundary away from zero", "1234.5", "1.235"},
		{"rounds down below half", "1234.4", "1.234"},
		{"negative keeps minus sign", "-1234567", "-1.234.567"},
		{"negative rounds away from zero", "-1234.5", "-1.235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.in, err)
			}
			if got := FormatAmount(amount); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1000000, "1.000.000 ₫"},
		{0, "0 ₫"},
		{-50000, "-50.000 ₫"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(decimal.NewFromInt(tt.in)); got != tt.want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)
	if got := FormatDate(d); got != "05/03/2024" {
		t.Errorf("FormatDate = %q, want 05/03/2024", got)
	}
}

func TestFormatDateString(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-12-18", "18/12/2025", false},
		{"2024-03-05T14:30:00Z", "05/03/2024", false},
		{"not-a-date", "", true},
		{"18/12/2025", "", true},
	}

	for _, tt := range tests {
		got, err := FormatDateString(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatDateString(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatDateString(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatDateString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	d := time.Date(2025, time.December, 17, 14, 30, 59, 0, time.Local)
	if got := FormatDateTime(d); got != "17/12/2025 14:30" {
		t.Errorf("FormatDateTime = %q, want 17/12/2025 14:30", got)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"01/01/2024", "29/02/2024", "18/12/2025", "05/03/2024"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", s, err)
			continue
		}
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Errorf("ParseDate(%q) not at midnight: %v", s, d)
		}
		if d.Location() != time.Local {
			t.Errorf("ParseDate(%q) not in local time: %v", s, d.Location())
		}
		if got := FormatDate(d); got != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-12-18", "32/01/2025", "aa/bb/cccc"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error", s)
		}
	}
}
