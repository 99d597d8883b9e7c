package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStartOfDay_EndOfDay(t *testing.T) {
	d := time.Date(2025, time.December, 18, 14, 30, 45, 123456789, time.Local)

	start := StartOfDay(d)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay(%v) = %v, want midnight", d, start)
	}
	if start.Day() != 18 {
		t.Errorf("StartOfDay changed the calendar day: %v", start)
	}

	end := EndOfDay(d)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay(%v) = %v, want 23:59:59", d, end)
	}
	if end.Nanosecond() != 999*int(time.Millisecond) {
		t.Errorf("EndOfDay nanoseconds = %d, want 999ms", end.Nanosecond())
	}
}

func TestStartOfWeek_AlwaysMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"thursday", date(2025, time.December, 18), date(2025, time.December, 15)},
		{"monday is identity", date(2025, time.December, 15), date(2025, time.December, 15)},
		{"sunday goes back six days", date(2025, time.December, 21), date(2025, time.December, 15)},
		{"week spanning year boundary", date(2026, time.January, 1), date(2025, time.December, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek(%v).Weekday() = %v, want Monday", tt.in, got.Weekday())
			}
		})
	}
}

func TestEndOfWeek_AlwaysSundaySixDaysLater(t *testing.T) {
	for day := 1; day <= 28; day++ {
		d := date(2025, time.December, day)
		start := StartOfWeek(d)
		end := EndOfWeek(d)

		if end.Weekday() != time.Sunday {
			t.Errorf("EndOfWeek(%v).Weekday() = %v, want Sunday", d, end.Weekday())
		}
		if got := EndOfDay(start.AddDate(0, 0, 6)); !end.Equal(got) {
			t.Errorf("EndOfWeek(%v) = %v, want 6 days after start of week", d, end)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		wantDay int
	}{
		{"leap year february", date(2024, time.February, 15), 29},
		{"non-leap february", date(2023, time.February, 15), 28},
		{"january", date(2024, time.January, 15), 31},
		{"april", date(2024, time.April, 1), 30},
		{"december", date(2025, time.December, 31), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndOfMonth(tt.in)
			if got.Day() != tt.wantDay {
				t.Errorf("EndOfMonth(%v).Day() = %d, want %d", tt.in, got.Day(), tt.wantDay)
			}
			if got.Month() != tt.in.Month() || got.Year() != tt.in.Year() {
				t.Errorf("EndOfMonth(%v) left the month: %v", tt.in, got)
			}
		})
	}
}

func TestRange_StartNeverAfterEnd(t *testing.T) {
	granularities := []Granularity{GranularityDay, GranularityWeek, GranularityMonth}

	// Walk across a leap year and two year boundaries.
	d := date(2023, time.December, 20)
	for i := 0; i < 450; i++ {
		for _, g := range granularities {
			r := Range(d, g)
			if r.Start.After(r.End) {
				t.Fatalf("Range(%v, %s): start %v after end %v", d, g, r.Start, r.End)
			}
			if r.Granularity != g {
				t.Fatalf("Range(%v, %s): granularity echoed as %s", d, g, r.Granularity)
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestRange_DaySpansOneDay(t *testing.T) {
	r := Range(date(2025, time.December, 18), GranularityDay)
	if r.Start.Day() != 18 || r.End.Day() != 18 {
		t.Errorf("day range spans %v..%v, want a single day", r.Start, r.End)
	}
}

func TestRange_MonthBoundaries(t *testing.T) {
	r := Range(date(2025, time.December, 18), GranularityMonth)
	if r.Start.Day() != 1 {
		t.Errorf("month range starts on day %d, want 1", r.Start.Day())
	}
	if r.End.Day() != 31 {
		t.Errorf("month range ends on day %d, want 31", r.End.Day())
	}
}

func TestPreviousNext_RoundTrip(t *testing.T) {
	for _, g := range []Granularity{GranularityDay, GranularityWeek} {
		d := date(2024, time.February, 29)
		for i := 0; i < 60; i++ {
			if got := Previous(Next(d, g), g); !got.Equal(d) {
				t.Fatalf("Previous(Next(%v, %s)) = %v, want identity", d, g, got)
			}
			d = d.AddDate(0, 0, 1)
		}
	}
}

func TestPreviousNext_Day(t *testing.T) {
	d := date(2025, time.January, 1)
	if got := Previous(d, GranularityDay); !got.Equal(date(2024, time.December, 31)) {
		t.Errorf("Previous(%v, day) = %v, want 2024-12-31", d, got)
	}
	if got := Next(date(2024, time.February, 28), GranularityDay); !got.Equal(date(2024, time.February, 29)) {
		t.Errorf("Next(2024-02-28, day) = %v, want leap day", got)
	}
}

func TestPreviousNext_Week(t *testing.T) {
	d := date(2025, time.December, 18)
	if got := Previous(d, GranularityWeek); !got.Equal(date(2025, time.December, 11)) {
		t.Errorf("Previous(%v, week) = %v, want 7 days earlier", d, got)
	}
	if got := Next(d, GranularityWeek); !got.Equal(date(2025, time.December, 25)) {
		t.Errorf("Next(%v, week) = %v, want 7 days later", d, got)
	}
}

func TestPreviousNext_MonthClampsDayOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		fn   func(time.Time, Granularity) time.Time
		want time.Time
	}{
		{"jan 31 back to dec 31", date(2025, time.January, 31), Previous, date(2024, time.December, 31)},
		{"mar 31 back clamps to feb 28", date(2025, time.March, 31), Previous, date(2025, time.February, 28)},
		{"mar 31 back clamps to leap feb 29", date(2024, time.March, 31), Previous, date(2024, time.February, 29)},
		{"jan 31 forward clamps to feb 29", date(2024, time.January, 31), Next, date(2024, time.February, 29)},
		{"jan 31 forward clamps to feb 28", date(2025, time.January, 31), Next, date(2025, time.February, 28)},
		{"oct 31 forward clamps to nov 30", date(2025, time.October, 31), Next, date(2025, time.November, 30)},
		{"mid-month is untouched", date(2025, time.June, 15), Next, date(2025, time.July, 15)},
		{"december forward wraps the year", date(2025, time.December, 10), Next, date(2026, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, GranularityMonth); !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int
	}{
		{date(2025, time.January, 1), 1},
		{date(2025, time.December, 18), 51},
		{date(2024, time.December, 30), 1},  // ISO week 1 of 2025
		{date(2026, time.January, 1), 1},
		{date(2020, time.December, 31), 53}, // 2020 has 53 ISO weeks
	}

	for _, tt := range tests {
		if got := WeekNumber(tt.in); got != tt.want {
			t.Errorf("WeekNumber(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseGranularity(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		g, err := ParseGranularity(s)
		if err != nil {
			t.Errorf("ParseGranularity(%q) unexpected error: %v", s, err)
		}
		if string(g) != s {
			t.Errorf("ParseGranularity(%q) = %q", s, g)
		}
	}

	if _, err := ParseGranularity("year"); err == nil {
		t.Error("ParseGranularity(\"year\") expected error")
	}
	if _, err := ParseGranularity(""); err == nil {
		t.Error("ParseGranularity(\"\") expected error")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		g    Granularity
		in   time.Time
		want string
	}{
		{"day", GranularityDay, date(2025, time.December, 18), "ngày 18 tháng 12 năm 2025"},
		{"single digit day and month", GranularityDay, date(2024, time.March, 5), "ngày 5 tháng 3 năm 2024"},
		{"week", GranularityWeek, date(2025, time.December, 18), "Tuần 51, 2025"},
		{"month", GranularityMonth, date(2025, time.December, 1), "tháng 12 năm 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Range(tt.in, tt.g)
			if got := Label(r.Start, r.End, tt.g); got != tt.want {
				t.Errorf("Label = %q, want %q", got, tt.want)
			}
		})
	}
}
