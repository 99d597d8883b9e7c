// Package period implements the calendar arithmetic behind dashboard
// filtering: day/week/month boundaries relative to a reference date,
// navigation between periods and Vietnamese period labels.
//
// All functions are pure and preserve the location of the input time.
// Weeks start on Monday (ISO 8601).
package period

import (
	"fmt"
	"time"
)

// Granularity is the unit of time period used for dashboard filtering.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity converts a query-string value into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("invalid granularity %q: must be one of day, week, month", s)
}

// DateRange is an inclusive period boundary pair.
type DateRange struct {
	Start       time.Time   `json:"startDate"`
	End         time.Time   `json:"endDate"`
	Granularity Granularity `json:"granularity"`
}

// endOfDayNanos puts the boundary at 23:59:59.999, matching the millisecond
// precision the dashboard clients send back as query parameters.
const endOfDayNanos = 999 * int(time.Millisecond)

// StartOfDay returns the same calendar day at 00:00:00.000.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the same calendar day at 23:59:59.999.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, endOfDayNanos, d.Location())
}

// StartOfWeek returns the Monday of the week containing d, at 00:00:00.000.
// A Sunday input resolves to the Monday six days earlier, not one day later.
func StartOfWeek(d time.Time) time.Time {
	offset := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return StartOfDay(d.AddDate(0, 0, -offset))
}

// EndOfWeek returns the Sunday of the week containing d, at 23:59:59.999.
func EndOfWeek(d time.Time) time.Time {
	return EndOfDay(StartOfWeek(d).AddDate(0, 0, 6))
}

// StartOfMonth returns day 1 of d's month at 00:00:00.000.
func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// EndOfMonth returns the last calendar day of d's month at 23:59:59.999.
// Day 0 of the following month normalizes to 28/29/30/31 as appropriate.
func EndOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 0, 23, 59, 59, endOfDayNanos, d.Location())
}

// Range returns the inclusive period boundaries for the granularity
// containing the reference date.
func Range(d time.Time, g Granularity) DateRange {
	switch g {
	case GranularityWeek:
		return DateRange{Start: StartOfWeek(d), End: EndOfWeek(d), Granularity: g}
	case GranularityMonth:
		return DateRange{Start: StartOfMonth(d), End: EndOfMonth(d), Granularity: g}
	default:
		return DateRange{Start: StartOfDay(d), End: EndOfDay(d), Granularity: GranularityDay}
	}
}

// Previous steps the reference date back by one period unit.
// Month steps clamp the day-of-month to the last valid day of the target
// month, so 31 March steps back to 28/29 February rather than overflowing.
func Previous(d time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return d.AddDate(0, 0, -7)
	case GranularityMonth:
		return shiftMonth(d, -1)
	default:
		return d.AddDate(0, 0, -1)
	}
}

// Next steps the reference date forward by one period unit, symmetric
// with Previous.
func Next(d time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return d.AddDate(0, 0, 7)
	case GranularityMonth:
		return shiftMonth(d, 1)
	default:
		return d.AddDate(0, 0, 1)
	}
}

// shiftMonth moves d by delta months, clamping the day-of-month to the
// target month's length and keeping the time-of-day intact.
func shiftMonth(d time.Time, delta int) time.Time {
	year, month := d.Year(), d.Month()+time.Month(delta)

	// Last day of the target month via the day-0 trick.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, d.Location()).Day()

	day := d.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month, day,
		d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// WeekNumber returns the ISO 8601 week number (1..53) of d.
func WeekNumber(d time.Time) int {
	_, week := d.ISOWeek()
	return week
}

// Label renders a human-readable Vietnamese label for a period.
//
//	day   -> "ngày 18 tháng 12 năm 2025"
//	week  -> "Tuần 51, 2025"
//	month -> "tháng 12 năm 2025"
//
// The week label uses the calendar year of the period start, not the ISO
// week-based year, matching what the dashboard header displays.
func Label(start, end time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		return fmt.Sprintf("Tuần %d, %d", WeekNumber(start), start.Year())
	case GranularityMonth:
		return fmt.Sprintf("tháng %d năm %d", int(start.Month()), start.Year())
	default:
		return fmt.Sprintf("ngày %d tháng %d năm %d", start.Day(), int(start.Month()), start.Year())
	}
}
