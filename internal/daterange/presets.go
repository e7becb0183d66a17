package daterange

import (
	"fmt"
	"time"
)

// Preset names a convenience date range computed relative to "now" in UTC.
type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetLast7Days  Preset = "last_7_days"
	PresetLast30Days Preset = "last_30_days"
	PresetThisWeek   Preset = "this_week"
	PresetLastWeek   Preset = "last_week"
	PresetThisMonth  Preset = "this_month"
	PresetLastMonth  Preset = "last_month"
	PresetThisYear   Preset = "this_year"
	PresetLastYear   Preset = "last_year"
)

// Presets lists all presets in display order.
var Presets = []Preset{
	PresetToday,
	PresetYesterday,
	PresetLast7Days,
	PresetLast30Days,
	PresetThisWeek,
	PresetLastWeek,
	PresetThisMonth,
	PresetLastMonth,
	PresetThisYear,
	PresetLastYear,
}

func (p Preset) Label() string {
	switch p {
	case PresetToday:
		return "Today"
	case PresetYesterday:
		return "Yesterday"
	case PresetLast7Days:
		return "Last 7 Days"
	case PresetLast30Days:
		return "Last 30 Days"
	case PresetThisWeek:
		return "This Week"
	case PresetLastWeek:
		return "Last Week"
	case PresetThisMonth:
		return "This Month"
	case PresetLastMonth:
		return "Last Month"
	case PresetThisYear:
		return "This Year"
	case PresetLastYear:
		return "Last Year"
	}
	return string(p)
}

// PresetRangeAt computes the selection for a preset relative to the given
// instant, using UTC calendar arithmetic with ISO weeks starting Monday.
// Trailing-window and "this ..." presets end on the current day; "last ..."
// presets cover the full previous period. An unrecognized preset is a
// programmer error and panics.
func PresetRangeAt(p Preset, now time.Time) Selection {
	today := floorDayUTC(now)

	switch p {
	case PresetToday:
		return days(today, today)
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return days(y, y)
	case PresetLast7Days:
		return days(today.AddDate(0, 0, -6), today)
	case PresetLast30Days:
		return days(today.AddDate(0, 0, -29), today)
	case PresetThisWeek:
		return days(mondayOf(today), today)
	case PresetLastWeek:
		monday := mondayOf(today).AddDate(0, 0, -7)
		return days(monday, monday.AddDate(0, 0, 6))
	case PresetThisMonth:
		return days(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), today)
	case PresetLastMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return days(first, first.AddDate(0, 1, -1))
	case PresetThisYear:
		return days(time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC), today)
	case PresetLastYear:
		first := time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
		return days(first, time.Date(today.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC))
	}
	panic(fmt.Sprintf("daterange: unknown preset %q", p))
}

// PresetRange computes the selection for a preset relative to the current time.
func PresetRange(p Preset) Selection {
	return PresetRangeAt(p, time.Now().UTC())
}

func days(from, to time.Time) Selection {
	return Selection{From: &from, To: &to}
}

// mondayOf returns the Monday of the ISO week containing d.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
