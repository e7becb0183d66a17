// Package daterange converts between calendar range selections and the
// canonical closed UTC interval used by the rank API.
package daterange

import (
	"fmt"
	"time"
)

// wireLayout is the ISO-8601 instant format used on the wire,
// millisecond precision with a Z suffix for UTC.
const wireLayout = "2006-01-02T15:04:05.000Z07:00"

// Selection is the calendar-facing form of a date range. Either endpoint
// may be open while the user is still picking.
type Selection struct {
	From *time.Time
	To   *time.Time
}

// Range is the canonical wire form: either both endpoints are set
// (From at 00:00:00.000 UTC, To at 23:59:59.999 UTC of their calendar
// days) or both are empty. It is never half-populated.
type Range struct {
	From string
	To   string
}

// IsZero reports whether the range carries no date filter.
func (r Range) IsZero() bool { return r.From == "" && r.To == "" }

// Normalize converts a selection into the canonical range. If either
// endpoint is missing the result is fully empty; a date filter is all
// or nothing.
func Normalize(from, to *time.Time) Range {
	if from == nil || to == nil {
		return Range{}
	}
	start := floorDayUTC(*from)
	end := ceilDayUTC(*to)
	return Range{
		From: start.Format(wireLayout),
		To:   end.Format(wireLayout),
	}
}

// ToSelection is the inverse of Normalize: it parses a canonical range back
// into UTC-anchored times for the calendar. It returns nil only when the
// range is fully empty.
func ToSelection(r Range) *Selection {
	if r.IsZero() {
		return nil
	}
	var sel Selection
	if r.From != "" {
		if t, err := time.Parse(time.RFC3339, r.From); err == nil {
			utc := t.UTC()
			sel.From = &utc
		}
	}
	if r.To != "" {
		if t, err := time.Parse(time.RFC3339, r.To); err == nil {
			utc := t.UTC()
			sel.To = &utc
		}
	}
	return &sel
}

// ParseDay accepts a calendar day ("2006-01-02") or a full RFC 3339 instant.
func ParseDay(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func floorDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func ceilDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
}
