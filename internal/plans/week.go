package plans

import (
	"fmt"
	"strings"
	"time"
)

const (
	weekIDPrefix    = "week-"
	DateLayout      = "2006-01-02"
	dateRangeLayout = "Jan 2, 2006"
	daysInWeek      = 7
)

// WeekStart returns Monday 00:00 in loc of the ISO week containing t.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	sinceMonday := (int(local.Weekday()) + 6) % daysInWeek
	y, m, d := local.Date()
	return time.Date(y, m, d-sinceMonday, 0, 0, 0, 0, loc)
}

// WeekID is the deterministic document id of the week containing t, e.g. week-2025-05-05.
func WeekID(t time.Time, loc *time.Location) string {
	return weekIDPrefix + WeekStart(t, loc).Format(DateLayout)
}

// ParseWeekID returns the week start encoded in a week id.
func ParseWeekID(weekID string, loc *time.Location) (time.Time, error) {
	dateStr, ok := strings.CutPrefix(weekID, weekIDPrefix)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	start, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	if start.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("%w: %q does not start on monday", ErrInvalidWeekID, weekID)
	}
	return start, nil
}

// GenerateWeek builds a fresh week, Monday to Sunday, without modules and
// with all rewards unclaimed.
func GenerateWeek(t time.Time, loc *time.Location) Week {
	start := WeekStart(t, loc)
	y, m, d := start.Date()

	days := make([]DayPlan, 0, daysInWeek)
	for offset := 0; offset < daysInWeek; offset++ {
		// built from the calendar date so DST changes keep midnight
		date := time.Date(y, m, d+offset, 0, 0, 0, 0, loc)
		days = append(days, DayPlan{
			DayName: date.Weekday().String(),
			Date:    date,
		})
	}

	return Week{
		ID:    weekIDPrefix + start.Format(DateLayout),
		Start: start,
		Days:  days,
	}
}

// IsSameDay reports whether a and b fall on the same calendar day in loc.
// A zero time is never the same day as anything.
func IsSameDay(a, b time.Time, loc *time.Location) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// Contains reports whether t falls within the week starting at start.
func Contains(start, t time.Time) bool {
	y, m, d := start.Date()
	end := time.Date(y, m, d+daysInWeek, 0, 0, 0, 0, start.Location())
	return !t.Before(start) && t.Before(end)
}

// DateRange formats the first and last day of the plan, e.g. "May 5, 2025 – May 11, 2025".
func DateRange(days []DayPlan, loc *time.Location) string {
	if len(days) == 0 {
		return ""
	}
	first := days[0].Date.In(loc)
	last := days[len(days)-1].Date.In(loc)
	return first.Format(dateRangeLayout) + " – " + last.Format(dateRangeLayout)
}

// ParseDay parses a YYYY-MM-DD date as midnight in loc.
func ParseDay(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}
