// Package weekdates computes the calendar dates of a training week and the
// week keys used for prize bookkeeping.
//
// Two week-numbering conventions live here on purpose:
//   - ExplicitWeekDates uses the legacy convention where week 1 starts on the
//     first Monday of the year (kept for old bookmarked week links);
//   - ISOWeekKey uses ISO-8601 numbering (week 1 contains the year's first
//     Thursday, weeks run Monday-Sunday), which keys the prize catalog.
//
// The two disagree for a few days around new year, so a week shown via an
// explicit week link is not guaranteed to match the prize key of its dates.
package weekdates

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all workout dates.
const DateLayout = "2006-01-02"

const daysInWeek = 7

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWeek = errors.New("week number must be between 1 and 53")
)

// ParseDate parses and validates a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseWeekKey parses a YYYY-WW week string, e.g. "2025-20".
func ParseWeekKey(s string) (year, week int, err error) {
	if _, err := fmt.Sscanf(s, "%4d-%2d", &year, &week); err != nil {
		return 0, 0, fmt.Errorf("invalid week, expected YYYY-WW: %w", err)
	}
	if week < 1 || week > 53 {
		return 0, 0, ErrInvalidWeek
	}
	return year, week, nil
}

// CurrentWeekDates returns the 7 dates (Monday through Sunday) of the week
// containing now, in the location of now. The returned slice always contains
// now's own date.
func CurrentWeekDates(now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Monday=0 .. Sunday=6
	sinceMonday := (int(today.Weekday()) + 6) % daysInWeek
	monday := today.AddDate(0, 0, -sinceMonday)

	return weekFrom(monday)
}

// ExplicitWeekDates returns the 7 dates of the given week of the given year,
// legacy convention: week 1 begins on the first Monday of the year.
func ExplicitWeekDates(year, week int) ([]string, error) {
	if week < 1 || week > 53 {
		return nil, ErrInvalidWeek
	}

	firstMonday := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	for firstMonday.Weekday() != time.Monday {
		firstMonday = firstMonday.AddDate(0, 0, 1)
	}

	return weekFrom(firstMonday.AddDate(0, 0, (week-1)*daysInWeek)), nil
}

// ISOWeekKey formats the ISO year-week key for a date, e.g. "2025-07".
// Note: uses the ISO year, not the calendar year, so dates around new year
// always land in the week they ISO-belong to.
func ISOWeekKey(t time.Time) string {
	isoYear, isoWeek := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", isoYear, isoWeek)
}

func weekFrom(monday time.Time) []string {
	dates := make([]string, 0, daysInWeek)
	for i := 0; i < daysInWeek; i++ {
		dates = append(dates, monday.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
