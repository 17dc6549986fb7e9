package availability

import (
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// Date is a calendar date with no location attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, httperr.ErrBusiness("invalid_date")
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return d.noon(time.UTC).Format("2006-01-02")
}

func (d Date) Weekday() time.Weekday {
	return d.noon(time.UTC).Weekday()
}

func (d Date) Before(o Date) bool {
	return d.noon(time.UTC).Before(o.noon(time.UTC))
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.noon(time.UTC).AddDate(0, 0, n))
}

// Start returns the first instant of d in loc.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At resolves a wall-clock time of day on d in loc. ok is false when that
// wall-clock time does not exist on d (skipped by a daylight-saving jump).
func (d Date) At(c Clock, loc *time.Location) (t time.Time, ok bool) {
	t = time.Date(d.Year, d.Month, d.Day, 0, int(c), 0, 0, loc)
	if c == EndOfDay {
		return t, DateOf(t) == d.AddDays(1)
	}
	return t, DateOf(t) == d && ClockOf(t) == c
}

func (d Date) noon(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, loc)
}
