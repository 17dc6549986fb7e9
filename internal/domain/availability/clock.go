package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// Clock is a local wall-clock time of day, in minutes since midnight.
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60
)

// ParseClock parses "HH:MM". "24:00" is accepted as the end of the day.
func ParseClock(hm string) (Clock, error) {
	hm = strings.TrimSpace(hm)
	if hm == "24:00" {
		return EndOfDay, nil
	}

	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time_of_day")
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ClockOf returns the wall-clock time of day of t in its own location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func minutesOf(d time.Duration) int {
	return int(d / time.Minute)
}
