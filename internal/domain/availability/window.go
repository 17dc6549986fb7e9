package availability

import (
	"cmp"
	"slices"
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// Window is a recurring weekly interval during which a barber takes clients.
type Window struct {
	Weekday time.Weekday
	Start   Clock
	End     Clock
}

func (w Window) Validate() error {
	if w.Weekday < time.Sunday || w.Weekday > time.Saturday {
		return httperr.ErrBusiness("invalid_weekday")
	}
	if w.Start < Midnight || w.End > EndOfDay || w.Start >= w.End {
		return httperr.ErrBusiness("invalid_window")
	}
	return nil
}

func (w Window) overlaps(o Window) bool {
	return w.Weekday == o.Weekday && w.Start < o.End && o.Start < w.End
}

// ValidateWindows checks every window and rejects same-weekday overlaps.
// Back-to-back windows (one ends when the next starts) are allowed.
func ValidateWindows(windows []Window) error {
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	sorted := slices.Clone(windows)
	slices.SortFunc(sorted, compareWindows)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].overlaps(sorted[i]) {
			return httperr.ErrBusiness("overlapping_windows")
		}
	}
	return nil
}

func compareWindows(a, b Window) int {
	if c := cmp.Compare(a.Weekday, b.Weekday); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

func windowsFor(windows []Window, day time.Weekday) []Window {
	var out []Window
	for _, w := range windows {
		if w.Weekday == day {
			out = append(out, w)
		}
	}
	return out
}
