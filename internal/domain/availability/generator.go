package availability

import "time"

// Generate builds the candidate grid for date from the windows that fall on
// its weekday. Each window is walked independently from its start in steps of
// granularity; a candidate is kept while it ends within the window.
//
// Stepping happens in local wall-clock minutes, so a daylight-saving day
// yields one candidate per wall-clock step: times skipped by a spring-forward
// jump produce nothing and repeated fall-back times produce one slot.
func Generate(
	windows []Window,
	date Date,
	granularity time.Duration,
	serviceDuration time.Duration,
	loc *time.Location,
) []Slot {

	step := Clock(minutesOf(granularity))
	length := Clock(minutesOf(serviceDuration))
	if step <= 0 || length <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var slots []Slot
	for _, w := range windowsFor(windows, date.Weekday()) {
		if w.End-w.Start < length {
			continue
		}

		windowEnd, _ := date.At(w.End, loc)

		for cur := w.Start; cur+length <= w.End; cur += step {
			start, ok := date.At(cur, loc)
			if !ok {
				continue
			}

			end := start.Add(serviceDuration)
			if end.After(windowEnd) {
				continue
			}

			slots = append(slots, Slot{Start: start, End: end})
		}
	}

	return slots
}
