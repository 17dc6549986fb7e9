package availability

import (
	"slices"
	"sort"
	"time"
)

type interval struct {
	start time.Time
	end   time.Time
}

// Filter drops every candidate that intersects a blocking booking expanded by
// the buffers. Intervals are half-open: a slot ending exactly where an
// expanded booking begins is kept.
func Filter(
	candidates []Slot,
	bookings []Booking,
	bufferBefore time.Duration,
	bufferAfter time.Duration,
) []Slot {

	busy := busyIntervals(bookings, bufferBefore, bufferAfter)

	out := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		if !conflicts(busy, c) {
			out = append(out, c)
		}
	}
	return out
}

// busyIntervals expands, sorts and merges the blocking bookings. The result
// is disjoint and ordered, so both starts and ends increase monotonically.
func busyIntervals(bookings []Booking, before, after time.Duration) []interval {
	expanded := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.Blocks() || b.End.Before(b.Start) {
			continue
		}
		expanded = append(expanded, interval{
			start: b.Start.Add(-before),
			end:   b.End.Add(after),
		})
	}
	if len(expanded) == 0 {
		return nil
	}

	slices.SortFunc(expanded, func(a, b interval) int {
		return a.start.Compare(b.start)
	})

	merged := expanded[:1]
	for _, iv := range expanded[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func conflicts(busy []interval, s Slot) bool {
	i := sort.Search(len(busy), func(i int) bool {
		return busy[i].end.After(s.Start)
	})
	return i < len(busy) && busy[i].start.Before(s.End)
}
