package availability

import "time"

// ComputeAvailableSlots returns the bookable slots of barber on date.
//
// An inactive barber, a date before today (in p.Location, relative to p.Now)
// or a weekday without windows yields an empty, non-nil result. Otherwise the
// candidates from Generate go through Filter, the minimum-advance cut-off
// and Normalize. The function is pure: same inputs, same output.
func ComputeAvailableSlots(
	barber Barber,
	date Date,
	p Params,
	bookings []Booking,
) []Slot {

	empty := []Slot{}

	if !barber.IsActive {
		return empty
	}

	loc := p.location()
	if !p.Now.IsZero() && date.Before(DateOf(p.Now.In(loc))) {
		return empty
	}

	windows := windowsFor(barber.Windows, date.Weekday())
	if len(windows) == 0 {
		return empty
	}

	candidates := Generate(windows, date, p.Granularity, p.ServiceDuration, loc)
	candidates = Filter(candidates, ownedBy(barber.ID, bookings), p.BufferBefore, p.BufferAfter)
	candidates = notBefore(candidates, p.Now, p.MinAdvance)

	if slots := Normalize(candidates); len(slots) > 0 {
		return slots
	}
	return empty
}

// ownedBy keeps the bookings of barberID. Bookings with no barber are
// assumed to be already scoped by the caller.
func ownedBy(barberID uint, bookings []Booking) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.BarberID == 0 || b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out
}

func notBefore(slots []Slot, now time.Time, advance time.Duration) []Slot {
	if now.IsZero() {
		return slots
	}

	cutoff := now.Add(advance)
	out := slots[:0]
	for _, s := range slots {
		if !s.Start.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
