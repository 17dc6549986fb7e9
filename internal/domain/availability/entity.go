package availability

import (
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_booking_status")
}

// Blocks reports whether a booking in this status occupies the barber's time.
func (s BookingStatus) Blocks() bool {
	return s == BookingPending || s == BookingConfirmed
}

// ===============================
// Engine inputs / outputs
// ===============================

type Barber struct {
	ID           uint
	EnterpriseID uint
	IsActive     bool
	Windows      []Window
}

// Booking is a committed appointment as seen by the engine. Timestamps are
// absolute; the engine never reads their location.
type Booking struct {
	BarberID uint
	Start    time.Time
	End      time.Time
	Status   BookingStatus
}

type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// In returns the slot with both ends expressed in loc.
func (s Slot) In(loc *time.Location) Slot {
	return Slot{Start: s.Start.In(loc), End: s.End.In(loc)}
}

// Params carries the enterprise/service scheduling rules for one computation.
type Params struct {
	ServiceDuration time.Duration
	Granularity     time.Duration
	BufferBefore    time.Duration
	BufferAfter     time.Duration

	// MinAdvance is the minimum lead time between Now and a slot start.
	MinAdvance time.Duration

	Location *time.Location
	Now      time.Time
}

func (p Params) Validate() error {
	if p.ServiceDuration <= 0 || p.ServiceDuration%time.Minute != 0 {
		return httperr.ErrBusiness("invalid_service_duration")
	}
	if p.Granularity <= 0 || p.Granularity%time.Minute != 0 {
		return httperr.ErrBusiness("invalid_granularity")
	}
	if p.BufferBefore < 0 || p.BufferAfter < 0 {
		return httperr.ErrBusiness("invalid_buffer")
	}
	if p.MinAdvance < 0 {
		return httperr.ErrBusiness("invalid_min_advance")
	}
	return nil
}

func (p Params) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
