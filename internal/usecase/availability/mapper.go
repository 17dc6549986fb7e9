package availability

import (
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

// WindowsFromHours converts stored available hours into engine windows. Any
// malformed or overlapping row invalidates the whole schedule.
func WindowsFromHours(hours []models.AvailableHour) ([]domain.Window, error) {
	windows := make([]domain.Window, 0, len(hours))

	for _, h := range hours {
		start, err := domain.ParseClock(h.StartTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_available_hours")
		}
		end, err := domain.ParseClock(h.EndTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_available_hours")
		}

		windows = append(windows, domain.Window{
			Weekday: time.Weekday(h.Weekday),
			Start:   start,
			End:     end,
		})
	}

	if err := domain.ValidateWindows(windows); err != nil {
		return nil, httperr.ErrBusiness("invalid_available_hours")
	}

	return windows, nil
}

func barberFromModel(b *models.Barber) (domain.Barber, error) {
	windows, err := WindowsFromHours(b.AvailableHours)
	if err != nil {
		return domain.Barber{}, err
	}

	return domain.Barber{
		ID:           b.ID,
		EnterpriseID: b.EnterpriseID,
		IsActive:     b.IsActive,
		Windows:      windows,
	}, nil
}

// bookingsFromModels drops rows with an unknown status; they cannot be
// classified as blocking.
func bookingsFromModels(rows []models.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))

	for _, r := range rows {
		status, err := domain.ParseBookingStatus(r.Status)
		if err != nil {
			continue
		}
		out = append(out, domain.Booking{
			BarberID: r.BarberID,
			Start:    r.StartTime,
			End:      r.EndTime,
			Status:   status,
		})
	}

	return out
}

func paramsFor(
	ent *models.Enterprise,
	svc *models.Service,
	loc *time.Location,
	now time.Time,
) domain.Params {

	durationMin := ent.DefaultServiceMin
	before := ent.BufferBeforeMin
	after := ent.BufferAfterMin

	if svc != nil {
		durationMin = svc.DurationMin
		if svc.BufferBeforeMin != nil {
			before = *svc.BufferBeforeMin
		}
		if svc.BufferAfterMin != nil {
			after = *svc.BufferAfterMin
		}
	}

	return domain.Params{
		ServiceDuration: minutes(durationMin),
		Granularity:     minutes(ent.SlotGranularityMin),
		BufferBefore:    minutes(before),
		BufferAfter:     minutes(after),
		MinAdvance:      minutes(ent.MinAdvanceMinutes),
		Location:        loc,
		Now:             now,
	}
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
