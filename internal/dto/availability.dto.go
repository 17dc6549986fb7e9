package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
)

// SlotDTO carries both the local "HH:MM" label and the absolute instants;
// the label alone is ambiguous on a daylight-saving fall-back day.
type SlotDTO struct {
	Start   string    `json:"start"`
	End     string    `json:"end"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type AvailabilityDTO struct {
	BarberID           uint      `json:"barber_id"`
	Date               string    `json:"date"`
	Timezone           string    `json:"timezone"`
	ServiceDurationMin int       `json:"service_duration_min"`
	Slots              []SlotDTO `json:"slots"`
}

func NewAvailabilityDTO(
	barberID uint,
	date domain.Date,
	tz string,
	serviceDuration time.Duration,
	slots []domain.Slot,
) AvailabilityDTO {

	out := AvailabilityDTO{
		BarberID:           barberID,
		Date:               date.String(),
		Timezone:           tz,
		ServiceDurationMin: int(serviceDuration / time.Minute),
		Slots:              make([]SlotDTO, 0, len(slots)),
	}

	for _, s := range slots {
		out.Slots = append(out.Slots, SlotDTO{
			Start:   s.Start.Format("15:04"),
			End:     s.End.Format("15:04"),
			StartAt: s.Start,
			EndAt:   s.End,
		})
	}

	return out
}
