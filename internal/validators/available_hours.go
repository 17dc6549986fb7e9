package validators

import (
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

type AvailableHourInput struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ValidateAvailableHours parses and checks a full weekly schedule before it
// is stored. The returned windows are in input order.
func ValidateAvailableHours(in []AvailableHourInput) ([]domain.Window, error) {
	windows := make([]domain.Window, 0, len(in))

	for _, h := range in {
		start, err := domain.ParseClock(h.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseClock(h.EndTime)
		if err != nil {
			return nil, err
		}

		windows = append(windows, domain.Window{
			Weekday: time.Weekday(h.Weekday),
			Start:   start,
			End:     end,
		})
	}

	if err := domain.ValidateWindows(windows); err != nil {
		return nil, err
	}

	return windows, nil
}

type EnterpriseSettingsInput struct {
	Timezone           *string `json:"timezone"`
	DefaultServiceMin  *int    `json:"default_service_min"`
	SlotGranularityMin *int    `json:"slot_granularity_min"`
	BufferBeforeMin    *int    `json:"buffer_before_min"`
	BufferAfterMin     *int    `json:"buffer_after_min"`
	MinAdvanceMinutes  *int    `json:"min_advance_minutes"`
}

func ValidateEnterpriseSettings(in EnterpriseSettingsInput) error {
	if in.Timezone != nil && !timezone.IsValid(*in.Timezone) {
		return httperr.ErrBusiness("invalid_timezone")
	}
	if in.DefaultServiceMin != nil && *in.DefaultServiceMin <= 0 {
		return httperr.ErrBusiness("invalid_service_duration")
	}
	if in.SlotGranularityMin != nil && *in.SlotGranularityMin <= 0 {
		return httperr.ErrBusiness("invalid_granularity")
	}
	if negative(in.BufferBeforeMin) || negative(in.BufferAfterMin) {
		return httperr.ErrBusiness("invalid_buffer")
	}
	if negative(in.MinAdvanceMinutes) {
		return httperr.ErrBusiness("invalid_min_advance")
	}
	return nil
}

func negative(n *int) bool {
	return n != nil && *n < 0
}
