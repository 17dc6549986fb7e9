package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/dto"
	"github.com/BruksfildServices01/barber-availability/internal/models"
	ucAvailability "github.com/BruksfildServices01/barber-availability/internal/usecase/availability"
)

type stubRepo struct {
	bookings []models.Booking
}

var stubEnterprise = &models.Enterprise{
	ID: 1, Slug: "navalha", Timezone: "America/Sao_Paulo",
	DefaultServiceMin: 30, SlotGranularityMin: 30,
}

func (s *stubRepo) GetEnterpriseByID(_ context.Context, id uint) (*models.Enterprise, error) {
	if id != stubEnterprise.ID {
		return nil, gorm.ErrRecordNotFound
	}
	return stubEnterprise, nil
}

func (s *stubRepo) GetEnterpriseBySlug(_ context.Context, slug string) (*models.Enterprise, error) {
	if slug != stubEnterprise.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	return stubEnterprise, nil
}

func (s *stubRepo) GetBranch(context.Context, uint, uint) (*models.Branch, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetService(_ context.Context, _ uint, id uint) (*models.Service, error) {
	if id != 3 {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Service{ID: 3, DurationMin: 60, Active: true}, nil
}

func (s *stubRepo) GetBarberWithHours(_ context.Context, _ uint, id uint) (*models.Barber, error) {
	if id != 7 {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Barber{
		ID: 7, EnterpriseID: 1, IsActive: true,
		AvailableHours: []models.AvailableHour{
			{Weekday: int(time.Monday), StartTime: "09:00", EndTime: "12:00"},
		},
	}, nil
}

func (s *stubRepo) ListBookingsOverlapping(context.Context, uint, time.Time, time.Time) ([]models.Booking, error) {
	return s.bookings, nil
}

func availabilityRouter(repo *stubRepo) *gin.Engine {
	now := time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)
	uc := ucAvailability.NewGetAvailability(repo, nil).WithClock(func() time.Time { return now })
	h := NewAvailabilityHandler(uc)

	r := gin.New()
	r.GET("/api/public/:slug/barbers/:barberId/availability", h.Public)
	r.GET("/api/public/:slug/barbers/:barberId/availability/check", h.Check)
	r.GET("/api/barbers/:id/availability", asUser(7, 1, "barber"), h.Private)
	return r
}

func TestAvailabilityPublic(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	repo := &stubRepo{bookings: []models.Booking{{
		BarberID:  7,
		StartTime: time.Date(2026, 10, 26, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2026, 10, 26, 10, 30, 0, 0, loc),
		Status:    "confirmed",
	}}}
	r := availabilityRouter(repo)

	w := do(r, http.MethodGet, "/api/public/navalha/barbers/7/availability?date=2026-10-26", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.AvailabilityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-26", body.Date)
	assert.Equal(t, "America/Sao_Paulo", body.Timezone)

	var starts []string
	for _, s := range body.Slots {
		starts = append(starts, s.Start)
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, starts)
}

func TestAvailabilityPublicWithService(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := do(r, http.MethodGet, "/api/public/navalha/barbers/7/availability?date=2026-10-26&service_id=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.AvailabilityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 60, body.ServiceDurationMin)
	require.Len(t, body.Slots, 5)
	assert.Equal(t, "11:00", body.Slots[4].Start)
	assert.Equal(t, "12:00", body.Slots[4].End)
}

func TestAvailabilityErrors(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/public/navalha/barbers/7/availability", http.StatusBadRequest, "missing_date"},
		{"/api/public/navalha/barbers/x/availability?date=2026-10-26", http.StatusBadRequest, "invalid_barber_id"},
		{"/api/public/navalha/barbers/7/availability?date=2026-10-26&service_id=abc", http.StatusBadRequest, "invalid_service_id"},
		{"/api/public/navalha/barbers/7/availability?date=26-10-2026", http.StatusBadRequest, "invalid_date"},
		{"/api/public/ghost/barbers/7/availability?date=2026-10-26", http.StatusNotFound, "enterprise_not_found"},
		{"/api/public/navalha/barbers/8/availability?date=2026-10-26", http.StatusNotFound, "barber_not_found"},
		{"/api/public/navalha/barbers/7/availability?date=2026-10-26&service_id=9", http.StatusNotFound, "service_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestAvailabilityPrivateUsesTokenEnterprise(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := do(r, http.MethodGet, "/api/barbers/7/availability?date=2026-10-27", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestAvailabilityCheck(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := do(r, http.MethodGet, "/api/public/navalha/barbers/7/availability/check?date=2026-10-26&time=11:30", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)

	w = do(r, http.MethodGet, "/api/public/navalha/barbers/7/availability/check?date=2026-10-26&time=12:00", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)

	w = do(r, http.MethodGet, "/api/public/navalha/barbers/7/availability/check?date=2026-10-26", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
