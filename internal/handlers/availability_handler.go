package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/dto"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	ucAvailability "github.com/BruksfildServices01/barber-availability/internal/usecase/availability"
)

type AvailabilityHandler struct {
	uc *ucAvailability.GetAvailability
}

func NewAvailabilityHandler(uc *ucAvailability.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// GET /api/public/:slug/barbers/:barberId/availability?date=YYYY-MM-DD&service_id=
func (h *AvailabilityHandler) Public(c *gin.Context) {
	in, ok := h.input(c, "barberId")
	if !ok {
		return
	}
	in.EnterpriseSlug = c.Param("slug")

	h.respond(c, in)
}

// GET /api/barbers/:id/availability?date=YYYY-MM-DD&service_id=
func (h *AvailabilityHandler) Private(c *gin.Context) {
	in, ok := h.input(c, "id")
	if !ok {
		return
	}
	in.EnterpriseID = enterpriseID(c)

	h.respond(c, in)
}

// GET /api/public/:slug/barbers/:barberId/availability/check?date=&time=HH:MM&service_id=
func (h *AvailabilityHandler) Check(c *gin.Context) {
	in, ok := h.input(c, "barberId")
	if !ok {
		return
	}
	in.EnterpriseSlug = c.Param("slug")

	hm := c.Query("time")
	if hm == "" {
		httperr.BadRequest(c, "missing_time", "Informe o horário (HH:MM).")
		return
	}

	available, err := h.uc.Check(c.Request.Context(), in, hm)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      in.Date,
		"time":      hm,
		"available": available,
	})
}

func (h *AvailabilityHandler) input(c *gin.Context, barberParam string) (ucAvailability.Input, bool) {
	barberID, ok := uintParam(c, barberParam, "invalid_barber_id")
	if !ok {
		return ucAvailability.Input{}, false
	}

	serviceID, ok := uintQuery(c, "service_id", "invalid_service_id")
	if !ok {
		return ucAvailability.Input{}, false
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (AAAA-MM-DD).")
		return ucAvailability.Input{}, false
	}

	return ucAvailability.Input{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}, true
}

func (h *AvailabilityHandler) respond(c *gin.Context, in ucAvailability.Input) {
	res, err := h.uc.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAvailabilityDTO(
		in.BarberID,
		res.Date,
		res.Timezone,
		res.ServiceDuration,
		res.Slots,
	))
}
