package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/metrics"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

// BookingUpserter stores a booking snapshot keyed by its external id.
type BookingUpserter interface {
	Upsert(ctx context.Context, b *models.Booking) error
}

type WebhookHandler struct {
	db       *gorm.DB
	bookings BookingUpserter
	metrics  *metrics.Availability
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewWebhookHandler(
	db *gorm.DB,
	bookings BookingUpserter,
	m *metrics.Availability,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{db: db, bookings: bookings, metrics: m, audit: audit, log: log}
}

// BookingWebhookRequest mirrors an appointment of the external booking
// system. EndTime may be omitted when ServiceID is given.
type BookingWebhookRequest struct {
	ExternalID   string     `json:"external_id" binding:"required"`
	EnterpriseID uint       `json:"enterprise_id"`
	BarberID     uint       `json:"barber_id" binding:"required"`
	ServiceID    *uint      `json:"service_id"`
	StartTime    time.Time  `json:"start_time" binding:"required"`
	EndTime      *time.Time `json:"end_time"`
	Status       string     `json:"status" binding:"required"`
}

// POST /api/webhooks/bookings
func (h *WebhookHandler) Bookings(c *gin.Context) {
	var req BookingWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, "invalid_request", "Payload inválido.")
		return
	}

	ctx := c.Request.Context()

	status, err := domain.ParseBookingStatus(strings.ToLower(req.Status))
	if err != nil {
		h.reject(c, "invalid_booking_status", "Status de agendamento inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(ctx).
		Select("id", "enterprise_id").
		First(&barber, req.BarberID).Error; err != nil {

		if httperr.IsNotFound(err) {
			h.reject(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		h.fail(c, err)
		return
	}

	if req.EnterpriseID != 0 && req.EnterpriseID != barber.EnterpriseID {
		h.reject(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	end, ok := h.endTime(c, &req, barber.EnterpriseID)
	if !ok {
		return
	}

	if !end.After(req.StartTime) {
		h.reject(c, "invalid_booking_interval", "O fim deve ser depois do início.")
		return
	}

	booking := models.Booking{
		EnterpriseID: barber.EnterpriseID,
		BarberID:     barber.ID,
		ServiceID:    req.ServiceID,
		ExternalID:   req.ExternalID,
		StartTime:    req.StartTime.UTC(),
		EndTime:      end.UTC(),
		Status:       string(status),
	}

	if err := h.bookings.Upsert(ctx, &booking); err != nil {
		if httperr.IsExclusionConflict(err) {
			h.metrics.ObserveWebhook("conflict")
			httperr.Conflict(c, "booking_overlap", "Já existe um agendamento neste horário.")
			return
		}
		h.fail(c, err)
		return
	}

	h.metrics.ObserveWebhook("accepted")

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			EnterpriseID: booking.EnterpriseID,
			BarberID:     &booking.BarberID,
			Action:       "booking_synced",
			Entity:       "booking",
			EntityID:     &booking.ID,
			Metadata: gin.H{
				"external_id": booking.ExternalID,
				"status":      booking.Status,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          booking.ID,
		"external_id": booking.ExternalID,
		"status":      booking.Status,
	})
}

// endTime returns the explicit end, or start plus the service duration.
func (h *WebhookHandler) endTime(c *gin.Context, req *BookingWebhookRequest, entID uint) (time.Time, bool) {
	if req.EndTime != nil {
		return *req.EndTime, true
	}

	if req.ServiceID == nil {
		h.reject(c, "missing_end_time", "Informe end_time ou service_id.")
		return time.Time{}, false
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND enterprise_id = ?", *req.ServiceID, entID).
		First(&svc).Error; err != nil {

		if httperr.IsNotFound(err) {
			h.reject(c, "service_not_found", "Serviço não encontrado.")
			return time.Time{}, false
		}
		h.fail(c, err)
		return time.Time{}, false
	}

	return req.StartTime.Add(time.Duration(svc.DurationMin) * time.Minute), true
}

func (h *WebhookHandler) reject(c *gin.Context, code, msg string) {
	h.metrics.ObserveWebhook("rejected")
	if strings.HasSuffix(code, "_not_found") {
		httperr.NotFound(c, code, msg)
		return
	}
	httperr.BadRequest(c, code, msg)
}

func (h *WebhookHandler) fail(c *gin.Context, err error) {
	h.metrics.ObserveWebhook("error")
	h.log.Error("booking webhook failed", zap.Error(err))
	httperr.Unavailable(c, "upstream_unavailable", "Serviço temporariamente indisponível.")
}
