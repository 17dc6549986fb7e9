package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/models"
	"github.com/BruksfildServices01/barber-availability/internal/validators"
)

type AvailableHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAvailableHoursHandler(db *gorm.DB, audit *audit.Dispatcher) *AvailableHoursHandler {
	return &AvailableHoursHandler{db: db, audit: audit}
}

type AvailableHoursUpdateRequest struct {
	Hours []validators.AvailableHourInput `json:"hours"`
}

func (h *AvailableHoursHandler) Get(c *gin.Context) {
	barberID, ok := h.barberOfEnterprise(c)
	if !ok {
		return
	}

	var hours []models.AvailableHour
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_available_hours", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, hours)
}

// Update replaces the barber's whole weekly schedule.
func (h *AvailableHoursHandler) Update(c *gin.Context) {
	barberID, ok := h.barberOfEnterprise(c)
	if !ok {
		return
	}

	var req AvailableHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	windows, err := validators.ValidateAvailableHours(req.Hours)
	if err != nil {
		writeError(c, err)
		return
	}

	rows := make([]models.AvailableHour, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, models.AvailableHour{
			BarberID:  barberID,
			Weekday:   int(w.Weekday),
			StartTime: w.Start.String(),
			EndTime:   w.End.String(),
		})
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.AvailableHour{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_available_hours", "Erro ao salvar horários.")
		return
	}

	dispatchAudit(h.audit, c, "available_hours_updated", "barber", &barberID, gin.H{
		"windows": len(rows),
	})

	c.JSON(http.StatusOK, gin.H{"hours": rows})
}

func (h *AvailableHoursHandler) barberOfEnterprise(c *gin.Context) (uint, bool) {
	barberID, ok := uintParam(c, "id", "invalid_barber_id")
	if !ok {
		return 0, false
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Barber{}).
		Where("id = ? AND enterprise_id = ?", barberID, enterpriseID(c)).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return 0, false
	}
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return 0, false
	}

	return barberID, true
}
