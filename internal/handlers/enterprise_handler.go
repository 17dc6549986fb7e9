package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/models"
	"github.com/BruksfildServices01/barber-availability/internal/validators"
)

type EnterpriseHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEnterpriseHandler(db *gorm.DB, audit *audit.Dispatcher) *EnterpriseHandler {
	return &EnterpriseHandler{db: db, audit: audit}
}

type UpdateEnterpriseRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`

	validators.EnterpriseSettingsInput
}

func (h *EnterpriseHandler) GetMeEnterprise(c *gin.Context) {
	ent, ok := h.load(c)
	if !ok {
		return
	}

	httpresp.OK(c, ent)
}

func (h *EnterpriseHandler) UpdateMeEnterprise(c *gin.Context) {
	ent, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if err := validators.ValidateEnterpriseSettings(req.EnterpriseSettingsInput); err != nil {
		writeError(c, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		ent.Name = *req.Name
	}
	if req.Phone != nil {
		ent.Phone = *req.Phone
	}
	if req.Timezone != nil {
		ent.Timezone = *req.Timezone
	}
	if req.DefaultServiceMin != nil {
		ent.DefaultServiceMin = *req.DefaultServiceMin
	}
	if req.SlotGranularityMin != nil {
		ent.SlotGranularityMin = *req.SlotGranularityMin
	}
	if req.BufferBeforeMin != nil {
		ent.BufferBeforeMin = *req.BufferBeforeMin
	}
	if req.BufferAfterMin != nil {
		ent.BufferAfterMin = *req.BufferAfterMin
	}
	if req.MinAdvanceMinutes != nil {
		ent.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.WithContext(c.Request.Context()).Save(ent).Error; err != nil {
		httperr.Internal(c, "failed_to_update_enterprise", "Erro ao salvar as configurações da empresa.")
		return
	}

	dispatchAudit(h.audit, c, "enterprise_settings_updated", "enterprise", &ent.ID, req.EnterpriseSettingsInput)

	httpresp.OK(c, ent)
}

func (h *EnterpriseHandler) load(c *gin.Context) (*models.Enterprise, bool) {
	var ent models.Enterprise
	if err := h.db.WithContext(c.Request.Context()).First(&ent, enterpriseID(c)).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "enterprise_not_found", "Empresa não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_enterprise", "Erro ao buscar dados da empresa.")
		return nil, false
	}
	return &ent, true
}
