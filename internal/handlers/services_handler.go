package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type ServicesHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServicesHandler(db *gorm.DB, audit *audit.Dispatcher) *ServicesHandler {
	return &ServicesHandler{db: db, audit: audit}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMin     int     `json:"duration_min" binding:"required,min=1"`
	BufferBeforeMin *int    `json:"buffer_before_min" binding:"omitempty,min=0"`
	BufferAfterMin  *int    `json:"buffer_after_min" binding:"omitempty,min=0"`
	Price           float64 `json:"price" binding:"min=0"`
}

func (h *ServicesHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("enterprise_id = ?", enterpriseID(c)).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ListPublic returns the active services of the enterprise named by :slug.
func (h *ServicesHandler) ListPublic(c *gin.Context) {
	ctx := c.Request.Context()
	slug := strings.ToLower(c.Param("slug"))

	var ent models.Enterprise
	if err := h.db.WithContext(ctx).Where("slug = ?", slug).First(&ent).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "enterprise_not_found", "Empresa não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_enterprise", "Erro ao buscar empresa.")
		return
	}

	var services []models.Service
	if err := h.db.WithContext(ctx).
		Where("enterprise_id = ? AND active = ?", ent.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServicesHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	svc := models.Service{
		EnterpriseID:    enterpriseID(c),
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMin:     req.DurationMin,
		BufferBeforeMin: req.BufferBeforeMin,
		BufferAfterMin:  req.BufferAfterMin,
		Price:           req.Price,
		Active:          true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao cadastrar serviço.")
		return
	}

	dispatchAudit(h.audit, c, "service_created", "service", &svc.ID, gin.H{
		"duration_min": svc.DurationMin,
	})

	httpresp.Created(c, svc)
}
