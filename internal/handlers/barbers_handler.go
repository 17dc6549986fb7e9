package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type BarbersHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarbersHandler(db *gorm.DB, audit *audit.Dispatcher) *BarbersHandler {
	return &BarbersHandler{db: db, audit: audit}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	BranchID *uint  `json:"branch_id"`
	BoxID    *uint  `json:"box_id"`
}

type SetBarberActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *BarbersHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Where("enterprise_id = ?", enterpriseID(c))

	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var barbers []models.Barber
	if err := q.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarbersHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	entID := enterpriseID(c)
	ctx := c.Request.Context()

	if req.BranchID != nil {
		var count int64
		h.db.WithContext(ctx).Model(&models.Branch{}).
			Where("id = ? AND enterprise_id = ?", *req.BranchID, entID).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "branch_not_found", "Unidade não encontrada.")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	barber := models.Barber{
		EnterpriseID: entID,
		BranchID:     req.BranchID,
		BoxID:        req.BoxID,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleBarber,
		IsActive:     true,
	}

	if err := h.db.WithContext(ctx).Create(&barber).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", "E-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Erro ao cadastrar barbeiro.")
		return
	}

	dispatchAudit(h.audit, c, "barber_created", "barber", &barber.ID, nil)

	httpresp.Created(c, barber)
}

// SetActive toggles whether the barber takes bookings. An inactive barber
// has no availability at all.
func (h *BarbersHandler) SetActive(c *gin.Context) {
	barberID, ok := uintParam(c, "id", "invalid_barber_id")
	if !ok {
		return
	}

	var req SetBarberActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o campo active.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Barber{}).
		Where("id = ? AND enterprise_id = ?", barberID, enterpriseID(c)).
		Update("is_active", *req.Active)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	action := "barber_deactivated"
	if *req.Active {
		action = "barber_activated"
	}
	dispatchAudit(h.audit, c, action, "barber", &barberID, nil)

	c.JSON(http.StatusOK, gin.H{"id": barberID, "is_active": *req.Active})
}
