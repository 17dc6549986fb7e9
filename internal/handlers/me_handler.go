package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barberID := c.GetUint(middleware.ContextBarberID)
	if barberID == 0 {
		httperr.Unauthorized(c, "user_not_in_context", "Sessão inválida.")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Enterprise").
		Where("id = ? AND enterprise_id = ?", barberID, enterpriseID(c)).
		First(&barber).Error; err != nil {

		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       userPayload(&barber),
		"enterprise": enterprisePayload(&barber.Enterprise),
	})
}
