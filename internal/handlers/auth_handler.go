package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/config"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
	"github.com/BruksfildServices01/barber-availability/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// checkEmailDomain is swapped in tests to avoid DNS lookups.
	checkEmailDomain func(string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:               db,
		config:           cfg,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	EnterpriseName     string `json:"enterprise_name" binding:"required"`
	EnterpriseSlug     string `json:"enterprise_slug" binding:"required"`
	EnterprisePhone    string `json:"enterprise_phone"`
	EnterpriseTimezone string `json:"enterprise_timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates an enterprise together with its first admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	slug := strings.ToLower(strings.TrimSpace(req.EnterpriseSlug))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	tz := req.EnterpriseTimezone
	if tz == "" {
		tz = h.config.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	if !h.checkEmailDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.WithContext(ctx).Model(&models.Enterprise{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Este endereço já está em uso.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	ent := models.Enterprise{
		Name:               req.EnterpriseName,
		Slug:               slug,
		Phone:              req.EnterprisePhone,
		Timezone:           tz,
		DefaultServiceMin:  30,
		SlotGranularityMin: 30,
	}

	admin := models.Barber{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ent).Error; err != nil {
			return err
		}
		admin.EnterpriseID = ent.ID
		return tx.Create(&admin).Error
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "already_exists", "E-mail ou endereço já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Erro ao cadastrar empresa.")
		return
	}

	token, err := h.generateToken(&admin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":       userPayload(&admin),
		"enterprise": enterprisePayload(&ent),
		"token":      token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Enterprise").
		Where("email = ?", email).
		First(&barber).Error; err != nil {

		if httperr.IsNotFound(err) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	if !barber.IsActive {
		httperr.Forbidden(c, "barber_inactive", "Usuário desativado.")
		return
	}

	token, err := h.generateToken(&barber)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       userPayload(&barber),
		"enterprise": enterprisePayload(&barber.Enterprise),
		"token":      token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(b *models.Barber) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          b.ID,
		"enterpriseId": b.EnterpriseID,
		"role":         b.Role,
		"exp":          now.Add(24 * time.Hour).Unix(),
		"iat":          now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// --------- Payloads ---------

func userPayload(b *models.Barber) gin.H {
	return gin.H{
		"id":            b.ID,
		"name":          b.Name,
		"email":         b.Email,
		"phone":         b.Phone,
		"role":          b.Role,
		"enterprise_id": b.EnterpriseID,
	}
}

func enterprisePayload(e *models.Enterprise) gin.H {
	return gin.H{
		"id":       e.ID,
		"name":     e.Name,
		"slug":     e.Slug,
		"phone":    e.Phone,
		"timezone": e.Timezone,
	}
}
