package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != models.RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "Apenas administradores.")
			return
		}
		c.Next()
	}
}

// BarberOrAdminValidate lets an admin through, or the barber whose id is the
// path parameter named param. Enterprise scoping is enforced by the
// repositories, which always filter by the enterprise in the token.
func BarberOrAdminValidate(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) == models.RoleAdmin {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			httperr.Abort(c, http.StatusBadRequest, "invalid_barber_id", "Barbeiro inválido.")
			return
		}

		if c.GetUint(ContextBarberID) != uint(id) {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "Acesso negado a este barbeiro.")
			return
		}

		c.Next()
	}
}
