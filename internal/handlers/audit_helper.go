package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
)

// dispatchAudit records an action taken by the authenticated user.
func dispatchAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {
	if d == nil {
		return
	}

	var actor *uint
	if id := c.GetUint(middleware.ContextBarberID); id != 0 {
		actor = &id
	}

	d.Dispatch(audit.Event{
		EnterpriseID: c.GetUint(middleware.ContextEnterpriseID),
		BarberID:     actor,
		Action:       action,
		Entity:       entity,
		EntityID:     entityID,
		Metadata:     meta,
	})
}

func enterpriseID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextEnterpriseID)
}

// uintParam reads a positive numeric path parameter, writing a 400 when it
// is missing or malformed.
func uintParam(c *gin.Context, name, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, code, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// uintQuery reads an optional numeric query parameter. Absent means zero.
func uintQuery(c *gin.Context, name, code string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, code, "Parâmetro inválido.")
		return 0, false
	}
	return uint(id), true
}


