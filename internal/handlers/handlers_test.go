package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func asUser(barberID, entID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextBarberID, barberID)
		c.Set(middleware.ContextEnterpriseID, entID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", httperr.ErrBusiness("barber_not_found"), http.StatusNotFound, "barber_not_found"},
		{"bad stored hours", httperr.ErrBusiness("invalid_available_hours"), http.StatusUnprocessableEntity, "invalid_available_hours"},
		{"bad input", httperr.ErrBusiness("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"upstream", httperr.ErrUpstream("list bookings", errors.New("timeout")), http.StatusServiceUnavailable, "upstream_unavailable"},
		{"unique", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "already_exists"},
		{"exclusion", &pgconn.PgError{Code: "23P01"}, http.StatusConflict, "booking_overlap"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { writeError(c, tt.err) })

			w := do(r, http.MethodGet, "/", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":"`+tt.code+`"`)
		})
	}
}

func TestHealthReady(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	r := gin.New()
	r.GET("/health", NewHealthHandler(nil).Health)
	r.GET("/ready-ok", NewHealthHandler(map[string]Pinger{"database": ok}).Ready)
	r.GET("/ready-down", NewHealthHandler(map[string]Pinger{"database": ok, "redis": down}).Ready)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ready-ok", "").Code)

	w := do(r, http.MethodGet, "/ready-down", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestAvailableHoursUpdateRejectsOverlap(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "barbers" WHERE id = \$1 AND enterprise_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	h := NewAvailableHoursHandler(db, nil)
	r := gin.New()
	r.PUT("/barbers/:id/available-hours", asUser(7, 1, "barber"), h.Update)

	w := do(r, http.MethodPut, "/barbers/7/available-hours", `{"hours":[
		{"weekday":1,"start_time":"09:00","end_time":"12:00"},
		{"weekday":1,"start_time":"11:00","end_time":"14:00"}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "overlapping_windows")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableHoursUnknownBarber(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "barbers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	h := NewAvailableHoursHandler(db, nil)
	r := gin.New()
	r.GET("/barbers/:id/available-hours", asUser(1, 1, "admin"), h.Get)

	w := do(r, http.MethodGet, "/barbers/99/available-hours", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailableHoursUpdateReplacesRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "barbers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "available_hours" WHERE barber_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`INSERT INTO "available_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	h := NewAvailableHoursHandler(db, nil)
	r := gin.New()
	r.PUT("/barbers/:id/available-hours", asUser(7, 1, "barber"), h.Update)

	w := do(r, http.MethodPut, "/barbers/7/available-hours", `{"hours":[
		{"weekday":1,"start_time":"09:00","end_time":"12:00"},
		{"weekday":1,"start_time":"13:00","end_time":"18:00"}
	]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start_time":"13:00"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnterpriseUpdateValidatesSettings(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "enterprises" WHERE "enterprises"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "timezone"}).
			AddRow(1, "Navalha", "navalha", "America/Sao_Paulo"))

	h := NewEnterpriseHandler(db, nil)
	r := gin.New()
	r.PATCH("/me/enterprise", asUser(1, 1, "admin"), h.UpdateMeEnterprise)

	w := do(r, http.MethodPatch, "/me/enterprise", `{"timezone":"Not/AZone"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_timezone")
}

func TestBarbersSetActiveNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "barbers" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3 AND enterprise_id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := NewBarbersHandler(db, nil)
	r := gin.New()
	r.PATCH("/barbers/:id/active", asUser(1, 1, "admin"), h.SetActive)

	w := do(r, http.MethodPatch, "/barbers/42/active", `{"active":false}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	w = do(r, http.MethodPatch, "/barbers/42/active", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

