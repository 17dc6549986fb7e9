package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a BusinessError anywhere in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// ===============================
// Upstream (persistence) failures
// ===============================

// UpstreamError marks a failure of a collaborator (database, cache) that
// happened before any domain logic ran.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

func ErrUpstream(op string, err error) error {
	return UpstreamError{Op: op, Err: err}
}

func IsUpstream(err error) bool {
	var ue UpstreamError
	return errors.As(err, &ue)
}

// ===============================
// Postgres / gorm helpers
// ===============================

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsUniqueViolation(err error) bool {
	return hasSQLState(err, "23505")
}

// IsExclusionConflict matches exclusion-constraint violations (overlapping
// ranges guarded by an EXCLUDE constraint).
func IsExclusionConflict(err error) bool {
	return hasSQLState(err, "23P01")
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
