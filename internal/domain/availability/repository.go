package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/models"
)

// Repository is the read side the availability use case needs. The booking
// query is the snapshot provider: it is called once, before the engine runs.
type Repository interface {
	// -------- Enterprise --------
	GetEnterpriseByID(
		ctx context.Context,
		id uint,
	) (*models.Enterprise, error)

	GetEnterpriseBySlug(
		ctx context.Context,
		slug string,
	) (*models.Enterprise, error)

	GetBranch(
		ctx context.Context,
		enterpriseID uint,
		branchID uint,
	) (*models.Branch, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		enterpriseID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarberWithHours(
		ctx context.Context,
		enterpriseID uint,
		barberID uint,
	) (*models.Barber, error)

	// -------- Bookings --------
	ListBookingsOverlapping(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
