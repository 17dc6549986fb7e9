package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Enterprise
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetEnterpriseByID(
	ctx context.Context,
	id uint,
) (*models.Enterprise, error) {

	var ent models.Enterprise
	if err := r.db.WithContext(ctx).First(&ent, id).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (r *AvailabilityGormRepository) GetEnterpriseBySlug(
	ctx context.Context,
	slug string,
) (*models.Enterprise, error) {

	var ent models.Enterprise
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

func (r *AvailabilityGormRepository) GetBranch(
	ctx context.Context,
	enterpriseID uint,
	branchID uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Where("id = ? AND enterprise_id = ?", branchID, enterpriseID).
		First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetService(
	ctx context.Context,
	enterpriseID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND enterprise_id = ? AND active = ?", serviceID, enterpriseID, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetBarberWithHours(
	ctx context.Context,
	enterpriseID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("AvailableHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC, start_time ASC")
		}).
		Where("id = ? AND enterprise_id = ?", barberID, enterpriseID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Bookings (snapshot)
// --------------------------------------------------

// ListBookingsOverlapping returns the blocking bookings of a barber that
// intersect [from, to). Bounds are compared in UTC.
func (r *AvailabilityGormRepository) ListBookingsOverlapping(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)},
			to.UTC(),
			from.UTC(),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
