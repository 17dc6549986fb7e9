package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-availability/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// Upsert inserts the booking or, when its external id is already known,
// refreshes the mutable fields in place.
func (r *BookingGormRepository) Upsert(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"barber_id",
				"service_id",
				"start_time",
				"end_time",
				"status",
				"updated_at",
			}),
		}).
		Create(b).Error
}

// DeleteFinishedBefore removes non-blocking bookings that ended before
// cutoff and returns how many rows were removed.
func (r *BookingGormRepository) DeleteFinishedBefore(
	ctx context.Context,
	statuses []string,
	cutoff time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("status IN ? AND end_time < ?", statuses, cutoff.UTC()).
		Delete(&models.Booking{})

	return res.RowsAffected, res.Error
}
