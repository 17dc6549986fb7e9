package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
)

// BookingPruner deletes bookings in the given statuses that ended before cutoff.
type BookingPruner interface {
	DeleteFinishedBefore(ctx context.Context, statuses []string, cutoff time.Time) (int64, error)
}

// BookingRetention keeps the booking snapshot small: finished rows never
// block a slot, so they are only kept for the retention period.
type BookingRetention struct {
	repo      BookingPruner
	retention time.Duration
	timeout   time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingRetention(repo BookingPruner, retentionDays int, log *zap.Logger) *BookingRetention {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingRetention{
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		timeout:   time.Minute,
		log:       log,
		now:       time.Now,
	}
}

// Run prunes once.
func (j *BookingRetention) Run(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cutoff := j.now().Add(-j.retention)
	statuses := []string{string(domain.BookingCancelled), string(domain.BookingCompleted)}

	n, err := j.repo.DeleteFinishedBefore(ctx, statuses, cutoff)
	if err != nil {
		j.log.Error("booking retention failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}

	j.log.Info("booking retention done", zap.Time("cutoff", cutoff), zap.Int64("deleted", n))
	return n, nil
}

// Schedule registers the job on c using a standard five-field cron spec.
func (j *BookingRetention) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		_, _ = j.Run(context.Background())
	})
}

// NewScheduler returns a cron scheduler that recovers from panics in jobs.
func NewScheduler() *cron.Cron {
	return cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
}
