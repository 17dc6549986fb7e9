package availability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/metrics"
	"github.com/BruksfildServices01/barber-availability/internal/models"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// Input identifies the enterprise either by id (private routes) or by slug
// (public routes). ServiceID zero means the enterprise default duration.
type Input struct {
	EnterpriseID   uint
	EnterpriseSlug string

	BarberID  uint
	ServiceID uint

	Date string
}

type Result struct {
	Date            domain.Date
	Timezone        string
	ServiceDuration time.Duration
	Slots           []domain.Slot
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo    domain.Repository
	metrics *metrics.Availability
	tracer  trace.Tracer
	now     func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	m *metrics.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		metrics: m,
		tracer:  otel.Tracer("barber-availability/usecase/availability"),
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used for the past-date and
// minimum-advance rules.
func (uc *GetAvailability) WithClock(now func() time.Time) *GetAvailability {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in Input,
) (res *Result, err error) {

	started := time.Now()

	ctx, span := uc.tracer.Start(ctx, "availability.compute",
		trace.WithAttributes(
			attribute.Int64("barber.id", int64(in.BarberID)),
			attribute.Int64("service.id", int64(in.ServiceID)),
			attribute.String("date", in.Date),
		),
	)
	defer func() {
		outcome := "ok"
		count := 0
		switch {
		case err != nil && httperr.IsUpstream(err):
			outcome = "upstream_error"
		case err != nil:
			outcome = "rejected"
		case len(res.Slots) == 0:
			outcome = "empty"
		default:
			count = len(res.Slots)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		span.SetAttributes(attribute.Int("slots", count))
		span.End()
		uc.metrics.ObserveComputation(outcome, count, time.Since(started))
	}()

	// --------------------------------------------------
	// 1️⃣ Data
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Empresa / barbeiro / serviço
	// --------------------------------------------------
	ent, err := uc.enterprise(ctx, in)
	if err != nil {
		return nil, err
	}

	barberRow, err := uc.repo.GetBarberWithHours(ctx, ent.ID, in.BarberID)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "load barber")
	}

	var svc *models.Service
	if in.ServiceID != 0 {
		svc, err = uc.repo.GetService(ctx, ent.ID, in.ServiceID)
		if err != nil {
			return nil, notFoundOr(err, "service_not_found", "load service")
		}
	}

	loc, err := uc.location(ctx, ent, barberRow)
	if err != nil {
		return nil, err
	}

	p := paramsFor(ent, svc, loc, uc.now())
	if err := p.Validate(); err != nil {
		return nil, err
	}

	barber, err := barberFromModel(barberRow)
	if err != nil {
		return nil, err
	}

	res = &Result{
		Date:            date,
		Timezone:        loc.String(),
		ServiceDuration: p.ServiceDuration,
		Slots:           []domain.Slot{},
	}

	if !barber.IsActive {
		return res, nil
	}

	// --------------------------------------------------
	// 3️⃣ Snapshot de agendamentos (dia local + buffers)
	// --------------------------------------------------
	from := date.Start(loc).Add(-p.BufferAfter)
	to := date.AddDays(1).Start(loc).Add(p.BufferBefore)

	rows, err := uc.repo.ListBookingsOverlapping(ctx, barber.ID, from, to)
	if err != nil {
		return nil, httperr.ErrUpstream("list bookings", err)
	}

	// --------------------------------------------------
	// 4️⃣ Motor
	// --------------------------------------------------
	slots := domain.ComputeAvailableSlots(barber, date, p, bookingsFromModels(rows))
	for i := range slots {
		slots[i] = slots[i].In(loc)
	}
	res.Slots = slots

	return res, nil
}

// Check reports whether hm ("HH:MM", local time) is one of the offered start
// times for the input's date.
func (uc *GetAvailability) Check(
	ctx context.Context,
	in Input,
	hm string,
) (bool, error) {

	at, err := domain.ParseClock(hm)
	if err != nil {
		return false, err
	}

	res, err := uc.Execute(ctx, in)
	if err != nil {
		return false, err
	}

	for _, s := range res.Slots {
		if domain.ClockOf(s.Start) == at && domain.DateOf(s.Start) == res.Date {
			return true, nil
		}
	}

	return false, nil
}

// ======================================================
// HELPERS
// ======================================================

func (uc *GetAvailability) enterprise(ctx context.Context, in Input) (*models.Enterprise, error) {
	var (
		ent *models.Enterprise
		err error
	)

	if in.EnterpriseID != 0 {
		ent, err = uc.repo.GetEnterpriseByID(ctx, in.EnterpriseID)
	} else {
		ent, err = uc.repo.GetEnterpriseBySlug(ctx, in.EnterpriseSlug)
	}
	if err != nil {
		return nil, notFoundOr(err, "enterprise_not_found", "load enterprise")
	}

	return ent, nil
}

// location resolves the zone of the barber's branch, falling back to the
// enterprise zone.
func (uc *GetAvailability) location(
	ctx context.Context,
	ent *models.Enterprise,
	barber *models.Barber,
) (*time.Location, error) {

	branchTZ := ""
	if barber.BranchID != nil {
		branch, err := uc.repo.GetBranch(ctx, ent.ID, *barber.BranchID)
		switch {
		case err == nil:
			branchTZ = branch.Timezone
		case !httperr.IsNotFound(err):
			return nil, httperr.ErrUpstream("load branch", err)
		}
	}

	return timezone.Location(branchTZ, ent.Timezone), nil
}

func notFoundOr(err error, code, op string) error {
	if httperr.IsNotFound(err) {
		return httperr.ErrBusiness(code)
	}
	return httperr.ErrUpstream(op, err)
}
