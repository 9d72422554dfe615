// Package service coordinates the personnel registry's writes and reads.
//
// Every write runs inside one store transaction: linkage is resolved before
// the transaction opens, parents are checked for existence inside it, and any
// constraint failure the store reports afterwards is translated to the same
// domain error the pre-emptive check would have produced.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"personnel/internal/personnel/metrics"
	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/platform/sentinel"
	"personnel/pkg/requestcontext"
)

// StoreTx runs a unit of work inside a store transaction carried on ctx.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type PersonStore interface {
	Create(ctx context.Context, p *models.Person) error
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	Exists(ctx context.Context, personID id.PersonID) (bool, error)
	Update(ctx context.Context, personID id.PersonID, changes models.PersonChanges) error
}

type UnitStore interface {
	Create(ctx context.Context, u *models.Unit) error
	FindByID(ctx context.Context, unitID id.UnitID) (*models.Unit, error)
	Exists(ctx context.Context, unitID id.UnitID) (bool, error)
	Update(ctx context.Context, unitID id.UnitID, changes models.UnitChanges) error
	List(ctx context.Context, page models.Page) ([]*models.Unit, error)
	Count(ctx context.Context) (int, error)
}

type CityStore interface {
	Create(ctx context.Context, c *models.City) error
	FindByID(ctx context.Context, cityID id.CityID) (*models.City, error)
	List(ctx context.Context, page models.Page) ([]*models.City, error)
	Count(ctx context.Context) (int, error)
}

type AssignmentStore interface {
	Create(ctx context.Context, a *models.Assignment) error
	FindByID(ctx context.Context, assignmentID id.AssignmentID) (*models.Assignment, error)
	Update(ctx context.Context, assignmentID id.AssignmentID, changes models.AssignmentChanges) error
	List(ctx context.Context, page models.Page) ([]*models.Assignment, error)
	Count(ctx context.Context) (int, error)
}

type PermanentStaffStore interface {
	Create(ctx context.Context, staff *models.PermanentStaff) error
	FindByPersonID(ctx context.Context, personID id.PersonID) (*models.PermanentStaff, error)
	Exists(ctx context.Context, personID id.PersonID) (bool, error)
	Update(ctx context.Context, personID id.PersonID, changes models.PermanentStaffChanges) error
	List(ctx context.Context, page models.Page) ([]*models.PermanentStaff, error)
	Count(ctx context.Context) (int, error)
}

type TemporaryStaffStore interface {
	Create(ctx context.Context, staff *models.TemporaryStaff) error
	FindByPersonID(ctx context.Context, personID id.PersonID) (*models.TemporaryStaff, error)
	Exists(ctx context.Context, personID id.PersonID) (bool, error)
	Update(ctx context.Context, personID id.PersonID, changes models.TemporaryStaffChanges) error
	List(ctx context.Context, page models.Page) ([]*models.TemporaryStaff, error)
	Count(ctx context.Context) (int, error)
}

// Stores groups the persistence dependencies of the Service.
type Stores struct {
	Persons        PersonStore
	Units          UnitStore
	Cities         CityStore
	Assignments    AssignmentStore
	PermanentStaff PermanentStaffStore
	TemporaryStaff TemporaryStaffStore
}

// Service implements the personnel registry operations.
type Service struct {
	tx          StoreTx
	persons     PersonStore
	units       UnitStore
	cities      CityStore
	assignments AssignmentStore
	permanent   PermanentStaffStore
	temporary   TemporaryStaffStore
	validator   *Validator
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(tx StoreTx, stores Stores, opts ...Option) *Service {
	s := &Service{
		tx:          tx,
		persons:     stores.Persons,
		units:       stores.Units,
		cities:      stores.Cities,
		assignments: stores.Assignments,
		permanent:   stores.PermanentStaff,
		temporary:   stores.TemporaryStaff,
		validator:   NewValidator(stores.Persons, stores.Units),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("personnel/service")
	}
	return s
}

// begin opens a span for op. The returned func closes it and records the
// outcome; call it deferred with a pointer to the named error result.
func (s *Service) begin(ctx context.Context, op string) (context.Context, func(*error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "personnel."+op)
	return ctx, func(errp *error) {
		if err := *errp; err != nil {
			code := dErrors.CodeOf(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, string(code))
			if s.metrics != nil {
				s.metrics.IncrementDomainError(err)
			}
			level := slog.LevelWarn
			if code == dErrors.CodeUnknown {
				level = slog.LevelError
			}
			s.logger.Log(ctx, level, "personnel operation failed",
				"op", op,
				"code", code,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		if s.metrics != nil {
			s.metrics.ObserveOperation(op, start)
		}
		span.End()
	}
}

func (s *Service) logCreated(ctx context.Context, entity string, key any, nestedPerson bool) {
	if s.metrics != nil {
		s.metrics.IncrementCreated(entity)
		if nestedPerson {
			s.metrics.IncrementCreated(models.EntityPerson)
		}
	}
	s.logger.InfoContext(ctx, "record created",
		"entity", entity,
		"id", key,
		"nested_person", nestedPerson,
		"subject", requestcontext.Subject(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
}

// notFoundAs turns a store miss into a NotFound naming entity and key.
func notFoundAs(err error, entity string, key any) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(entity, key)
	}
	return err
}
