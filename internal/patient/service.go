package patient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/messaging"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "patient-dashboard/patient"

type Service struct {
	store     *Store
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
	observer  ConditionObserver
	tracer    trace.Tracer
	observeMu sync.Mutex
	now       func() time.Time
}

// Option configures optional Service collaborators.
type Option func(*Service)

func WithPublisher(p messaging.PublisherInterface) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

func WithConditionObserver(o ConditionObserver) Option {
	return func(s *Service) { s.observer = o }
}

func NewService(store *Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		publisher: messaging.NopPublisher{},
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.observe(context.Background(), "")
	return s
}

func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error) {
	ctx, span := s.tracer.Start(ctx, "patient.create")
	defer span.End()

	p, err := req.Validate()
	if err != nil {
		field := validationField(err)
		if s.metrics != nil {
			s.metrics.RecordValidationFailure(ctx, field)
		}
		span.SetAttributes(attribute.String("validation.field", field))
		log.Debug().Err(err).Str("field", field).Msg("rejected patient")
		return nil, err
	}

	p.ID = uuid.NewString()
	p.CreatedAt = s.now().UTC()

	index, err := s.store.Add(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		log.Error().Err(err).Msg("failed to persist new patient")
		return nil, err
	}
	span.SetAttributes(attribute.String("patient.id", p.ID), attribute.Int("patient.index", index))
	log.Info().Str("patient_id", p.ID).Str("condition", p.Condition).Int("index", index).Msg("patient added")

	s.observe(ctx, "create")
	s.publish(ctx, messaging.EventPatientCreated, messaging.PatientCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientCreated),
		Data: messaging.PatientCreatedData{
			PatientID: p.ID,
			Name:      p.Name,
			Age:       p.Age,
			Condition: p.Condition,
			Position:  index,
			CreatedAt: p.CreatedAt,
		},
	})

	return &p, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	p, _, ok := s.store.Get(id)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return &p, nil
}

func (s *Service) ListPatients(ctx context.Context) []Patient {
	return s.store.All()
}

func (s *Service) ListPatientsWithPagination(ctx context.Context, params pagination.Params, search string) *PaginatedPatientListResponse {
	_, span := s.tracer.Start(ctx, "patient.list")
	defer span.End()

	rows, meta := BuildPage(s.store.All(), search, params)
	span.SetAttributes(
		attribute.Int("page", meta.CurrentPage),
		attribute.Int("matches", meta.TotalRecords),
	)
	return &PaginatedPatientListResponse{
		Success:    true,
		Patients:   rows,
		Search:     search,
		Label:      meta.Label(),
		Pagination: meta,
	}
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "patient.delete")
	defer span.End()
	span.SetAttributes(attribute.String("patient.id", id))

	removed, index, err := s.store.Remove(ctx, id)
	if err != nil {
		s.spanError(span, err)
		return err
	}
	s.afterDelete(ctx, removed, index)
	return nil
}

func (s *Service) DeletePatientAt(ctx context.Context, index int) (*Patient, error) {
	ctx, span := s.tracer.Start(ctx, "patient.delete_at")
	defer span.End()
	span.SetAttributes(attribute.Int("patient.index", index))

	removed, err := s.store.RemoveAt(ctx, index)
	if err != nil {
		s.spanError(span, err)
		return nil, err
	}
	s.afterDelete(ctx, removed, index)
	return &removed, nil
}

func (s *Service) ConditionHistogram(ctx context.Context) chart.Histogram {
	return Histogram(s.store.All())
}

func (s *Service) afterDelete(ctx context.Context, removed Patient, index int) {
	log.Info().Str("patient_id", removed.ID).Int("index", index).Msg("patient deleted")
	s.observe(ctx, "delete")
	s.publish(ctx, messaging.EventPatientDeleted, messaging.PatientDeletedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPatientDeleted),
		Data: messaging.PatientDeletedData{
			PatientID: removed.ID,
			Condition: removed.Condition,
			Position:  index,
			DeletedAt: s.now().UTC(),
		},
	})
}

func (s *Service) spanError(span trace.Span, err error) {
	span.RecordError(err)
	if errors.Is(err, ErrPatientNotFound) || errors.Is(err, ErrIndexOutOfRange) {
		return
	}
	span.SetStatus(codes.Error, err.Error())
	log.Error().Err(err).Msg("failed to persist patient deletion")
}

// observe refreshes the gauges. An empty operation only refreshes.
func (s *Service) observe(ctx context.Context, operation string) {
	if operation != "" && s.metrics != nil {
		s.metrics.RecordPatientOperation(ctx, operation)
	}
	if s.observer == nil {
		return
	}
	if operation != "" {
		s.observer.CountMutation(operation)
	}
	// The snapshot is taken under observeMu, so a later call never
	// publishes an older list than an earlier one.
	s.observeMu.Lock()
	defer s.observeMu.Unlock()
	s.observer.ObserveConditions(Histogram(s.store.All()))
}

func (s *Service) publish(ctx context.Context, routingKey string, event interface{}) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
