package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"kisan/internal/logistics"
	"kisan/internal/logistics/metrics"
	"kisan/internal/logistics/models"
	"kisan/internal/platform/tracer"
	"kisan/internal/sentinel"
	dErrors "kisan/pkg/domain-errors"
	"kisan/pkg/requestcontext"
)

// Store is the processor catalog port.
type Store interface {
	List(ctx context.Context) []models.Processor
	FindByID(ctx context.Context, id string) (*models.Processor, error)
}

// Service wraps the calculator with the processor catalog, a default
// reference location and instrumentation.
type Service struct {
	store     Store
	calc      *logistics.Calculator
	reference models.Coordinate
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	logger    *slog.Logger
}

type Option func(*Service)

func WithCalculator(c *logistics.Calculator) Option {
	return func(s *Service) {
		if c != nil {
			s.calc = c
		}
	}
}

// WithReference sets the location used when a request does not carry one.
func WithReference(c models.Coordinate) Option {
	return func(s *Service) {
		s.reference = c
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// DefaultReference is Bhubaneswar.
var DefaultReference = models.Coordinate{Lat: 20.2961, Lon: 85.8245}

// New creates the service. Panics if store is nil.
func New(store Store, opts ...Option) *Service {
	if store == nil {
		panic("logistics.New: store is required")
	}
	s := &Service{
		store:     store,
		calc:      logistics.NewCalculator(),
		reference: DefaultReference,
		tracer:    tracer.NewNoop(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessorDistance is a processor with its distance from the reference.
type ProcessorDistance struct {
	Processor  models.Processor
	DistanceKm float64
	InRange    bool
}

// ProjectRequest asks for a single processor's projection.
type ProjectRequest struct {
	ProcessorID string
	Crop        string
	Quantity    float64
	Vehicle     models.Vehicle
	// Reference overrides the configured reference location.
	Reference *models.Coordinate
}

// RankRequest asks for every eligible processor ranked by profit.
type RankRequest struct {
	Crop      string
	Quantity  float64
	Vehicle   models.Vehicle
	Reference *models.Coordinate
}

// Processors lists processors nearest first. A non-empty crop filters to
// processors that handle it.
func (s *Service) Processors(ctx context.Context, crop string, reference *models.Coordinate) []ProcessorDistance {
	ref := s.referenceOr(reference)
	all := s.store.List(ctx)
	out := make([]ProcessorDistance, 0, len(all))
	for _, p := range all {
		if crop != "" && !p.Processes(crop) {
			continue
		}
		d := s.calc.Distance(p, ref)
		out = append(out, ProcessorDistance{
			Processor:  p,
			DistanceKm: d,
			InRange:    d <= s.calc.RadiusKm(),
		})
	}
	slices.SortStableFunc(out, func(a, b ProcessorDistance) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return out
}

// ProjectByID projects sourcing from one processor. An unknown id is a
// not-found error; a processor that does not handle the crop is a
// validation error.
func (s *Service) ProjectByID(ctx context.Context, req ProjectRequest) (proj *models.Projection, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanLogisticsProject,
		tracer.String(tracer.AttrProcessorID, req.ProcessorID),
		tracer.String(tracer.AttrCrop, req.Crop),
		tracer.Float64(tracer.AttrQuantity, req.Quantity),
	)
	defer func() { span.End(err) }()

	p, err := s.store.FindByID(ctx, req.ProcessorID)
	if errors.Is(err, sentinel.ErrNotFound) {
		s.lookup("not_found")
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("processor %q not found", req.ProcessorID))
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up processor")
	}
	s.lookup("found")

	if !p.Processes(req.Crop) {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("processor %q does not process %s", p.ID, req.Crop))
	}

	out := s.calc.Project(*p, req.Crop, req.Quantity, s.referenceOr(req.Reference), req.Vehicle)
	s.record(out.Vehicle, []models.Projection{out})
	return &out, nil
}

// Rank returns projections for every processor within range that handles
// the crop, most profitable first.
func (s *Service) Rank(ctx context.Context, req RankRequest) (ranked []models.Projection, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanLogisticsRank,
		tracer.String(tracer.AttrCrop, req.Crop),
		tracer.Float64(tracer.AttrQuantity, req.Quantity),
	)
	defer func() {
		span.End(err)
		if s.metrics != nil {
			s.metrics.ObserveRankLatency(time.Since(start))
		}
	}()

	ranked = s.calc.Rank(s.store.List(ctx), req.Crop, req.Quantity, s.referenceOr(req.Reference), req.Vehicle)
	span.SetAttributes(tracer.Int(tracer.AttrCandidates, len(ranked)))

	if len(ranked) == 0 {
		s.logger.InfoContext(ctx, "no processors in range for crop",
			"request_id", requestcontext.RequestID(ctx),
			"crop", req.Crop,
		)
	}
	if s.metrics != nil {
		s.metrics.ObserveRankCandidates(len(ranked))
	}
	vehicle := req.Vehicle
	if vehicle == "" {
		vehicle = models.VehicleTruck
	}
	s.record(vehicle, ranked)
	return ranked, nil
}

func (s *Service) referenceOr(c *models.Coordinate) models.Coordinate {
	if c != nil {
		return *c
	}
	return s.reference
}

func (s *Service) lookup(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementLookup(outcome)
	}
}

func (s *Service) record(vehicle models.Vehicle, projections []models.Projection) {
	if s.metrics == nil || len(projections) == 0 {
		return
	}
	s.metrics.IncrementProjections(string(vehicle), len(projections))
	for _, p := range projections {
		if p.Unprofitable {
			s.metrics.IncrementUnprofitable()
		}
	}
}
