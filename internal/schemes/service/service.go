package service

import (
	"context"
	"log/slog"
	"time"

	"kisan/internal/platform/i18n"
	"kisan/internal/platform/tracer"
	"kisan/internal/schemes"
	"kisan/internal/schemes/catalog"
	"kisan/internal/schemes/metrics"
	"kisan/internal/schemes/models"
	"kisan/internal/schemes/ports"
	"kisan/pkg/requestcontext"
)

// Catalogs resolves the scheme catalog for a language.
type Catalogs interface {
	Get(lang i18n.Lang) (*catalog.Catalog, error)
}

// Service wraps the pure eligibility engine with catalog selection,
// registration verification and instrumentation.
type Service struct {
	catalogs   Catalogs
	verifier   ports.RegistrationVerifier
	metrics    *metrics.Metrics
	tracer     tracer.Tracer
	logger     *slog.Logger
	sampleSize int
}

// Option configures the Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithVerifier enables registration lookups for requests carrying a mobile.
func WithVerifier(v ports.RegistrationVerifier) Option {
	return func(s *Service) {
		s.verifier = v
	}
}

// WithSampleSize sets how many combinations Explore returns.
func WithSampleSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// New creates the service. Panics if catalogs is nil.
func New(catalogs Catalogs, opts ...Option) *Service {
	if catalogs == nil {
		panic("schemes.New: catalogs are required")
	}
	s := &Service{
		catalogs:   catalogs,
		tracer:     tracer.NewNoop(),
		logger:     slog.Default(),
		sampleSize: schemes.DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExploreRequest is a profile edit to evaluate.
type ExploreRequest struct {
	Lang   i18n.Lang
	Base   models.FarmerProfile
	Update models.ProfileUpdate
	// Mobile, when set, is checked against the farmer registry; a verified
	// number marks the profile as registered.
	Mobile string
}

// ExploreResult is everything a caller renders after a profile edit.
type ExploreResult struct {
	Lang             i18n.Lang                  `json:"lang"`
	Profile          models.FarmerProfile       `json:"profile"`
	Warning          *models.LandSizeWarning    `json:"warning,omitempty"`
	WarningMessage   string                     `json:"warning_message,omitempty"`
	Verified         bool                       `json:"verified"`
	Schemes          []models.Scheme            `json:"-"`
	Results          []models.EligibilityResult `json:"results"`
	Eligible         []models.Scheme            `json:"eligible"`
	CombinationTotal int                        `json:"combination_total"`
	Combinations     []models.Combination       `json:"combinations"`
}

// Catalog returns the schemes for lang in display order.
func (s *Service) Catalog(_ context.Context, lang i18n.Lang) ([]models.Scheme, error) {
	c, err := s.catalogs.Get(lang)
	if err != nil {
		return nil, err
	}
	return c.Schemes(), nil
}

// Explore applies the update, normalizes land size, evaluates every scheme and
// returns a display sample of the eligible combinations.
func (s *Service) Explore(ctx context.Context, req ExploreRequest) (result *ExploreResult, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanSchemesExplore, tracer.String(tracer.AttrLang, string(req.Lang)))
	defer func() {
		span.End(err)
		if s.metrics != nil {
			s.metrics.ObserveExploreLatency(time.Since(start))
		}
	}()

	c, err := s.catalogs.Get(req.Lang)
	if err != nil {
		return nil, err
	}

	profile, warning := models.Apply(req.Base, req.Update)
	verified := s.verify(ctx, req.Mobile)
	if verified {
		profile = profile.WithRegistered(true)
	}

	all := c.Schemes()
	eligible := schemes.Eligible(all, profile)
	combos := schemes.GenerateCombinations(eligible, c.Summary())

	result = &ExploreResult{
		Lang:             req.Lang,
		Profile:          profile,
		Warning:          warning,
		WarningMessage:   c.WarningMessage(warning),
		Verified:         verified,
		Schemes:          all,
		Results:          schemes.EvaluateAll(all, profile),
		Eligible:         eligible,
		CombinationTotal: len(combos),
		Combinations:     schemes.Sample(combos, s.sampleSize),
	}

	span.SetAttributes(
		tracer.String(tracer.AttrFarmerType, string(profile.FarmerType)),
		tracer.Int(tracer.AttrEligibleCount, len(eligible)),
		tracer.Strings(tracer.AttrEligibleIDs, schemeIDs(eligible)),
		tracer.Int(tracer.AttrCombinationCount, len(combos)),
		tracer.Bool(tracer.AttrLandSizeCorrected, warning != nil),
	)
	s.record(req.Lang, result)
	return result, nil
}

// Combinations enumerates every combination of the given schemes. Ids are
// resolved in catalog order; an unknown id is a not-found error.
func (s *Service) Combinations(ctx context.Context, lang i18n.Lang, ids []models.SchemeID) (combos []models.Combination, err error) {
	_, span := s.tracer.Start(ctx, tracer.SpanSchemesCombinations, tracer.String(tracer.AttrLang, string(lang)))
	defer func() { span.End(err) }()

	c, err := s.catalogs.Get(lang)
	if err != nil {
		return nil, err
	}
	selected, err := c.Lookup(ids)
	if err != nil {
		return nil, err
	}
	combos = schemes.GenerateCombinations(selected, c.Summary())
	span.SetAttributes(tracer.Int(tracer.AttrCombinationCount, len(combos)))
	return combos, nil
}

func (s *Service) verify(ctx context.Context, mobile string) bool {
	if s.verifier == nil || mobile == "" {
		return false
	}
	ok, err := s.verifier.IsVerified(ctx, mobile)
	if err != nil {
		// Fail open: an unreachable registry leaves the declared flag as is.
		s.logger.WarnContext(ctx, "registration lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return false
	}
	return ok
}

func (s *Service) record(lang i18n.Lang, r *ExploreResult) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementEvaluations(string(lang))
	for _, sc := range r.Eligible {
		s.metrics.IncrementEligible(string(sc.ID))
	}
	if r.Warning != nil {
		s.metrics.IncrementLandSizeWarning(string(r.Warning.Code))
	}
	s.metrics.ObserveCombinations(r.CombinationTotal)
}

func schemeIDs(list []models.Scheme) []string {
	ids := make([]string, len(list))
	for i, sc := range list {
		ids[i] = string(sc.ID)
	}
	return ids
}
