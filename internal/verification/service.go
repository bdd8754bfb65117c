// Package verification answers whether a mobile number belongs to a verified
// farmer in the registry.
package verification

import (
	"context"
	"errors"
	"log/slog"

	"kisan/internal/platform/tracer"
	"kisan/internal/sentinel"
	"kisan/internal/verification/models"
	dErrors "kisan/pkg/domain-errors"
	"kisan/pkg/requestcontext"
)

// Store is the registry persistence port.
type Store interface {
	Add(ctx context.Context, f models.FarmerEntry) error
	FindByMobile(ctx context.Context, mobile string) (*models.FarmerEntry, error)
	FindByDID(ctx context.Context, did string) (*models.FarmerEntry, error)
	Count(ctx context.Context) int
}

// Service verifies farmers against the registry.
type Service struct {
	store  Store
	tracer tracer.Tracer
	logger *slog.Logger
}

type Option func(*Service)

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

// New panics when store is nil.
func New(store Store, opts ...Option) *Service {
	if store == nil {
		panic("verification.New: store is required")
	}
	s := &Service{
		store:  store,
		tracer: tracer.NewNoop(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VerifyMobile looks up mobile and, when did is non-empty, checks that both
// refer to the same farmer. An unknown number is a negative result, not an error.
func (s *Service) VerifyMobile(ctx context.Context, mobile, did string) (result *models.VerifyResult, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerificationMobile,
		tracer.String(tracer.AttrMobileHash, tracer.HashIdentifier(models.NormalizeMobile(mobile))))
	defer func() {
		if result != nil {
			span.SetAttributes(tracer.Bool(tracer.AttrVerified, result.Verified))
		}
		span.End(err)
	}()

	entry, err := s.store.FindByMobile(ctx, mobile)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.VerifyResult{Message: models.MessageNotRegistered}, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farmer registry")
	}

	if did != "" && did != entry.FarmerDID {
		s.logger.WarnContext(ctx, "farmer DID mismatch",
			"request_id", requestcontext.RequestID(ctx),
			"mobile_hash", tracer.HashIdentifier(entry.Mobile),
		)
		return &models.VerifyResult{Message: models.MessageIdentityMismatch}, nil
	}

	result = &models.VerifyResult{
		Verified:   entry.Verified,
		FarmerDID:  entry.FarmerDID,
		FarmerName: entry.Name,
		Location:   entry.Location,
		Message:    models.MessageVerified,
	}
	if !entry.Verified {
		result.Message = models.MessagePending
	}
	return result, nil
}

// IsVerified reports whether mobile belongs to a verified registry entry.
func (s *Service) IsVerified(ctx context.Context, mobile string) (bool, error) {
	res, err := s.VerifyMobile(ctx, mobile, "")
	if err != nil {
		return false, err
	}
	return res.Verified, nil
}

// FarmerByDID returns the entry for did or a CodeNotFound error.
func (s *Service) FarmerByDID(ctx context.Context, did string) (*models.FarmerEntry, error) {
	entry, err := s.store.FindByDID(ctx, did)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "farmer not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farmer registry")
	}
	return entry, nil
}

// VerifyPair reports whether mobile is registered under did.
func (s *Service) VerifyPair(ctx context.Context, mobile, did string) (bool, error) {
	entry, err := s.store.FindByMobile(ctx, mobile)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farmer registry")
	}
	return entry.FarmerDID == did, nil
}

// Register adds a farmer. A mobile that is already registered is rejected so
// an existing entry is never overwritten.
func (s *Service) Register(ctx context.Context, f models.FarmerEntry) (*models.FarmerEntry, error) {
	if models.NormalizeMobile(f.Mobile) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "mobile is required")
	}
	_, err := s.store.FindByMobile(ctx, f.Mobile)
	if err == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "mobile is already registered")
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farmer registry")
	}
	if err := s.store.Add(ctx, f); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "mobile is already registered to another farmer")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register farmer")
	}
	s.logger.InfoContext(ctx, "farmer registered",
		"request_id", requestcontext.RequestID(ctx),
		"mobile_hash", tracer.HashIdentifier(models.NormalizeMobile(f.Mobile)),
	)
	return s.store.FindByMobile(ctx, f.Mobile)
}

// Total returns the number of registry entries.
func (s *Service) Total(ctx context.Context) int {
	return s.store.Count(ctx)
}
