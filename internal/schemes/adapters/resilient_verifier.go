package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kisan/internal/platform/tracer"
	"kisan/internal/schemes/ports"
	"kisan/internal/sentinel"
	"kisan/pkg/platform/circuit"
	"kisan/pkg/requestcontext"
)

// ResilientVerifier guards registry lookups with a circuit breaker. While the
// circuit is open it answers from recently seen outcomes and otherwise
// reports the registry as unavailable without calling it.
type ResilientVerifier struct {
	delegate ports.RegistrationVerifier
	breaker  *circuit.Breaker
	cache    *outcomeCache
	logger   *slog.Logger
}

type ResilientOption func(*resilientConfig)

type resilientConfig struct {
	breakerOpts []circuit.Option
	cacheTTL    time.Duration
	logger      *slog.Logger
}

func WithBreakerOptions(opts ...circuit.Option) ResilientOption {
	return func(c *resilientConfig) {
		c.breakerOpts = append(c.breakerOpts, opts...)
	}
}

// WithOutcomeTTL sets how long a lookup result may be served while the
// circuit is open. Default is 10 minutes.
func WithOutcomeTTL(ttl time.Duration) ResilientOption {
	return func(c *resilientConfig) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

func WithResilientLogger(l *slog.Logger) ResilientOption {
	return func(c *resilientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewResilientVerifier wraps delegate. Panics if delegate is nil.
func NewResilientVerifier(delegate ports.RegistrationVerifier, opts ...ResilientOption) *ResilientVerifier {
	if delegate == nil {
		panic("adapters.NewResilientVerifier: delegate is required")
	}
	cfg := resilientConfig{cacheTTL: 10 * time.Minute, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ResilientVerifier{
		delegate: delegate,
		breaker:  circuit.New("farmer_registry", cfg.breakerOpts...),
		cache:    newOutcomeCache(cfg.cacheTTL),
		logger:   cfg.logger,
	}
}

func (r *ResilientVerifier) IsVerified(ctx context.Context, mobile string) (bool, error) {
	if mobile == "" {
		return false, nil
	}

	if !r.breaker.Allow() {
		if verified, ok := r.cache.Get(mobile); ok {
			return verified, nil
		}
		return false, fmt.Errorf("%s circuit open: %w", r.breaker.Name(), sentinel.ErrUnavailable)
	}

	verified, err := r.delegate.IsVerified(ctx, mobile)
	if err != nil {
		if change := r.breaker.RecordFailure(); change.Opened {
			r.logger.ErrorContext(ctx, "circuit breaker opened",
				"request_id", requestcontext.RequestID(ctx),
				"circuit", r.breaker.Name(),
				"error", err,
			)
		}
		if cached, ok := r.cache.Get(mobile); ok {
			r.logger.WarnContext(ctx, "using cached registration outcome after failure",
				"request_id", requestcontext.RequestID(ctx),
				"mobile_hash", tracer.HashIdentifier(mobile),
			)
			return cached, nil
		}
		return false, err
	}

	if change := r.breaker.RecordSuccess(); change.Closed {
		r.logger.InfoContext(ctx, "circuit breaker closed",
			"request_id", requestcontext.RequestID(ctx),
			"circuit", r.breaker.Name(),
		)
	}
	r.cache.Set(mobile, verified)
	return verified, nil
}

// State exposes the breaker state for readiness reporting.
func (r *ResilientVerifier) State() circuit.State {
	return r.breaker.State()
}

type outcome struct {
	verified  bool
	expiresAt time.Time
}

// outcomeCache keeps the last registry answer per mobile with a TTL.
type outcomeCache struct {
	mu      sync.RWMutex
	entries map[string]outcome
	ttl     time.Duration
	now     func() time.Time
}

func newOutcomeCache(ttl time.Duration) *outcomeCache {
	return &outcomeCache{
		entries: make(map[string]outcome),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *outcomeCache) Get(mobile string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[mobile]
	if !ok || c.now().After(e.expiresAt) {
		return false, false
	}
	return e.verified, true
}

// Set stores an outcome and drops expired entries.
func (c *outcomeCache) Set(mobile string, verified bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[mobile] = outcome{verified: verified, expiresAt: now.Add(c.ttl)}
}
