// Package tracer is a small tracing facade so services can emit spans without
// importing OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: default for tests and the CLI
//   - OTelTracer: OpenTelemetry adapter for the server
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Strings creates a list attribute. The slice is copied.
func Strings(key string, values []string) Attribute {
	return Attribute{Key: key, Value: append([]string(nil), values...)}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashIdentifier returns a short SHA-256 prefix of a mobile number or DID so
// traces can be correlated without carrying the raw value.
func HashIdentifier(v string) string {
	if v == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(v))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanSchemesExplore      = "schemes.explore"
	SpanSchemesCombinations = "schemes.combinations"
	SpanLogisticsProject    = "logistics.project"
	SpanLogisticsRank       = "logistics.rank"
	SpanVerificationMobile  = "verification.mobile"
)

// Attribute keys.
const (
	AttrLang              = "lang"
	AttrFarmerType        = "farmer_type"
	AttrEligibleCount     = "schemes.eligible"
	AttrEligibleIDs       = "schemes.eligible_ids"
	AttrCombinationCount  = "schemes.combinations"
	AttrLandSizeCorrected = "land_size.corrected"
	AttrCrop              = "crop"
	AttrQuantity          = "quantity_qtl"
	AttrProcessorID       = "processor.id"
	AttrCandidates        = "processors.candidates"
	AttrMobileHash        = "mobile.hash"
	AttrVerified          = "verified"
)
