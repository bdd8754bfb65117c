package adapters

import (
	"context"

	"kisan/internal/schemes/ports"
)

// Registry is the subset of the verification service the adapter calls.
type Registry interface {
	IsVerified(ctx context.Context, mobile string) (bool, error)
}

// VerificationAdapter implements ports.RegistrationVerifier over the
// in-process verification service.
type VerificationAdapter struct {
	registry Registry
}

func NewVerificationAdapter(registry Registry) ports.RegistrationVerifier {
	return &VerificationAdapter{registry: registry}
}

// IsVerified treats an empty mobile as unverified without a lookup.
func (a *VerificationAdapter) IsVerified(ctx context.Context, mobile string) (bool, error) {
	if mobile == "" {
		return false, nil
	}
	return a.registry.IsVerified(ctx, mobile)
}
