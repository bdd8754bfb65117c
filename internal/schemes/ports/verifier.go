package ports

import "context"

// RegistrationVerifier resolves whether a mobile number belongs to a verified
// farmer. The schemes service only consumes the boolean outcome.
type RegistrationVerifier interface {
	IsVerified(ctx context.Context, mobile string) (bool, error)
}
