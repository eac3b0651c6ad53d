package auth

import "errors"

// Sentinel errors returned by the auth core. Handlers translate them to
// HTTP status codes; nothing here carries transport details.
var (
	// ErrNoSigningKey indicates that no JWT signing secret was configured.
	// The server must refuse to start in this state.
	ErrNoSigningKey = errors.New("jwt signing key is not configured")

	// ErrInvalidToken covers every token verification failure: malformed
	// input, bad signature, expired or not-yet-valid claims. Callers are
	// deliberately not told which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized indicates a request without valid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates valid credentials with insufficient privileges.
	ErrForbidden = errors.New("forbidden")
)
