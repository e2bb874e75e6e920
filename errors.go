package authcore

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown email and
	// a password mismatch. The two causes are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned by Register when the email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned by CurrentUser when the id resolves to nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidToken is returned by VerifyToken for every verification
	// failure kind: malformed, forged, or expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEngineNotReady is returned when a required dependency was not wired.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrInternal is returned for unexpected hash or store failures. The
	// underlying cause is audited server-side, never surfaced to clients.
	ErrInternal = errors.New("internal error")
)
