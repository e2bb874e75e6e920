package authcore

// Identity is the authenticated caller resolved by the middleware guard from
// a verified session token. It lives in the request context for the duration
// of one request.
type Identity struct {
	UserID string
}

// RegisterRequest is the input for [Engine.Register].
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest is the input for [Engine.Login].
type LoginRequest struct {
	Email    string
	Password string
}
