// Package authcore provides a minimal credential-issuance and
// session-verification engine for web APIs: users register with
// name/email/password, receive a signed stateless session token, and present
// that token on later requests to reach protected routes.
//
// Engine methods are safe to call from multiple goroutines after
// initialization through [Builder.Build].
//
// # Architecture boundaries
//
// authcore is the public surface. It exposes [Engine], [Builder], [Config],
// the error taxonomy, and the audit types. Credential hashing lives in
// password/, token signing in token/, persistence in store/, and HTTP
// enforcement in middleware/ and httpapi/.
//
// # Security properties
//
// Distinct failure causes deliberately collapse into one caller-visible
// outcome: an absent account and a wrong password both surface as
// [ErrInvalidCredentials], and a missing, malformed, forged, or expired token
// all surface as a single unauthorized response at the HTTP boundary. The
// precise cause is still recorded in the audit stream for operators.
package authcore
