// Package token issues and verifies the signed session tokens that prove a
// prior successful authentication.
//
// Tokens are HS256 JWTs carrying the user id in a "uid" claim plus the
// standard iat/exp claims. Validity is fully self-contained: a token is good
// iff its signature matches the configured secret and its expiry has not
// passed. There is no server-side session table and no revocation.
//
// # Failure taxonomy
//
// [Manager.Verify] distinguishes [ErrMalformed], [ErrSignature], and
// [ErrExpired] so operators can tell them apart in audit logs. Callers facing
// clients must collapse all three into one unauthorized outcome.
//
// # What this package must NOT do
//
//   - Import any other authcore package.
//   - Hold a default or fallback secret; the secret always comes from Config.
package token
