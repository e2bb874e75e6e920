// Package middleware exposes the HTTP auth gate for protected routes.
//
// [Guard] reads the session token from the x-auth-token request header,
// delegates verification to the engine, and either attaches the resolved
// [authcore.Identity] to the request context or short-circuits with a 401
// JSON body. Downstream handlers never run on rejection.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into engine calls. It does NOT
// parse or create tokens itself and makes no decision beyond pass/reject
// from [authcore.Engine.VerifyToken].
package middleware
