// Package store defines the user-record storage contract and ships two
// implementations: a Redis-backed store for production and an in-memory store
// for tests and local development.
//
// # Uniqueness
//
// The email address is the unique lookup key. [UserStore.Create] must reject a
// second record for an email that already exists, atomically with respect to
// concurrent callers. The Redis implementation enforces this with a single Lua
// script so two racing registrations can never both succeed.
//
// # Architecture boundaries
//
// This package owns record persistence and key layout only. It does NOT hash
// passwords, issue tokens, or validate input: callers hand it a finished
// [CreateUserInput] and get a [UserRecord] back.
//
// # What this package must NOT do
//
//   - Import the authcore root package (no upward imports).
//   - Store plaintext passwords; the PasswordHash field is opaque to it.
//   - Invent retry or fallback semantics on backend failure.
package store
