package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by lookups when no record matches the key.
var ErrNotFound = errors.New("user record not found")

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("duplicate email")

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// UserRecord is the persisted account record. The ID is assigned by the
// store on Create and is opaque to callers. PasswordHash carries the encoded
// credential hash and never the plaintext.
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
}

// CreateUserInput is the input for [UserStore.Create]. The store assigns the
// ID and the creation timestamp.
type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    string
}

// UserStore is the persistence contract the engine depends on. Implementations
// must make Create atomic with respect to the email uniqueness invariant.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (UserRecord, error)
	FindByID(ctx context.Context, id string) (UserRecord, error)
	Create(ctx context.Context, input CreateUserInput) (UserRecord, error)
}
