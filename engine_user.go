package authcore

import (
	"context"
	"errors"

	"github.com/devgrid/authcore/store"
)

// CurrentUser loads the account record for an authenticated user id, as
// resolved by the middleware guard. The caller is responsible for never
// serializing the PasswordHash field outward.
func (e *Engine) CurrentUser(ctx context.Context, userID string) (store.UserRecord, error) {
	if e == nil || e.users == nil {
		return store.UserRecord{}, ErrEngineNotReady
	}
	if userID == "" {
		return store.UserRecord{}, ErrUserNotFound
	}

	record, err := e.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.UserRecord{}, ErrUserNotFound
		}
		return store.UserRecord{}, ErrInternal
	}

	return record, nil
}
