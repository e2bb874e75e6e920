package authcore

import (
	"context"
	"errors"
	"strings"

	"github.com/devgrid/authcore/store"
)

// Register creates an account from the given input and returns a signed
// session token for it.
//
// Validation failures return [ValidationErrors] without touching the store.
// A taken email returns [ErrUserExists]; the response does not reveal which
// field collided. Unexpected hash or store failures return [ErrInternal] and
// the cause goes to the audit stream only.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if e == nil || e.users == nil || e.hasher == nil || e.tokens == nil {
		return "", ErrEngineNotReady
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if errs := validateRegister(req); len(errs) > 0 {
		return "", errs
	}

	// Fast path: an existing record means a duplicate before we pay for the
	// hash. The authoritative check is the store's atomic Create below.
	_, err := e.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		e.metricInc(MetricRegisterDuplicate)
		e.emitAudit(ctx, auditEventRegisterDuplicate, false, "", req.Email, ErrUserExists, nil)
		return "", ErrUserExists
	case errors.Is(err, store.ErrNotFound):
		// proceed
	default:
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", req.Email, err, func() map[string]string {
			return map[string]string{"reason": "store_lookup_failed"}
		})
		return "", ErrInternal
	}

	passwordHash, err := e.hasher.Hash(req.Password)
	if err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", req.Email, err, func() map[string]string {
			return map[string]string{"reason": "hash_failed"}
		})
		return "", ErrInternal
	}

	created, err := e.users.Create(ctx, store.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AvatarURL:    avatarURL(req.Email),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Lost the race against a concurrent registration.
			e.metricInc(MetricRegisterDuplicate)
			e.emitAudit(ctx, auditEventRegisterDuplicate, false, "", req.Email, ErrUserExists, nil)
			return "", ErrUserExists
		}
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", req.Email, err, func() map[string]string {
			return map[string]string{"reason": "store_create_failed"}
		})
		return "", ErrInternal
	}

	tok, err := e.tokens.Issue(created.ID)
	if err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, created.ID, req.Email, err, func() map[string]string {
			return map[string]string{"reason": "token_issue_failed"}
		})
		return "", ErrInternal
	}

	e.metricInc(MetricRegisterSuccess)
	e.metricInc(MetricTokenIssued)
	e.emitAudit(ctx, auditEventRegisterSuccess, true, created.ID, req.Email, nil, nil)

	return tok, nil
}
