package authcore

import (
	"context"
	"errors"
	"strings"

	"github.com/devgrid/authcore/store"
)

// Login authenticates an existing account and returns a signed session
// token.
//
// An unknown email and a password mismatch both return
// [ErrInvalidCredentials] so callers cannot probe for account existence. The
// audit stream records which it was.
func (e *Engine) Login(ctx context.Context, req LoginRequest) (string, error) {
	if e == nil || e.users == nil || e.hasher == nil || e.tokens == nil {
		return "", ErrEngineNotReady
	}

	req.Email = strings.TrimSpace(req.Email)

	if errs := validateLogin(req); len(errs) > 0 {
		return "", errs
	}

	record, err := e.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.metricInc(MetricLoginFailure)
			e.emitAudit(ctx, auditEventLoginFailure, false, "", req.Email, ErrInvalidCredentials, func() map[string]string {
				return map[string]string{"reason": "unknown_email"}
			})
			return "", ErrInvalidCredentials
		}
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", req.Email, err, func() map[string]string {
			return map[string]string{"reason": "store_lookup_failed"}
		})
		return "", ErrInternal
	}

	match, err := e.hasher.Verify(req.Password, record.PasswordHash)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, record.ID, req.Email, err, func() map[string]string {
			return map[string]string{"reason": "stored_hash_invalid"}
		})
		return "", ErrInternal
	}
	if !match {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, record.ID, req.Email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{"reason": "password_mismatch"}
		})
		return "", ErrInvalidCredentials
	}

	tok, err := e.tokens.Issue(record.ID)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, record.ID, req.Email, err, func() map[string]string {
			return map[string]string{"reason": "token_issue_failed"}
		})
		return "", ErrInternal
	}

	e.metricInc(MetricLoginSuccess)
	e.metricInc(MetricTokenIssued)
	e.emitAudit(ctx, auditEventLoginSuccess, true, record.ID, req.Email, nil, nil)

	return tok, nil
}
