package authcore

import (
	"context"
)

// VerifyToken checks a presented session token and resolves the identity it
// proves. Every failure (malformed token, bad signature, expired) returns
// [ErrInvalidToken]; the specific cause is recorded in the audit stream.
func (e *Engine) VerifyToken(ctx context.Context, tokenStr string) (Identity, error) {
	if e == nil || e.tokens == nil {
		return Identity{}, ErrEngineNotReady
	}

	userID, err := e.tokens.Verify(tokenStr)
	if err != nil {
		e.metricInc(MetricTokenRejected)
		e.emitAudit(ctx, auditEventTokenRejected, false, "", "", err, nil)
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID}, nil
}
