package authcore

import (
	"github.com/devgrid/authcore/password"
	"github.com/devgrid/authcore/store"
	"github.com/devgrid/authcore/token"
)

// Engine orchestrates the registration and login flows over its wired
// collaborators: the user store, the password hasher, and the token manager.
// Construct it through [Builder.Build]; instances are immutable and safe for
// concurrent use afterwards.
type Engine struct {
	users   store.UserStore
	hasher  *password.Hasher
	tokens  *token.Manager
	audit   *auditDispatcher
	metrics *Metrics
}

// AuditDropped reports how many audit events were discarded because the
// buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil {
		return 0
	}

	return e.audit.Dropped()
}

// Close flushes and stops the audit dispatcher.
func (e *Engine) Close() {
	if e == nil {
		return
	}

	e.audit.Close()
}
