package authcore

import (
	"errors"

	"github.com/devgrid/authcore/password"
	"github.com/devgrid/authcore/token"
)

// Config is the engine configuration. Instances are validated by
// [Builder.Build] and treated as immutable afterwards.
type Config struct {
	Token    token.Config
	Password password.Config
	Audit    AuditConfig
}

// AuditConfig controls the buffered audit pipeline.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking the request path when the
	// buffer is saturated.
	DropIfFull bool
}

// DefaultConfig returns the recommended configuration. The signing secret is
// intentionally absent: it must always be supplied by the host.
func DefaultConfig() Config {
	return Config{
		Token: token.Config{
			TTL: token.DefaultTTL,
		},
		Password: password.Config{
			Memory:      64 * 1024,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if len(cfg.Token.Secret) == 0 {
		return errors.New("token signing secret is required")
	}
	if cfg.Audit.Enabled && cfg.Audit.BufferSize < 0 {
		return errors.New("audit buffer size must not be negative")
	}

	return nil
}
