package authcore

import (
	"errors"

	"github.com/devgrid/authcore/password"
	"github.com/devgrid/authcore/store"
	"github.com/devgrid/authcore/token"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine] from configuration and collaborators.
type Builder struct {
	config    Config
	users     store.UserStore
	redis     *redis.Client
	auditSink AuditSink
	built     bool
}

// New returns a Builder seeded with [DefaultConfig]. The token signing
// secret must still be supplied via [Builder.WithConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore wires the user store the engine persists records in.
func (b *Builder) WithStore(users store.UserStore) *Builder {
	b.users = users
	return b
}

// WithRedis is a convenience that installs a [store.Redis] over the given
// client. Ignored when WithStore was also called.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink wires the sink that receives audit events. Defaults to
// [NoOpSink] when auditing is enabled without a sink.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates the configuration, constructs the hasher and the token
// manager, and starts the audit dispatcher. A Builder builds at most once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	users := b.users
	if users == nil && b.redis != nil {
		redisStore, err := store.NewRedis(b.redis, "")
		if err != nil {
			return nil, err
		}
		users = redisStore
	}
	if users == nil {
		return nil, errors.New("user store is required")
	}

	hasher, err := password.NewHasher(b.config.Password)
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewManager(b.config.Token)
	if err != nil {
		return nil, err
	}

	return &Engine{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		audit:   newAuditDispatcher(b.config.Audit, b.auditSink),
		metrics: newMetrics(),
	}, nil
}
