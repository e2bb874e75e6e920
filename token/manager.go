package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session token lifetime used when Config.TTL is zero.
const DefaultTTL = 100 * time.Hour

const minSecretBytes = 16

// ErrMalformed is returned when the token is not a parseable JWT.
var ErrMalformed = errors.New("malformed token")

// ErrSignature is returned when the signature does not match the secret.
var ErrSignature = errors.New("invalid token signature")

// ErrExpired is returned when the embedded expiry has passed.
var ErrExpired = errors.New("token expired")

// Config carries the process-wide signing secret and the token lifetime.
// The secret is supplied by the host configuration and never defaulted.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// Manager signs and verifies session tokens. Instances are immutable after
// construction and safe for concurrent use.
type Manager struct {
	config Config
}

// Claims is the token payload: the user id plus standard registered claims.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// NewManager validates the config and returns a Manager. The TTL defaults to
// [DefaultTTL] when unset.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) < minSecretBytes {
		return nil, errors.New("signing secret must be at least 16 bytes")
	}
	if cfg.TTL < 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}

	return &Manager{config: cfg}, nil
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.config.TTL
}

// Issue signs a token embedding userID with expiry at the configured
// lifetime from now.
func (m *Manager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
		},
	})

	return tok.SignedString(m.config.Secret)
}

// Verify parses and validates tokenStr and returns the embedded user id.
// Failures are reported as [ErrMalformed], [ErrSignature], or [ErrExpired].
func (m *Manager) Verify(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return m.config.Secret, nil
	})
	if err != nil {
		return "", mapParseError(err)
	}
	if !tok.Valid || claims.UID == "" {
		return "", ErrMalformed
	}

	return claims.UID, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	default:
		return ErrMalformed
	}
}
