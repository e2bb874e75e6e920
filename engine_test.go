package authcore

import (
	"testing"

	"github.com/devgrid/authcore/store"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// fastConfig keeps argon2 cheap enough for tests while staying above the
// package minimums.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.Token.Secret = testSecret
	cfg.Password.Memory = 8 * 1024
	cfg.Password.Time = 1
	cfg.Password.Parallelism = 1
	cfg.Audit.Enabled = false

	return cfg
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *store.Memory) {
	t.Helper()

	users := store.NewMemory()
	engine, err := New().WithConfig(cfg).WithStore(users).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine, users
}

func TestBuildRequiresSecret(t *testing.T) {
	cfg := fastConfig()
	cfg.Token.Secret = nil

	if _, err := New().WithConfig(cfg).WithStore(store.NewMemory()).Build(); err == nil {
		t.Fatal("expected Build to fail without a signing secret")
	}
}

func TestBuildRequiresStore(t *testing.T) {
	if _, err := New().WithConfig(fastConfig()).Build(); err == nil {
		t.Fatal("expected Build to fail without a user store")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithConfig(fastConfig()).WithStore(store.NewMemory())

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}
