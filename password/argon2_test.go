package password

import (
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Memory:      65536,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashAndVerify(t *testing.T) {
	hasher, err := NewHasher(testConfig())
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	hash, err := hasher.Hash("abcdef")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=2$") {
		t.Fatalf("unexpected PHC prefix: %s", hash)
	}

	ok, err := hasher.Verify("abcdef", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected password verification to succeed")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hasher, err := NewHasher(testConfig())
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := hasher.Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password verification to fail")
	}
}

func TestHashSaltRandomized(t *testing.T) {
	hasher, err := NewHasher(testConfig())
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("first Hash error: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("second Hash error: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct encoded hashes for the same password")
	}

	for _, hash := range []string{first, second} {
		ok, err := hasher.Verify("same-password", hash)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if !ok {
			t.Fatal("expected both salted hashes to verify")
		}
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	hasher, err := NewHasher(testConfig())
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	if _, err := hasher.Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher, err := NewHasher(testConfig())
	if err != nil {
		t.Fatalf("NewHasher error: %v", err)
	}

	cases := []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!$aGFzaA",
	}
	for _, input := range cases {
		if _, err := hasher.Verify("password", input); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestNewHasherRejectsWeakConfig(t *testing.T) {
	weak := []Config{
		{Memory: 1024, Time: 3, Parallelism: 2, SaltLength: 16, KeyLength: 32},
		{Memory: 65536, Time: 0, Parallelism: 2, SaltLength: 16, KeyLength: 32},
		{Memory: 65536, Time: 3, Parallelism: 0, SaltLength: 16, KeyLength: 32},
		{Memory: 65536, Time: 3, Parallelism: 2, SaltLength: 8, KeyLength: 32},
		{Memory: 65536, Time: 3, Parallelism: 2, SaltLength: 16, KeyLength: 8},
	}
	for _, cfg := range weak {
		if _, err := NewHasher(cfg); err == nil {
			t.Fatalf("expected config %+v to be rejected", cfg)
		}
	}
}
