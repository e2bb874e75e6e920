package authcore

import (
	"context"
	"errors"
	"testing"
)

func registerTestUser(t *testing.T, engine *Engine) {
	t.Helper()

	if _, err := engine.Register(context.Background(), RegisterRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "abcdef",
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	engine, _ := newTestEngine(t, fastConfig())
	registerTestUser(t, engine)
	ctx := context.Background()

	tok, err := engine.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "abcdef"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if _, err := engine.VerifyToken(ctx, tok); err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
}

func TestLoginUnknownEmailAndWrongPasswordIdentical(t *testing.T) {
	engine, _ := newTestEngine(t, fastConfig())
	registerTestUser(t, engine)
	ctx := context.Background()

	_, unknownErr := engine.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "abcdef"})
	_, mismatchErr := engine.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "wrong"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(mismatchErr, ErrInvalidCredentials) {
		t.Fatalf("password mismatch error = %v, want ErrInvalidCredentials", mismatchErr)
	}
	if unknownErr.Error() != mismatchErr.Error() {
		t.Fatalf("error texts differ: %q vs %q", unknownErr, mismatchErr)
	}
}

func TestLoginValidation(t *testing.T) {
	engine, _ := newTestEngine(t, fastConfig())
	ctx := context.Background()

	_, err := engine.Login(ctx, LoginRequest{Email: "not-an-email", Password: ""})

	var validation ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationErrors", err)
	}
	if len(validation) != 2 {
		t.Fatalf("got %d field errors, want 2: %v", len(validation), validation)
	}
}

func TestCurrentUser(t *testing.T) {
	engine, users := newTestEngine(t, fastConfig())
	registerTestUser(t, engine)
	ctx := context.Background()

	record, err := users.FindByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}

	got, err := engine.CurrentUser(ctx, record.ID)
	if err != nil {
		t.Fatalf("CurrentUser error: %v", err)
	}
	if got.Email != "ann@x.com" {
		t.Fatalf("email = %q", got.Email)
	}

	if _, err := engine.CurrentUser(ctx, "missing-id"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("CurrentUser(missing) error = %v, want ErrUserNotFound", err)
	}
	if _, err := engine.CurrentUser(ctx, ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("CurrentUser(empty) error = %v, want ErrUserNotFound", err)
	}
}
