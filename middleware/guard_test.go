package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devgrid/authcore"
	"github.com/devgrid/authcore/store"
	"github.com/devgrid/authcore/token"
)

func newEngine(t *testing.T) *authcore.Engine {
	t.Helper()

	cfg := authcore.DefaultConfig()
	cfg.Token.Secret = []byte("0123456789abcdef0123456789abcdef")
	cfg.Audit.Enabled = false

	engine, err := authcore.New().
		WithConfig(cfg).
		WithStore(store.NewMemory()).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func guardedServer(t *testing.T, engine *authcore.Engine) http.Handler {
	t.Helper()

	return Guard(engine)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("expected identity in downstream context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(identity.UserID))
	}))
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}

	return body.Msg
}

func TestGuardMissingToken(t *testing.T) {
	handler := guardedServer(t, newEngine(t))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "No token, authorization denied" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestGuardInvalidToken(t *testing.T) {
	handler := guardedServer(t, newEngine(t))

	// Signed under a different secret.
	other, err := token.NewManager(token.Config{
		Secret: []byte("another-secret-another-secret-xx"),
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	forged, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	for _, tokenStr := range []string{"garbage", forged} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, tokenStr)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if msg := decodeMsg(t, rec); msg != "Token is not valid" {
			t.Fatalf("msg = %q", msg)
		}
	}
}

func TestGuardValidTokenAttachesIdentity(t *testing.T) {
	engine := newEngine(t)
	handler := guardedServer(t, engine)

	tok, err := engine.Register(t.Context(), authcore.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "abcdef",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected downstream handler to see a user id")
	}
}
