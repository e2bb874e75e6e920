package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/devgrid/authcore"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-auth-token"

// Rejection messages, surfaced verbatim in 401 bodies. Missing and invalid
// tokens are the only two cases clients can tell apart; all verification
// failure kinds collapse into the latter.
const (
	msgNoToken      = "No token, authorization denied"
	msgTokenInvalid = "Token is not valid"
)

type identityContextKey struct{}

// IdentityFromContext returns the identity the guard attached for this
// request, if any.
func IdentityFromContext(ctx context.Context) (authcore.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(authcore.Identity)
	return identity, ok
}

// Guard returns middleware that gates the wrapped handler behind session
// token verification.
func Guard(engine *authcore.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				reject(w, msgTokenInvalid)
				return
			}

			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				reject(w, msgNoToken)
				return
			}

			identity, err := engine.VerifyToken(r.Context(), tokenStr)
			if err != nil {
				reject(w, msgTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
