package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/devgrid/authcore"
	"github.com/devgrid/authcore/middleware"
)

const serverErrorBody = "Server error"

type tokenResponse struct {
	Token string `json:"token"`
}

type errorsResponse struct {
	Errors []authcore.FieldError `json:"errors"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// Handler serves the authentication endpoints.
type Handler struct {
	engine *authcore.Engine
	mux    *http.ServeMux
}

// NewHandler builds the route table over the given engine.
func NewHandler(engine *authcore.Engine) *Handler {
	h := &Handler{engine: engine, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /api/users", h.register)
	h.mux.HandleFunc("POST /api/auth", h.login)
	h.mux.Handle("GET /api/auth", middleware.Guard(engine)(http.HandlerFunc(h.currentUser)))

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	tok, err := h.engine.Register(requestContext(r), authcore.RegisterRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeFlowError(w, err, "User already exists")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: tok})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	tok, err := h.engine.Login(requestContext(r), authcore.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeFlowError(w, err, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: tok})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, serverErrorBody, http.StatusInternalServerError)
		return
	}

	record, err := h.engine.CurrentUser(requestContext(r), identity.UserID)
	if err != nil {
		http.Error(w, serverErrorBody, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		AvatarURL: record.AvatarURL,
	})
}

// writeFlowError translates the engine's error taxonomy into the response
// contract. domainMsg is the generic 400 message for this flow's domain
// failure (duplicate user on register, bad credentials on login).
func writeFlowError(w http.ResponseWriter, err error, domainMsg string) {
	var validation authcore.ValidationErrors
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: validation})
	case errors.Is(err, authcore.ErrUserExists), errors.Is(err, authcore.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, errorsResponse{
			Errors: []authcore.FieldError{{Msg: domainMsg}},
		})
	default:
		http.Error(w, serverErrorBody, http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsResponse{
			Errors: []authcore.FieldError{{Msg: "Invalid request payload"}},
		})
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestContext annotates the request context with the caller's IP for
// audit metadata.
func requestContext(r *http.Request) context.Context {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return authcore.WithClientIP(r.Context(), host)
}
