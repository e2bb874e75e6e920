package authcore

import (
	"net/mail"
	"strings"
)

const minPasswordLength = 6

// Validation messages surfaced verbatim in 400 responses.
const (
	msgNameRequired     = "Name is required"
	msgEmailInvalid     = "Please include a valid email"
	msgPasswordTooShort = "Please enter a password with 6 or more characters"
	msgPasswordRequired = "Password required"
)

// FieldError is a single per-field validation message.
type FieldError struct {
	Msg string `json:"msg"`
}

// ValidationErrors aggregates per-field validation messages. It implements
// error so flows can return it directly; the HTTP layer renders it as a
// 400-class errors list.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Msg
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func validateRegister(req RegisterRequest) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Msg: msgNameRequired})
	}
	if !isEmailSyntax(req.Email) {
		errs = append(errs, FieldError{Msg: msgEmailInvalid})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, FieldError{Msg: msgPasswordTooShort})
	}

	return errs
}

func validateLogin(req LoginRequest) ValidationErrors {
	var errs ValidationErrors

	if !isEmailSyntax(req.Email) {
		errs = append(errs, FieldError{Msg: msgEmailInvalid})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Msg: msgPasswordRequired})
	}

	return errs
}

// isEmailSyntax accepts a bare addr-spec only: no display name, no angle
// brackets, and a dot somewhere in the domain.
func isEmailSyntax(email string) bool {
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	_, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || !strings.Contains(domain, ".") {
		return false
	}

	return true
}
