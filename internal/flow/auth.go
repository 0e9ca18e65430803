package flow

import (
	"errors"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/store"
)

// Auth performs the stateless login and signup operations against the
// credential store.
type Auth struct {
	creds  *store.CredentialStore
	logger *slog.Logger
}

func NewAuth(creds *store.CredentialStore, logger *slog.Logger) *Auth {
	return &Auth{creds: creds, logger: logger}
}

func validateCredentialInput(username, password string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// Login validates non-empty inputs, then checks for an exact credential
// match. Success signals the note list; any failure stays put.
func (a *Auth) Login(username, password string) (Signal, error) {
	if err := validateCredentialInput(username, password); err != nil {
		return Stay, err
	}

	if _, err := a.creds.Authenticate(username, password); err != nil {
		if !errors.Is(err, apperr.ErrAuthMismatch) {
			a.logger.Error("login", "username", username, "error", err)
		}
		return Stay, err
	}

	a.logger.Info("login", "username", username)
	return GoNoteList, nil
}

// Signup validates non-empty inputs and registers the credential.
// Success signals the login entry point.
func (a *Auth) Signup(username, password string) (Signal, error) {
	if err := validateCredentialInput(username, password); err != nil {
		return Stay, err
	}

	if err := a.creds.Register(username, password); err != nil {
		a.logger.Error("signup", "username", username, "error", err)
		return Stay, err
	}

	a.logger.Info("signup", "username", username)
	return GoLogin, nil
}
