// Package services contains application services for the SciCon CLI: the
// authentication lifecycle and the conference domain surface, both built on
// the authenticated API client and the session store.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/client/session"
	"github.com/scicon-platform/scicon-cli/internal/common"
	"github.com/scicon-platform/scicon-cli/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist session state (tokens, display fields).
//   - Register: create a new account; does not log in.
//   - Logout: clear all session state; safe to call when already logged out.
//   - Profile: the current user's profile via the shared provider.
//   - CurrentUser: locally stored display fields, no network.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, username, email string, password []byte) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (api.UserProfile, error)
	CurrentUser(ctx context.Context) (name string, email string, err error)
}

type authService struct {
	client   api.Client
	store    session.Store
	profiles *ProfileProvider
	validate *validator.Validate
	logger   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and profile provider.
func NewAuthService(client api.Client, store session.Store, profiles *ProfileProvider, logger logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		profiles: profiles,
		validate: validator.New(),
		logger:   logger,
	}
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type registerInput struct {
	Username string `validate:"required,min=2,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Login validates credentials locally, exchanges them for a token pair
// (persisted by the API client) and records the display fields. A failing
// profile fetch after login is logged but does not fail the login: the
// session is already established.
func (s *authService) Login(ctx context.Context, email string, password []byte) error {
	in := loginInput{Email: email, Password: string(password)}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	if _, err := s.client.Login(ctx, email, string(password)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := s.store.Set(ctx, session.KeyUserEmail, email); err != nil {
		return err
	}

	s.profiles.Invalidate()
	profile, err := s.profiles.Profile(ctx)
	if err != nil {
		s.logger.Warn(ctx, "profile fetch after login failed", "error", err)
		return nil
	}
	return s.store.Set(ctx, session.KeyUserName, profile.Username)
}

// Register creates a new account on the server after local validation.
func (s *authService) Register(ctx context.Context, username, email string, password []byte) error {
	in := registerInput{Username: username, Email: email, Password: string(password)}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	return s.client.Register(ctx, username, email, string(password))
}

// Logout wipes all locally stored session state and drops the cached
// profile. Logging out while already logged out clears nothing and is not
// an error.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.profiles.Invalidate()
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *authService) Profile(ctx context.Context) (api.UserProfile, error) {
	return s.profiles.Profile(ctx)
}

// CurrentUser returns the locally persisted display fields without a
// network round trip. Both are empty when logged out.
func (s *authService) CurrentUser(ctx context.Context) (string, string, error) {
	name, err := s.store.Get(ctx, session.KeyUserName)
	if err != nil {
		return "", "", err
	}
	email, err := s.store.Get(ctx, session.KeyUserEmail)
	if err != nil {
		return "", "", err
	}
	return name, email, nil
}
