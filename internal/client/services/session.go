// Package services contains the application services of the stockctl client:
// session lifecycle on one side, item CRUD and history on the other. They
// bind the stateless API client to the persistent credential store and hold
// the flow rules the UI must not care about (when a token is stored, when it
// is cleared, how a save routes to create or update).
package services

import (
	"context"

	"stockctl/internal/client/creds"
	"stockctl/internal/logging"
)

// sessionAPI is the slice of the API client the session service needs.
type sessionAPI interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
}

// SessionService manages the lifecycle of the remote session and its local
// credential.
//
// Contract:
//   - Register: create an account; no credential changes.
//   - Login: authenticate and persist the returned token. The token is
//     stored only after a successful exchange.
//   - Logout: invalidate the session server-side and clear the local token.
//     The local clear happens even when the server call fails; logging out
//     locally must always succeed.
//   - LoggedIn: whether a token is currently stored.
type SessionService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
}

type sessionService struct {
	api   sessionAPI
	store creds.Store
	log   logging.Logger
}

// NewSessionService constructs a SessionService bound to the given API
// client and credential store.
func NewSessionService(api sessionAPI, store creds.Store, log logging.Logger) SessionService {
	return &sessionService{api: api, store: store, log: log}
}

func (s *sessionService) Register(ctx context.Context, username, email, password string) error {
	return s.api.Register(ctx, username, email, password)
}

func (s *sessionService) Login(ctx context.Context, username, password string) error {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.store.SetToken(ctx, token)
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		// The server-side invalidation failing does not keep the user
		// logged in locally.
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}
	return s.store.ClearToken(ctx)
}

func (s *sessionService) LoggedIn(ctx context.Context) bool {
	token, err := s.store.GetToken(ctx)
	return err == nil && token != ""
}
