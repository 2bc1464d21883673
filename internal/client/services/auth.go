// Package services contains the application services the screens call:
// authentication, profile persistence, content fetching and the startup
// hydrator. Services own the "mirror state mutations into the persistent
// store" responsibility; the state containers themselves never touch disk.
package services

import (
	"context"
	"encoding/json"

	"github.com/mogligram/mogligram/internal/client/models"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/storage"
	"github.com/mogligram/mogligram/internal/client/validation"
	"github.com/mogligram/mogligram/internal/logging"
)

// AuthService performs login and logout: validation, session construction,
// state mutation and the best-effort persistence mirror.
type AuthService struct {
	state *state.State
	store storage.Store
	log   logging.Logger
}

func NewAuthService(st *state.State, store storage.Store, log logging.Logger) *AuthService {
	return &AuthService{state: st, store: store, log: log}
}

// Login validates the identifier and password, builds a fresh session
// (generated user ID, opaque token) and applies it to Session State.
//
// Validation failures come back as the sentinel errors from the validation
// package; their messages are field-level user text. A persistence failure
// is logged and swallowed: the session is live either way, the user just
// pays with a re-login after the next restart.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (models.SessionRecord, error) {
	id, err := validation.ClassifyIdentifier(identifier)
	if err != nil {
		return models.SessionRecord{}, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.SessionRecord{}, err
	}

	rec := models.SessionRecord{
		IsAuthenticated: true,
		User: &models.SessionUser{
			ID:         validation.GenerateUserID(),
			Identifier: id.Value,
			Type:       id.Type,
		},
		Token: validation.GenerateToken(),
	}

	s.state.Session.Login(rec)
	s.persistSession(ctx, rec)

	s.log.Info(ctx, "login successful", "type", string(id.Type))
	return rec, nil
}

// Logout resets session, profile and content state and clears both persisted
// records. The store clear is best-effort: a failure is logged, never
// surfaced.
func (s *AuthService) Logout(ctx context.Context) {
	s.state.Session.Logout()
	s.state.Profile.Clear()
	s.state.Content.Clear()

	if err := s.store.DeleteMany(ctx, []string{storage.KeyAuth, storage.KeyProfile}); err != nil {
		s.log.Warn(ctx, "failed to clear persisted data on logout", "error", err)
	}
	s.log.Info(ctx, "logged out")
}

func (s *AuthService) persistSession(ctx context.Context, rec models.SessionRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize session", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyAuth, data); err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}
}
