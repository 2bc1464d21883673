package services

import (
	"context"
	"encoding/json"

	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/storage"
	"github.com/mogligram/mogligram/internal/logging"
)

// ProfileService applies profile edits to Profile State and mirrors the full
// record into the persistent store.
type ProfileService struct {
	state *state.State
	store storage.Store
	log   logging.Logger
}

func NewProfileService(st *state.State, store storage.Store, log logging.Logger) *ProfileService {
	return &ProfileService{state: st, store: store, log: log}
}

// SaveField updates one field and persists the record. The only possible
// error is state.ErrUnknownField, which is a caller bug, not user input.
func (s *ProfileService) SaveField(ctx context.Context, field state.Field, value string) error {
	if err := s.state.Profile.UpdateField(field, value); err != nil {
		return err
	}
	s.persistProfile(ctx)
	return nil
}

// SaveProfile merges a patch (one recompute for the whole merge) and
// persists the record.
func (s *ProfileService) SaveProfile(ctx context.Context, patch state.ProfilePatch) {
	s.state.Profile.Update(patch)
	s.persistProfile(ctx)
}

func (s *ProfileService) persistProfile(ctx context.Context) {
	rec, _ := s.state.Profile.Current()
	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize profile", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyProfile, data); err != nil {
		s.log.Warn(ctx, "failed to persist profile", "error", err)
	}
}
