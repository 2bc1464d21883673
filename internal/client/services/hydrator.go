package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/mogligram/mogligram/internal/client/models"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/storage"
	"github.com/mogligram/mogligram/internal/logging"
)

// Phase is the hydrator's lifecycle state. Ready is terminal for the process
// lifetime; only a fresh process hydrates again.
type Phase int32

const (
	PhasePending Phase = iota
	PhaseHydrating
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseHydrating:
		return "hydrating"
	case PhaseReady:
		return "ready"
	}
	return "unknown"
}

// Hydrator restores session and profile from the persistent store at process
// start, before the first screen renders.
//
// Every failure mode — missing blob, corrupt JSON, store read error, a
// persisted record that violates the session invariant — degrades to the
// unauthenticated default. The hydrator never surfaces a fatal error.
type Hydrator struct {
	state *state.State
	store storage.Store
	log   logging.Logger

	phase atomic.Int32
	once  sync.Once
}

func NewHydrator(st *state.State, store storage.Store, log logging.Logger) *Hydrator {
	return &Hydrator{state: st, store: store, log: log}
}

// Phase reports the current lifecycle phase.
func (h *Hydrator) Phase() Phase {
	return Phase(h.phase.Load())
}

// Run performs the one-shot hydration sequence and returns once the state
// containers reflect whatever was restorable. Subsequent calls are no-ops;
// the Pending→Hydrating→Ready transition happens exactly once.
func (h *Hydrator) Run(ctx context.Context) {
	h.once.Do(func() {
		h.phase.Store(int32(PhaseHydrating))
		defer h.phase.Store(int32(PhaseReady))

		rec, ok := h.loadSession(ctx)
		if !ok {
			h.log.Info(ctx, "hydration complete", "authenticated", false)
			return
		}

		h.state.Session.Hydrate(rec)

		// Profile is only restored under a restored session.
		if prec, ok := h.loadProfile(ctx); ok {
			h.state.Profile.Hydrate(prec)
		}
		h.log.Info(ctx, "hydration complete", "authenticated", true)
	})
}

func (h *Hydrator) loadSession(ctx context.Context) (models.SessionRecord, bool) {
	data, err := h.store.Get(ctx, storage.KeyAuth)
	if err != nil {
		h.log.Warn(ctx, "failed to read persisted session, treating as absent", "error", err)
		return models.SessionRecord{}, false
	}
	if data == nil {
		return models.SessionRecord{}, false
	}

	var rec models.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		h.log.Warn(ctx, "corrupt persisted session, treating as absent", "error", err)
		return models.SessionRecord{}, false
	}
	if !rec.IsAuthenticated || !rec.Valid() {
		return models.SessionRecord{}, false
	}
	return rec, true
}

func (h *Hydrator) loadProfile(ctx context.Context) (models.ProfileRecord, bool) {
	data, err := h.store.Get(ctx, storage.KeyProfile)
	if err != nil {
		h.log.Warn(ctx, "failed to read persisted profile, treating as absent", "error", err)
		return models.ProfileRecord{}, false
	}
	if data == nil {
		return models.ProfileRecord{}, false
	}

	var rec models.ProfileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		h.log.Warn(ctx, "corrupt persisted profile, treating as absent", "error", err)
		return models.ProfileRecord{}, false
	}
	return rec, true
}
