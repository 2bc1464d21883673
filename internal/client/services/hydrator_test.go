package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogligram/mogligram/internal/client/models"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/storage"
	"github.com/mogligram/mogligram/internal/logging"
)

func validSessionJSON(t *testing.T) []byte {
	t.Helper()
	rec := models.SessionRecord{
		IsAuthenticated: true,
		User: &models.SessionUser{
			ID:         "user_1_abc",
			Identifier: "alice@example.com",
			Type:       models.IdentifierEmail,
		},
		Token: "token_1",
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	return data
}

func newHydratorFixture() (*Hydrator, *state.State, *storage.MemoryStore) {
	st := state.New()
	store := storage.NewMemoryStore()
	return NewHydrator(st, store, logging.NewNopLogger()), st, store
}

func TestHydrator_NoSavedState(t *testing.T) {
	h, st, _ := newHydratorFixture()

	assert.Equal(t, PhasePending, h.Phase())
	h.Run(context.Background())

	assert.Equal(t, PhaseReady, h.Phase())
	assert.False(t, st.Session.IsAuthenticated())
	_, progress := st.Profile.Current()
	assert.Equal(t, 0, progress)
}

func TestHydrator_RestoresSessionAndProfile(t *testing.T) {
	h, st, store := newHydratorFixture()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyAuth, validSessionJSON(t)))
	profile, err := json.Marshal(models.ProfileRecord{Name: "Alice", Bio: "Hi"})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyProfile, profile))

	h.Run(ctx)

	require.True(t, st.Session.IsAuthenticated())
	assert.Equal(t, "alice@example.com", st.Session.Current().User.Identifier)

	rec, progress := st.Profile.Current()
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, 22, progress)
	assert.Equal(t, PhaseReady, h.Phase())
}

func TestHydrator_ProfileIgnoredWithoutSession(t *testing.T) {
	h, st, store := newHydratorFixture()
	ctx := context.Background()

	profile, _ := json.Marshal(models.ProfileRecord{Name: "Orphan"})
	require.NoError(t, store.Set(ctx, storage.KeyProfile, profile))

	h.Run(ctx)

	rec, _ := st.Profile.Current()
	assert.Equal(t, models.ProfileRecord{}, rec, "profile applies only under a restored session")
}

func TestHydrator_UnauthenticatedPersistedSessionIgnored(t *testing.T) {
	h, st, store := newHydratorFixture()
	ctx := context.Background()

	data, _ := json.Marshal(models.SessionRecord{IsAuthenticated: false})
	require.NoError(t, store.Set(ctx, storage.KeyAuth, data))

	h.Run(ctx)
	assert.False(t, st.Session.IsAuthenticated())
}

func TestHydrator_InvalidSessionRecordIgnored(t *testing.T) {
	h, st, store := newHydratorFixture()
	ctx := context.Background()

	// Authenticated but missing user/token: violates the session invariant.
	data, _ := json.Marshal(models.SessionRecord{IsAuthenticated: true})
	require.NoError(t, store.Set(ctx, storage.KeyAuth, data))

	h.Run(ctx)
	assert.False(t, st.Session.IsAuthenticated())
	assert.Equal(t, PhaseReady, h.Phase())
}

func TestHydrator_CorruptBlobsDegradeToDefault(t *testing.T) {
	t.Run("corrupt session", func(t *testing.T) {
		h, st, store := newHydratorFixture()
		require.NoError(t, store.Set(context.Background(), storage.KeyAuth, []byte("{not json")))

		h.Run(context.Background())
		assert.False(t, st.Session.IsAuthenticated())
		assert.Equal(t, PhaseReady, h.Phase())
	})

	t.Run("corrupt profile under valid session", func(t *testing.T) {
		h, st, store := newHydratorFixture()
		ctx := context.Background()
		require.NoError(t, store.Set(ctx, storage.KeyAuth, validSessionJSON(t)))
		require.NoError(t, store.Set(ctx, storage.KeyProfile, []byte("{broken")))

		h.Run(ctx)
		assert.True(t, st.Session.IsAuthenticated(), "session still restores")
		rec, _ := st.Profile.Current()
		assert.Equal(t, models.ProfileRecord{}, rec)
	})
}

func TestHydrator_StoreErrorDegradesToDefault(t *testing.T) {
	h, st, store := newHydratorFixture()
	store.GetErr = errors.New("io error")

	h.Run(context.Background())

	assert.False(t, st.Session.IsAuthenticated())
	assert.Equal(t, PhaseReady, h.Phase(), "read failures never block readiness")
}

func TestHydrator_RunIsOneShot(t *testing.T) {
	h, st, store := newHydratorFixture()
	ctx := context.Background()

	h.Run(ctx)
	require.Equal(t, PhaseReady, h.Phase())

	// Data appearing later must not be picked up by a second Run.
	require.NoError(t, store.Set(ctx, storage.KeyAuth, validSessionJSON(t)))
	h.Run(ctx)

	assert.False(t, st.Session.IsAuthenticated())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "hydrating", PhaseHydrating.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
