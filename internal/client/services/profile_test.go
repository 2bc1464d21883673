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

func str(s string) *string { return &s }

func newProfileFixture() (*ProfileService, *state.State, *storage.MemoryStore) {
	st := state.New()
	store := storage.NewMemoryStore()
	return NewProfileService(st, store, logging.NewNopLogger()), st, store
}

func persistedProfile(t *testing.T, store *storage.MemoryStore) models.ProfileRecord {
	t.Helper()
	data, err := store.Get(context.Background(), storage.KeyProfile)
	require.NoError(t, err)
	require.NotNil(t, data)
	var rec models.ProfileRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec
}

func TestProfileService_SaveField(t *testing.T) {
	svc, st, store := newProfileFixture()
	ctx := context.Background()

	require.NoError(t, svc.SaveField(ctx, state.FieldName, "Alice"))
	require.NoError(t, svc.SaveField(ctx, state.FieldBio, "Hello"))

	rec, progress := st.Profile.Current()
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "Hello", rec.Bio)
	assert.Equal(t, 22, progress, "2 of 9 fields")

	assert.Equal(t, rec, persistedProfile(t, store), "store mirrors the full record")
}

func TestProfileService_SaveField_UnknownFieldDoesNotPersist(t *testing.T) {
	svc, _, store := newProfileFixture()

	err := svc.SaveField(context.Background(), state.Field("bogus"), "x")
	require.ErrorIs(t, err, state.ErrUnknownField)
	assert.Equal(t, 0, store.Len())
}

func TestProfileService_SaveProfile_MergesAndPersistsOnce(t *testing.T) {
	svc, st, store := newProfileFixture()
	ctx := context.Background()

	st.Profile.Hydrate(models.ProfileRecord{Name: "Alice"})
	svc.SaveProfile(ctx, state.ProfilePatch{
		Bio:      str("Hi"),
		Location: str("Oslo"),
	})

	rec, progress := st.Profile.Current()
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "Oslo", rec.Location)
	assert.Equal(t, 33, progress, "3 of 9 fields")
	assert.Equal(t, rec, persistedProfile(t, store))
}

func TestProfileService_PersistenceFailureIsSwallowed(t *testing.T) {
	st := state.New()
	store := storage.NewMemoryStore()
	store.SetErr = errors.New("disk full")
	svc := NewProfileService(st, store, logging.NewNopLogger())

	require.NoError(t, svc.SaveField(context.Background(), state.FieldName, "Alice"))
	assert.Equal(t, "Alice", st.Profile.Value(state.FieldName), "state updates even when the mirror fails")
}
