package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogligram/mogligram/internal/client/models"
)

func str(s string) *string { return &s }

func TestProfileState_DefaultIsEmpty(t *testing.T) {
	p := NewProfileState()

	rec, progress := p.Current()
	assert.Equal(t, models.ProfileRecord{}, rec)
	assert.Equal(t, 0, progress)
}

func TestProfileState_UpdateField(t *testing.T) {
	p := NewProfileState()

	require.NoError(t, p.UpdateField(FieldName, "Alice"))
	require.NoError(t, p.UpdateField(FieldBio, "Hello"))

	rec, progress := p.Current()
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "Hello", rec.Bio)
	// 2 of 9 fields filled: round(200/9) = 22.
	assert.Equal(t, 22, progress)
}

func TestProfileState_UpdateField_UnknownFieldRejected(t *testing.T) {
	p := NewProfileState()
	require.NoError(t, p.UpdateField(FieldName, "Alice"))

	err := p.UpdateField(Field("nickname"), "x")
	require.ErrorIs(t, err, ErrUnknownField)

	// The record and progress stay untouched.
	rec, progress := p.Current()
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, 11, progress)
}

func TestProfileState_ProgressRounding(t *testing.T) {
	tests := []struct {
		filled int
		want   int
	}{
		{0, 0},
		{1, 11},  // 100/9 = 11.1
		{2, 22},  // 200/9 = 22.2
		{3, 33},  // 300/9 = 33.3
		{4, 44},
		{5, 56},  // 500/9 = 55.6 rounds up
		{6, 67},  // 600/9 = 66.7
		{7, 78},
		{8, 89},
		{9, 100},
	}

	for _, tc := range tests {
		p := NewProfileState()
		for i := 0; i < tc.filled; i++ {
			require.NoError(t, p.UpdateField(Fields[i], "x"))
		}
		assert.Equal(t, tc.want, p.Progress(), "filled=%d", tc.filled)
	}
}

func TestProfileState_BlankMeansWhitespaceOnly(t *testing.T) {
	p := NewProfileState()

	require.NoError(t, p.UpdateField(FieldName, "   "))
	assert.Equal(t, 0, p.Progress())

	require.NoError(t, p.UpdateField(FieldName, " Alice "))
	assert.Equal(t, 11, p.Progress())
}

func TestProfileState_Update_MergesPatch(t *testing.T) {
	p := NewProfileState()
	p.Hydrate(models.ProfileRecord{Name: "Alice", Location: "Oslo"})

	p.Update(ProfilePatch{Bio: str("Hi"), Location: str("")})

	rec, progress := p.Current()
	assert.Equal(t, "Alice", rec.Name, "untouched field survives merge")
	assert.Equal(t, "Hi", rec.Bio)
	assert.Equal(t, "", rec.Location, "explicit empty pointer clears the field")
	assert.Equal(t, 22, progress)
}

func TestProfileState_Update_EmptyPatchIsNoop(t *testing.T) {
	p := NewProfileState()
	p.Hydrate(models.ProfileRecord{Name: "Alice"})

	before, beforeProgress := p.Current()
	p.Update(ProfilePatch{})
	after, afterProgress := p.Current()

	assert.Equal(t, before, after)
	assert.Equal(t, beforeProgress, afterProgress)
}

func TestProfileState_Hydrate_Idempotent(t *testing.T) {
	rec := models.ProfileRecord{Name: "Alice", Bio: "Hi", Website: "https://a.io"}

	p := NewProfileState()
	p.Hydrate(rec)
	first := p.Progress()
	p.Hydrate(rec)
	second := p.Progress()

	assert.Equal(t, first, second)
	assert.Equal(t, 33, first, "3 of 9 fields = round(300/9)")
}

func TestProfileState_Clear(t *testing.T) {
	p := NewProfileState()
	p.Hydrate(models.ProfileRecord{Name: "Alice", Bio: "Hi"})

	p.Clear()

	rec, progress := p.Current()
	assert.Equal(t, models.ProfileRecord{}, rec)
	assert.Equal(t, 0, progress)
}

func TestProfileState_Value(t *testing.T) {
	p := NewProfileState()
	require.NoError(t, p.UpdateField(FieldWebsite, "https://a.io"))

	assert.Equal(t, "https://a.io", p.Value(FieldWebsite))
	assert.Equal(t, "", p.Value(FieldName))
	assert.Equal(t, "", p.Value(Field("bogus")))
}

func TestFields_CoversAllNine(t *testing.T) {
	assert.Len(t, Fields, models.FieldCount)

	p := NewProfileState()
	for _, f := range Fields {
		require.NoError(t, p.UpdateField(f, "v"))
	}
	assert.Equal(t, 100, p.Progress())
}
