package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogligram/mogligram/internal/client/models"
)

func phoneSession() models.SessionRecord {
	return models.SessionRecord{
		IsAuthenticated: true,
		User: &models.SessionUser{
			ID:         "user_1_abc",
			Identifier: "9876543210",
			Type:       models.IdentifierPhone,
		},
		Token: "token_1",
	}
}

func TestSessionState_DefaultIsUnauthenticated(t *testing.T) {
	s := NewSessionState()

	assert.False(t, s.IsAuthenticated())
	rec := s.Current()
	assert.Nil(t, rec.User)
	assert.Empty(t, rec.Token)
}

func TestSessionState_LoginReplacesWholeSession(t *testing.T) {
	s := NewSessionState()
	s.Login(phoneSession())

	require.True(t, s.IsAuthenticated())
	rec := s.Current()
	require.NotNil(t, rec.User)
	assert.Equal(t, "9876543210", rec.User.Identifier)
	assert.Equal(t, models.IdentifierPhone, rec.User.Type)
	assert.Equal(t, "token_1", rec.Token)
	assert.True(t, rec.Valid())
}

func TestSessionState_LoginForcesAuthenticatedFlag(t *testing.T) {
	s := NewSessionState()
	rec := phoneSession()
	rec.IsAuthenticated = false

	s.Login(rec)
	assert.True(t, s.IsAuthenticated())
}

func TestSessionState_HydrateBehavesLikeLogin(t *testing.T) {
	s := NewSessionState()
	s.Hydrate(phoneSession())

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, phoneSession(), s.Current())
}

func TestSessionState_LogoutResetsToDefault(t *testing.T) {
	s := NewSessionState()
	s.Login(phoneSession())
	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, models.SessionRecord{}, s.Current())
}

func TestSessionState_CurrentReturnsCopy(t *testing.T) {
	s := NewSessionState()
	s.Login(phoneSession())

	rec := s.Current()
	rec.User.Identifier = "tampered"

	assert.Equal(t, "9876543210", s.Current().User.Identifier)
}
