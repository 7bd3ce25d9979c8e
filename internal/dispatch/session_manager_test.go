package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_NewSession(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	s, err := sm.NewSession("tester")
	require.NoError(t, err)
	assert.Len(t, s.Token, 32)
	assert.Equal(t, "tester", s.Login)

	got, ok := sm.Verify(s.Token)
	require.True(t, ok)
	assert.Equal(t, s, got)
	assert.Equal(t, 1, sm.SessionCount())
}

func TestSessionManager_ReloginRevokesPrevious(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	first, err := sm.NewSession("tester")
	require.NoError(t, err)
	second, err := sm.NewSession("tester")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	_, ok := sm.Verify(first.Token)
	assert.False(t, ok)
	_, ok = sm.Verify(second.Token)
	assert.True(t, ok)
	assert.Equal(t, 1, sm.SessionCount())
}

func TestSessionManager_Expiry(t *testing.T) {
	sm := NewSessionManager(time.Millisecond)

	s, err := sm.NewSession("tester")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, ok := sm.Verify(s.Token)
	assert.False(t, ok)
	assert.Equal(t, 0, sm.SessionCount())
}

func TestSessionManager_Revoke(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	s, err := sm.NewSession("tester")
	require.NoError(t, err)
	sm.Revoke(s.Token)

	_, ok := sm.Verify(s.Token)
	assert.False(t, ok)

	// revoking an unknown token is a no-op
	sm.Revoke("nope")
}
