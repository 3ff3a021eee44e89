package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, ok := m.Identity()
	require.False(t, ok)
	require.Equal(t, StatusAnonymous, m.CheckIdle(t0, 5*time.Minute))

	m.Start("alice", t0)
	id, ok := m.Identity()
	require.True(t, ok)
	require.Equal(t, "alice", id)

	m.Clear()
	_, ok = m.Identity()
	require.False(t, ok)

	// Clear is idempotent
	m.Clear()
}

func TestManager_IdleBoundary(t *testing.T) {
	m := NewManager()
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limit := 5 * time.Minute

	m.Start("alice", t0)

	require.Equal(t, StatusActive, m.CheckIdle(t0.Add(limit-time.Second), limit))
	require.Equal(t, StatusActive, m.CheckIdle(t0.Add(limit), limit))
	require.Equal(t, StatusExpired, m.CheckIdle(t0.Add(limit+time.Second), limit))
}

func TestManager_TouchResetsTimer(t *testing.T) {
	m := NewManager()
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limit := 5 * time.Minute

	m.Start("alice", t0)
	m.Touch(t0.Add(4 * time.Minute))

	// 4m + 4m since touch: still under the threshold measured from the touch
	require.Equal(t, StatusActive, m.CheckIdle(t0.Add(8*time.Minute), limit))
	require.Equal(t, StatusExpired, m.CheckIdle(t0.Add(10*time.Minute), limit))
}

func TestManager_TouchAnonymousNoop(t *testing.T) {
	m := NewManager()
	m.Touch(time.Now())
	require.Equal(t, StatusAnonymous, m.CheckIdle(time.Now(), time.Minute))
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secretKey", 5*time.Minute)

	token, err := issuer.Issue("alice", time.Now())
	require.NoError(t, err)

	username, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestTokenIssuer_Tampered(t *testing.T) {
	issuer := NewTokenIssuer("secretKey", 5*time.Minute)

	token, err := issuer.Issue("alice", time.Now())
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secretKey", 5*time.Minute)
	other := NewTokenIssuer("otherKey", 5*time.Minute)

	token, err := issuer.Issue("alice", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secretKey", 5*time.Minute)

	token, err := issuer.Issue("alice", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
