package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluewear/internal/domain/user"
	"bluewear/internal/view"
)

func TestCreateAndLookup(t *testing.T) {
	st := NewStore("test-secret", time.Hour)

	sess, token, err := st.Create()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok := st.Lookup(token)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestLookupRejectsTamperedToken(t *testing.T) {
	st := NewStore("test-secret", time.Hour)
	_, token, err := st.Create()
	require.NoError(t, err)

	_, ok := st.Lookup(token + "x")
	assert.False(t, ok)

	other := NewStore("different-secret", time.Hour)
	_, otherToken, err := other.Create()
	require.NoError(t, err)
	_, ok = st.Lookup(otherToken)
	assert.False(t, ok)
}

func TestLookupExpiresSessions(t *testing.T) {
	st := NewStore("test-secret", time.Hour)
	sess, token, err := st.Create()
	require.NoError(t, err)

	sess.mu.Lock()
	sess.expiresAt = time.Now().Add(-time.Minute)
	sess.mu.Unlock()

	_, ok := st.Lookup(token)
	assert.False(t, ok)
}

func TestSessionStartsAtHomeLoggedOut(t *testing.T) {
	st := NewStore("test-secret", time.Hour)
	sess, _, err := st.Create()
	require.NoError(t, err)

	assert.Nil(t, sess.User())
	assert.Equal(t, view.Home, sess.CurrentView())
	assert.Zero(t, sess.Cart.Len())
}

func TestNavigateRecordsGuardedView(t *testing.T) {
	st := NewStore("test-secret", time.Hour)
	sess, _, err := st.Create()
	require.NoError(t, err)

	assert.Equal(t, view.Home, sess.Navigate(view.Admin))
	assert.Equal(t, view.Home, sess.CurrentView())

	sess.SetUser(user.User{Name: "Ava", Role: user.RoleAdmin})
	assert.Equal(t, view.Admin, sess.Navigate(view.Admin))
	assert.Equal(t, view.Admin, sess.CurrentView())

	sess.ClearUser()
	assert.Equal(t, view.Home, sess.Navigate(view.Admin))
}

func TestFlashIsOneShot(t *testing.T) {
	st := NewStore("test-secret", time.Hour)
	sess, _, err := st.Create()
	require.NoError(t, err)

	sess.SetFlash("Order created.")
	assert.Equal(t, "Order created.", sess.Flash())
	assert.Empty(t, sess.Flash())
}
