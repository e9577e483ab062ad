package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poweracademy/academy-server/internal/model"
)

func TestManagerStartsClosed(t *testing.T) {
	m := NewManager()

	for _, kind := range model.Kinds {
		s := m.Current(kind)
		require.False(t, s.Open)
		require.Nil(t, s.Target)
	}
}

func TestOpenCreateIntent(t *testing.T) {
	m := NewManager()
	m.OpenCreate(model.KindCoaches)

	intent, open := m.Current(model.KindCoaches).Intent()
	require.True(t, open)
	require.False(t, intent.Update)
}

func TestOpenEditIntent(t *testing.T) {
	m := NewManager()
	m.OpenEdit(model.KindPlayers, 42)

	intent, open := m.Current(model.KindPlayers).Intent()
	require.True(t, open)
	require.True(t, intent.Update)
	require.Equal(t, int64(42), intent.TargetID)
}

func TestSessionsAreIndependentPerKind(t *testing.T) {
	m := NewManager()
	m.OpenEdit(model.KindCoaches, 7)

	require.True(t, m.Current(model.KindCoaches).Open)
	require.False(t, m.Current(model.KindPlayers).Open)
}

func TestOpenCreateClearsPreviousTarget(t *testing.T) {
	m := NewManager()
	m.OpenEdit(model.KindVideos, 9)
	m.OpenCreate(model.KindVideos)

	intent, open := m.Current(model.KindVideos).Intent()
	require.True(t, open)
	require.False(t, intent.Update)
}

func TestCloseResetsSession(t *testing.T) {
	m := NewManager()
	m.OpenEdit(model.KindMatches, 3)
	m.Close(model.KindMatches)

	_, open := m.Current(model.KindMatches).Intent()
	require.False(t, open)
}

func TestClosedSessionHasNoIntent(t *testing.T) {
	_, open := Session{}.Intent()
	require.False(t, open)
}
