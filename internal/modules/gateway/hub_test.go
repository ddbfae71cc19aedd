package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHubSingleConnectionLifecycle(t *testing.T) {
	store := NewSessionStore()
	hub := NewHub(store, zap.NewNop())
	defer hub.Close()

	ident := connIdentity{SessionID: "s1", UserID: "u1", Username: "ada"}
	hub.addConnection(ident)

	assert.Equal(t, 1, hub.OnlineUsers())
	assert.Equal(t, 1, hub.ConnectionCount("u1"))
	sess, ok := store.Find("s1")
	require.True(t, ok)
	assert.True(t, sess.Connected)
	assert.Equal(t, "ada", sess.Username)

	last := hub.dropConnection(ident)
	assert.True(t, last)
	assert.Equal(t, 0, hub.OnlineUsers())
	assert.Equal(t, 0, hub.ConnectionCount("u1"))

	// the session record survives the disconnect, flipped offline
	sess, ok = store.Find("s1")
	require.True(t, ok)
	assert.False(t, sess.Connected)
	assert.Equal(t, 1, store.Len())
}

func TestHubSecondTabKeepsUserOnline(t *testing.T) {
	store := NewSessionStore()
	hub := NewHub(store, zap.NewNop())
	defer hub.Close()

	first := connIdentity{SessionID: "s1", UserID: "u1", Username: "ada"}
	second := connIdentity{SessionID: "s2", UserID: "u1", Username: "ada"}
	hub.addConnection(first)
	hub.addConnection(second)

	assert.Equal(t, 1, hub.OnlineUsers())
	assert.Equal(t, 2, hub.ConnectionCount("u1"))

	// closing one tab must not announce the user offline
	last := hub.dropConnection(first)
	assert.False(t, last)
	assert.Equal(t, 1, hub.OnlineUsers())
	assert.Equal(t, 1, hub.ConnectionCount("u1"))
	sess, ok := store.Find("s1")
	require.True(t, ok)
	assert.True(t, sess.Connected)

	// only the last connection closing flips the user offline
	last = hub.dropConnection(second)
	assert.True(t, last)
	assert.Equal(t, 0, hub.OnlineUsers())
	sess, ok = store.Find("s2")
	require.True(t, ok)
	assert.False(t, sess.Connected)
}

func TestHubDistinctUsersCountedApart(t *testing.T) {
	store := NewSessionStore()
	hub := NewHub(store, zap.NewNop())
	defer hub.Close()

	hub.addConnection(connIdentity{SessionID: "s1", UserID: "u1", Username: "ada"})
	hub.addConnection(connIdentity{SessionID: "s2", UserID: "u2", Username: "grace"})

	assert.Equal(t, 2, hub.OnlineUsers())
	assert.Equal(t, 1, hub.ConnectionCount("u1"))
	assert.Equal(t, 0, hub.ConnectionCount("ghost"))

	assert.True(t, hub.dropConnection(connIdentity{SessionID: "s2", UserID: "u2", Username: "grace"}))
	assert.Equal(t, 1, hub.OnlineUsers())
}

func TestHubHandlerServes(t *testing.T) {
	hub := NewHub(NewSessionStore(), zap.NewNop())
	defer hub.Close()

	assert.NotNil(t, hub.Handler())
}
