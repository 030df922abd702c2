package server

import (
	"testing"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
)

func TestConnectionManager_AddAndIsOpen(t *testing.T) {
	assert := assert.New(t)
	cm := NewConnectionManager()

	conn := &websocket.Conn{}
	assert.False(cm.IsOpen(conn), "unregistered connection is not open")

	cm.Add("conn-1", conn)
	assert.True(cm.IsOpen(conn))
	assert.Equal(1, cm.Count())
}

func TestConnectionManager_RemoveClosesCapability(t *testing.T) {
	assert := assert.New(t)
	cm := NewConnectionManager()

	conn := &websocket.Conn{}
	cm.Add("conn-1", conn)
	cm.Remove("conn-1")

	assert.False(cm.IsOpen(conn))
	assert.Equal(0, cm.Count())

	// Removing an unknown ID is a no-op.
	cm.Remove("conn-1")
	assert.Equal(0, cm.Count())
}

func TestConnectionManager_NilIsNeverOpen(t *testing.T) {
	cm := NewConnectionManager()
	assert.False(t, cm.IsOpen(nil), "a bot's nil connection must never be open")
}

func TestConnectionManager_All(t *testing.T) {
	assert := assert.New(t)
	cm := NewConnectionManager()

	connA := &websocket.Conn{}
	connB := &websocket.Conn{}
	cm.Add("a", connA)
	cm.Add("b", connB)

	all := cm.All()
	assert.Equal(2, len(all))
	assert.Contains(all, connA)
	assert.Contains(all, connB)
}
