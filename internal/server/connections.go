package server

import (
	"sync"

	"github.com/coder/websocket"
)

// ConnectionManager tracks every open websocket. A connection is "open"
// exactly while it is registered here; delivery checks that before writing,
// which is what makes sends to departed players a silent no-op.
type ConnectionManager struct {
	connections map[string]*websocket.Conn // connectionID -> socket
	ids         map[*websocket.Conn]string // socket -> connectionID
	mu          sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		ids:         make(map[*websocket.Conn]string),
	}
}

func (cm *ConnectionManager) Add(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.connections[id] = conn
	cm.ids[conn] = id
}

func (cm *ConnectionManager) Remove(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if conn, exists := cm.connections[id]; exists {
		delete(cm.ids, conn)
	}
	delete(cm.connections, id)
}

// IsOpen reports whether the connection is still registered. Nil (a bot's
// connection handle) is never open.
func (cm *ConnectionManager) IsOpen(conn *websocket.Conn) bool {
	if conn == nil {
		return false
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	_, exists := cm.ids[conn]
	return exists
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// All returns the currently open sockets, for shutdown.
func (cm *ConnectionManager) All() []*websocket.Conn {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(cm.connections))
	for _, conn := range cm.connections {
		conns = append(conns, conn)
	}
	return conns
}
