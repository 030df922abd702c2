package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/coder/websocket"
)

// Delivery is at-most-once and best-effort: a connection that is no longer
// open is skipped, a failed write is logged and forgotten. Nothing is
// queued or retried.

// unicast serializes and sends one message if the connection is still open.
// Never an error to the caller.
func (s *Server) unicast(ctx context.Context, conn *websocket.Conn, msg any) {
	if !s.connectionManager.IsOpen(conn) {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Marshal error for outbound message: %v", err)
		return
	}

	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		log.Printf("Dropped outbound message: %v", err)
	}
}

// broadcast unicasts to every member of the room view. Bots carry a nil
// connection and are skipped by the open check.
func (s *Server) broadcast(view RoomView, msg any) {
	for _, p := range view.Players {
		s.unicast(context.Background(), p.Conn, msg)
	}
}

func (s *Server) sendError(ctx context.Context, conn *websocket.Conn, message string) {
	s.unicast(ctx, conn, ErrorMessage{Type: "error", Message: message})
}
