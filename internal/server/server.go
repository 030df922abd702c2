package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/coder/websocket"
	_ "github.com/joho/godotenv/autoload"
)

const defaultPort = 8080

type Server struct {
	port              int
	connectionManager *ConnectionManager
	roomManager       *RoomManager
	rateLimiter       *RateLimiter
}

// NewServer wires the managers together and returns both the custom server
// (for shutdown) and the configured HTTP server.
func NewServer() (*Server, *http.Server) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = defaultPort
	}

	connectionManager := NewConnectionManager()

	s := &Server{
		port:              port,
		connectionManager: connectionManager,
		roomManager:       NewRoomManager(connectionManager.IsOpen),
		rateLimiter:       NewRateLimiter(20, time.Second),
	}

	go s.maintenanceTask()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s, httpServer
}

// Shutdown closes every open websocket so clients see a clean going-away
// instead of a dropped TCP connection.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, conn := range s.connectionManager.All() {
		_ = conn.Close(websocket.StatusGoingAway, "Server shutting down")
	}
	return ctx.Err()
}

// maintenanceTask prunes rate limiter entries left behind by connections
// that never hit the close path.
func (s *Server) maintenanceTask() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.rateLimiter.Cleanup()
	}
}
