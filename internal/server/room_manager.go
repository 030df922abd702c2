package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Outcome tags the result of handler operations that can be silently
// ignored. Failures are reported through the error return; Ignored means
// the event was a no-op (stale or racing client) and no reply is owed.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeIgnored
)

// MoveRelay is everything needed to forward a move: the sender's seat and
// the other connected members of the room.
type MoveRelay struct {
	SenderSeat int
	Targets    []PlayerInfo
}

// LeaveResult reports the room state after a departure. Removed is true when
// the last connected player left and the room was deregistered.
type LeaveResult struct {
	Room    RoomView
	Removed bool
}

// RoomManager is the process-wide room directory. Every mutation of a room
// or the directory itself is a critical section under one mutex; operations
// return snapshots so delivery happens outside the lock.
type RoomManager struct {
	rooms  map[string]*Room
	isOpen func(*websocket.Conn) bool
	mu     sync.Mutex
}

// NewRoomManager builds an empty directory. isOpen reports whether a
// connection can still be written to; it drives garbage collection.
func NewRoomManager(isOpen func(*websocket.Conn) bool) *RoomManager {
	return &RoomManager{
		rooms:  make(map[string]*Room),
		isOpen: isOpen,
	}
}

// CreateRoom sweeps stale rooms, allocates a unique code, and registers a
// new room with the creator seated as host. It cannot fail.
func (rm *RoomManager) CreateRoom(conn *websocket.Conn, name string, variant Variant) RoomView {
	if name == "" {
		name = "Host"
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.sweepLocked()

	taken := make(map[string]bool, len(rm.rooms))
	for code := range rm.rooms {
		taken[code] = true
	}
	code := GenerateRoomCode(taken)

	room := &Room{
		Code:       code,
		Variant:    variant,
		MaxPlayers: variant.MaxPlayers(),
		Players:    []*Player{{Name: name, Conn: conn, Seat: 0}},
		CreatedAt:  time.Now(),
	}
	rm.rooms[code] = room

	return room.view()
}

// JoinRoom seats a player in an existing room. The code is matched
// case-insensitively.
func (rm *RoomManager) JoinRoom(conn *websocket.Conn, code, name string) (RoomView, error) {
	code = NormalizeRoomCode(code)
	if name == "" {
		name = "Player"
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		return RoomView{}, ErrRoomNotFound
	}
	if room.Started {
		return RoomView{}, ErrRoomAlreadyStarted
	}
	if room.isFull() {
		return RoomView{}, ErrRoomFull
	}

	room.Players = append(room.Players, &Player{
		Name: name,
		Conn: conn,
		Seat: len(room.Players),
	})

	return room.view(), nil
}

// StartRoom transitions a room to started. Only the host (seat 0) may start,
// at least 2 players must be seated, and a Tien Len room is backfilled with
// bots up to capacity before the view is returned. Starting an already
// started room is ignored, not an error.
func (rm *RoomManager) StartRoom(conn *websocket.Conn, code string) (RoomView, Outcome, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if code == "" || !exists {
		return RoomView{}, OutcomeApplied, ErrNoRoom
	}
	if room.Started {
		return RoomView{}, OutcomeIgnored, nil
	}
	if room.Players[0].Conn != conn {
		return RoomView{}, OutcomeApplied, ErrNotHost
	}
	if len(room.Players) < 2 {
		return RoomView{}, OutcomeApplied, ErrNotEnoughPlayers
	}

	room.Started = true

	if room.Variant == VariantTienLen {
		for len(room.Players) < room.MaxPlayers {
			seat := len(room.Players)
			room.Players = append(room.Players, &Player{
				Name: fmt.Sprintf("Bot %d", seat),
				Seat: seat,
			})
		}
	}

	return room.view(), OutcomeApplied, nil
}

// MoveTargets resolves a relay: the sender's seat plus every other connected
// member. A caller with no room, an unknown code, or an unrecognized
// connection gets an ignored outcome, never an error.
func (rm *RoomManager) MoveTargets(conn *websocket.Conn, code string) (MoveRelay, Outcome) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if code == "" || !exists {
		return MoveRelay{}, OutcomeIgnored
	}

	seat := room.seatOf(conn)
	if seat == -1 {
		return MoveRelay{}, OutcomeIgnored
	}

	relay := MoveRelay{SenderSeat: seat}
	for _, p := range room.Players {
		if p.Conn != nil && p.Conn != conn {
			relay.Targets = append(relay.Targets, PlayerInfo{Name: p.Name, Conn: p.Conn, Seat: p.Seat})
		}
	}

	return relay, OutcomeApplied
}

// LeaveRoom removes the caller from its room and deregisters the room the
// instant its last connected player is gone. Explicit leave and connection
// close both land here, so a second call for the same connection is an
// ignored no-op.
func (rm *RoomManager) LeaveRoom(conn *websocket.Conn, code string) (LeaveResult, Outcome) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if code == "" || !exists {
		return LeaveResult{}, OutcomeIgnored
	}

	kept := room.Players[:0]
	for _, p := range room.Players {
		if p.Conn != conn {
			kept = append(kept, p)
		}
	}
	room.Players = kept
	reindexSeats(room.Players)

	if rm.connectedCountLocked(room) == 0 {
		delete(rm.rooms, code)
		return LeaveResult{Room: room.view(), Removed: true}, OutcomeApplied
	}

	return LeaveResult{Room: room.view()}, OutcomeApplied
}

// Lookup returns a snapshot of the room registered under code, if any.
func (rm *RoomManager) Lookup(code string) (RoomView, bool) {
	code = NormalizeRoomCode(code)

	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		return RoomView{}, false
	}
	return room.view(), true
}

// RoomCount reports the number of registered rooms, for the health endpoint.
func (rm *RoomManager) RoomCount() int {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return len(rm.rooms)
}

// sweepLocked is the lazy backstop for rooms abandoned by ungraceful
// disconnects: rooms with no open-connection players are dropped, and
// surviving rooms are pruned down to their live members.
func (rm *RoomManager) sweepLocked() {
	for code, room := range rm.rooms {
		alive := room.Players[:0]
		for _, p := range room.Players {
			if p.Conn != nil && rm.isOpen(p.Conn) {
				alive = append(alive, p)
			}
		}
		if len(alive) == 0 {
			delete(rm.rooms, code)
			continue
		}
		room.Players = alive
		reindexSeats(room.Players)
	}
}

func (rm *RoomManager) connectedCountLocked(room *Room) int {
	count := 0
	for _, p := range room.Players {
		if p.Conn != nil && rm.isOpen(p.Conn) {
			count++
		}
	}
	return count
}

// Seats are positional: departures compact the order and re-seat everyone,
// so seat 0 is always the current host.
func reindexSeats(players []*Player) {
	for i, p := range players {
		p.Seat = i
	}
}
