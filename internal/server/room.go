package server

import (
	"time"

	"github.com/coder/websocket"
)

// Variant identifies which game a room plays, using the short wire names
// clients send in the create message.
type Variant string

const (
	VariantTienLen Variant = "tl"
	VariantXiDach  Variant = "xd"
)

// ParseVariant maps the optional create-message game field to a Variant.
// Anything other than "xd" means Tien Len, matching the wire contract.
func ParseVariant(s string) Variant {
	if s == string(VariantXiDach) {
		return VariantXiDach
	}
	return VariantTienLen
}

// MaxPlayers is the seat capacity for the variant: 4 for Tien Len (bots
// backfill short rooms at start), 2 for Xi Dach.
func (v Variant) MaxPlayers() int {
	if v == VariantXiDach {
		return 2
	}
	return 4
}

// Player is one seat in a room. A nil Conn marks a bot: bots are never sent
// messages but count as seats for relay addressing and turn order.
type Player struct {
	Name string
	Conn *websocket.Conn
	Seat int
}

// IsBot reports whether this seat is filled by a server-side bot.
func (p *Player) IsBot() bool {
	return p.Conn == nil
}

// Room is one game session. Insertion order is seat order and seat 0 is the
// host. Rooms are only ever touched under the RoomManager mutex.
type Room struct {
	Code       string
	Variant    Variant
	MaxPlayers int
	Players    []*Player
	Started    bool
	CreatedAt  time.Time
}

func (r *Room) isFull() bool {
	return len(r.Players) >= r.MaxPlayers
}

// seatOf returns the seat index of the given connection, or -1 if the
// connection is not a member of this room.
func (r *Room) seatOf(conn *websocket.Conn) int {
	for _, p := range r.Players {
		if p.Conn == conn {
			return p.Seat
		}
	}
	return -1
}

// PlayerInfo is an immutable copy of one seat, safe to read outside the
// directory lock.
type PlayerInfo struct {
	Name string
	Conn *websocket.Conn
	Seat int
}

// RoomView is a defensive snapshot of a room. Manager operations hand views
// to callers so message delivery never happens while holding the lock.
type RoomView struct {
	Code       string
	Variant    Variant
	MaxPlayers int
	Players    []PlayerInfo
	Started    bool
}

func (r *Room) view() RoomView {
	players := make([]PlayerInfo, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerInfo{Name: p.Name, Conn: p.Conn, Seat: p.Seat}
	}
	return RoomView{
		Code:       r.Code,
		Variant:    r.Variant,
		MaxPlayers: r.MaxPlayers,
		Players:    players,
		Started:    r.Started,
	}
}

// Names returns the display names in seat order, for the players snapshot
// broadcast.
func (v RoomView) Names() []string {
	names := make([]string, len(v.Players))
	for i, p := range v.Players {
		names[i] = p.Name
	}
	return names
}
