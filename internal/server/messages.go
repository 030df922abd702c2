package server

import "cardgames-server/internal/game"

// Messages are flat JSON objects discriminated by a "type" field; there is
// no payload envelope. This is the wire contract clients already speak.

// ClientMessage covers the fixed fields of every inbound message kind.
// Move payloads are otherwise arbitrary and are relayed from the raw bytes.
type ClientMessage struct {
	Type string `json:"type"`
	Game string `json:"game,omitempty"` // create: "tl" | "xd"
	Name string `json:"name,omitempty"` // create/join: display name
	Code string `json:"code,omitempty"` // join: room code
}

// ============================================================================
// Outbound messages
// ============================================================================

type CreatedMessage struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	MaxPlayers int    `json:"maxPlayers"`
}

type JoinedMessage struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// PlayersMessage is the membership snapshot broadcast after every create,
// join, and non-final leave.
type PlayersMessage struct {
	Type    string   `json:"type"`
	Players []string `json:"players"`
	Count   int      `json:"count"`
	Max     int      `json:"max"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// StartTienLenMessage carries all four hands to every connected seat; the
// client renders only its own face up and shows backs for the rest.
type StartTienLenMessage struct {
	Type        string                        `json:"type"`
	Hands       [game.TienLenSeats][]game.Card `json:"hands"`
	CurrentTurn int                           `json:"currentTurn"`
	YourIndex   int                           `json:"yourIndex"`
}

// StartXiDachMessage is the shared two-hand deal, sent identically to every
// connected seat.
type StartXiDachMessage struct {
	Type   string       `json:"type"`
	Player [2]game.Card `json:"player"`
	Dealer [2]game.Card `json:"dealer"`
}

type PongMessage struct {
	Type string `json:"type"`
}

func newPlayersMessage(view RoomView) PlayersMessage {
	return PlayersMessage{
		Type:    "players",
		Players: view.Names(),
		Count:   len(view.Players),
		Max:     view.MaxPlayers,
	}
}
