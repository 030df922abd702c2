package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/coder/websocket"

	"cardgames-server/internal/game"
)

// session is the per-connection record: the socket plus the code of the room
// it currently occupies. A connection belongs to at most one room at a time;
// roomCode is empty while it is in none.
type session struct {
	id       string
	conn     *websocket.Conn
	roomCode string
}

func (s *Server) handlePing(ctx context.Context, sess *session) {
	s.unicast(ctx, sess.conn, PongMessage{Type: "pong"})
}

func (s *Server) handleCreate(ctx context.Context, sess *session, msg ClientMessage) {
	variant := ParseVariant(msg.Game)
	view := s.roomManager.CreateRoom(sess.conn, msg.Name, variant)
	sess.roomCode = view.Code

	log.Printf("Connection %s created room %s (%s)", sess.id, view.Code, view.Variant)

	s.unicast(ctx, sess.conn, CreatedMessage{
		Type:       "created",
		Code:       view.Code,
		MaxPlayers: view.MaxPlayers,
	})
	s.broadcast(view, newPlayersMessage(view))
}

func (s *Server) handleJoin(ctx context.Context, sess *session, msg ClientMessage) {
	view, err := s.roomManager.JoinRoom(sess.conn, msg.Code, msg.Name)
	if err != nil {
		s.sendError(ctx, sess.conn, err.Error())
		return
	}
	sess.roomCode = view.Code

	log.Printf("Connection %s joined room %s (%d/%d)", sess.id, view.Code, len(view.Players), view.MaxPlayers)

	s.unicast(ctx, sess.conn, JoinedMessage{Type: "joined", Code: view.Code})
	s.broadcast(view, newPlayersMessage(view))
}

func (s *Server) handleStart(ctx context.Context, sess *session) {
	view, outcome, err := s.roomManager.StartRoom(sess.conn, sess.roomCode)
	if err != nil {
		s.sendError(ctx, sess.conn, err.Error())
		return
	}
	if outcome == OutcomeIgnored {
		return
	}

	log.Printf("Room %s started (%s, %d seats)", view.Code, view.Variant, len(view.Players))

	switch view.Variant {
	case VariantXiDach:
		deal := game.DealXiDach()
		s.broadcast(view, StartXiDachMessage{
			Type:   "start_xd",
			Player: deal.Player,
			Dealer: deal.Dealer,
		})

	default:
		deal := game.DealTienLen()
		// Every connected seat gets all four hands; the client shows card
		// backs for the other seats.
		for _, p := range view.Players {
			s.unicast(context.Background(), p.Conn, StartTienLenMessage{
				Type:        "start_tl",
				Hands:       deal.Hands,
				CurrentTurn: deal.FirstTurn,
				YourIndex:   p.Seat,
			})
		}
	}
}

// handleMove relays the raw payload verbatim to every other connected
// member, with the sender's seat attached as pid. The server never
// interprets the payload.
func (s *Server) handleMove(sess *session, raw []byte) {
	relay, outcome := s.roomManager.MoveTargets(sess.conn, sess.roomCode)
	if outcome == OutcomeIgnored {
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("Dropped unrelayable move from %s: %v", sess.id, err)
		return
	}
	payload["pid"] = relay.SenderSeat

	for _, target := range relay.Targets {
		s.unicast(context.Background(), target.Conn, payload)
	}
}

func (s *Server) handleLeave(sess *session) {
	res, outcome := s.roomManager.LeaveRoom(sess.conn, sess.roomCode)
	sess.roomCode = ""
	if outcome == OutcomeIgnored {
		return
	}

	if res.Removed {
		log.Printf("Room %s removed, last player left", res.Room.Code)
		return
	}

	s.broadcast(res.Room, newPlayersMessage(res.Room))
}

// handleClose runs when the transport reports disconnection. It is the same
// event as an explicit leave and is idempotent with one.
func (s *Server) handleClose(sess *session) {
	s.handleLeave(sess)
}
