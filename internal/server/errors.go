package server

import "errors"

// Protocol errors reported to the offending connection as an error message.
// None of these is ever fatal to the session or the process.
var (
	ErrRoomNotFound       = errors.New("ROOM_NOT_FOUND: no room with that code")
	ErrRoomAlreadyStarted = errors.New("GAME_ALREADY_STARTED: cannot join a game in progress")
	ErrRoomFull           = errors.New("ROOM_FULL: room is full")
	ErrNoRoom             = errors.New("NO_ROOM: you are not in a room")
	ErrNotHost            = errors.New("NOT_HOST: only the host can start the game")
	ErrNotEnoughPlayers   = errors.New("NOT_ENOUGH_PLAYERS: need at least 2 players to start")
)
