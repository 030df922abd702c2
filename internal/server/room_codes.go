package server

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	roomCodeLength   = 4
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateRoomCode returns a random 4-character uppercase alphanumeric code
// not present in taken, retrying generation until it finds one.
func GenerateRoomCode(taken map[string]bool) string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
		}
		roomCode := string(code)

		if !taken[roomCode] {
			return roomCode
		}
	}
}

// ValidateRoomCode checks the wire format: exactly 4 characters, uppercase
// letters or digits after normalization.
func ValidateRoomCode(code string) error {
	if len(code) != roomCodeLength {
		return errors.New("room code must be exactly 4 characters")
	}

	code = NormalizeRoomCode(code)
	for _, ch := range code {
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') {
			return errors.New("room code must contain only letters and digits")
		}
	}

	return nil
}

// NormalizeRoomCode upper-cases a code; lookups are case-insensitive.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(code)
}
