package server_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardgames-server/internal/server"
)

func TestGenerateRoomCodeFormat(t *testing.T) {
	assert := assert.New(t)
	taken := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := server.GenerateRoomCode(taken)

		assert.Equal(4, len(code))

		for _, ch := range code {
			assert.True((ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9'),
				"unexpected character %q in code %s", ch, code)
		}
	}
}

func TestGenerateRoomCodeUniqueness(t *testing.T) {
	taken := make(map[string]bool)
	generated := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code := server.GenerateRoomCode(taken)

		assert.False(t, generated[code], "Code %s was generated twice", code)

		generated[code] = true
		taken[code] = true
	}

	assert.Equal(t, 1000, len(generated))
}

func TestGenerateRoomCodeAvoidsTakenCodes(t *testing.T) {
	taken := map[string]bool{
		"AAAA": true,
		"ZZ99": true,
		"TEST": true,
	}

	for i := 0; i < 100; i++ {
		code := server.GenerateRoomCode(taken)
		assert.False(t, taken[code])
	}
}

func TestValidateRoomCodeValidCodes(t *testing.T) {
	validCodes := []string{"BEAR", "GAME", "A1B2", "0000", "zz99"}

	for _, code := range validCodes {
		err := server.ValidateRoomCode(code)
		assert.NoError(t, err, "Code %s should be valid", code)
	}
}

func TestValidateRoomCodeInvalidLength(t *testing.T) {
	invalidCodes := []string{"", "A", "AB", "ABC", "ABCDE"}

	for _, code := range invalidCodes {
		err := server.ValidateRoomCode(code)
		assert.Error(t, err, "Code %s should be invalid (wrong length)", code)
		assert.Contains(t, err.Error(), "exactly 4 characters")
	}
}

func TestValidateRoomCodeInvalidCharacters(t *testing.T) {
	invalidCodes := []string{"A-B!", "T@ST", "A BC", " ABC"}

	for _, code := range invalidCodes {
		err := server.ValidateRoomCode(code)
		assert.Error(t, err, "Code %s should be invalid (bad characters)", code)
		assert.Contains(t, err.Error(), "only letters and digits")
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	assert.Equal(t, "AB12", server.NormalizeRoomCode("ab12"))
	assert.Equal(t, strings.ToUpper("wxyz"), server.NormalizeRoomCode("wxyz"))
}
