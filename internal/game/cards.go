package game

import (
	"fmt"
	"math/rand"
	"slices"
)

// Rank and suit encodings are a wire contract with clients:
// rank 0 = "3" ... rank 12 = "2", suit 0 = Spades.
const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits
)

var rankString = [NumRanks]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}
var suitString = [NumSuits]string{"♠", "♣", "♦", "♥"}

// Card is an immutable (rank, suit) pair, serialized as {r, s}.
type Card struct {
	Rank int `json:"r"`
	Suit int `json:"s"`
}

// ThreeOfSpades opens every Tien Len game.
var ThreeOfSpades = Card{Rank: 0, Suit: 0}

// Order is the total order used for sorting hands and locating cards.
func (c Card) Order() int {
	return c.Rank*NumSuits + c.Suit
}

func (c Card) String() string {
	if c.Rank < 0 || c.Rank >= NumRanks || c.Suit < 0 || c.Suit >= NumSuits {
		return fmt.Sprintf("Card(%d,%d)", c.Rank, c.Suit)
	}
	return rankString[c.Rank] + suitString[c.Suit]
}

// NewDeck builds the canonical ordered 52-card sequence, one of each
// (rank, suit) pair, no jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := 0; s < NumSuits; s++ {
		for r := 0; r < NumRanks; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle returns a Fisher-Yates shuffled copy. The input is never mutated.
func Shuffle(cards []Card) []Card {
	shuffled := slices.Clone(cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// FreshDeck returns an independently shuffled full deck.
func FreshDeck() []Card {
	return Shuffle(NewDeck())
}
