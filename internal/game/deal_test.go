package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardgames-server/internal/game"
)

func TestDealTienLenHandSizes(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 50; i++ {
		deal := game.DealTienLen()
		for seat, hand := range deal.Hands {
			assert.Equal(game.DeckSize/game.TienLenSeats, len(hand), "seat %d", seat)
		}
	}
}

func TestDealTienLenCoversFullDeck(t *testing.T) {
	deal := game.DealTienLen()

	seen := make(map[game.Card]int)
	for _, hand := range deal.Hands {
		for _, card := range hand {
			seen[card]++
		}
	}

	assert.Equal(t, game.DeckSize, len(seen))
	for card, count := range seen {
		assert.Equal(t, 1, count, "card %s dealt %d times", card, count)
	}
}

func TestDealTienLenHandsSorted(t *testing.T) {
	for i := 0; i < 20; i++ {
		deal := game.DealTienLen()
		for seat, hand := range deal.Hands {
			for i := 1; i < len(hand); i++ {
				assert.Less(t, hand[i-1].Order(), hand[i].Order(),
					"seat %d hand not ascending at index %d", seat, i)
			}
		}
	}
}

func TestDealTienLenFirstTurnHoldsThreeOfSpades(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 50; i++ {
		deal := game.DealTienLen()

		assert.GreaterOrEqual(deal.FirstTurn, 0)
		assert.Less(deal.FirstTurn, game.TienLenSeats)

		holders := 0
		for seat, hand := range deal.Hands {
			for _, card := range hand {
				if card == game.ThreeOfSpades {
					holders++
					assert.Equal(seat, deal.FirstTurn, "first turn must point at the 3♠ holder")
				}
			}
		}
		assert.Equal(1, holders, "3♠ must appear in exactly one hand")
	}
}

func TestDealXiDachDrawsFourDistinctCards(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 50; i++ {
		deal := game.DealXiDach()

		drawn := map[game.Card]bool{
			deal.Player[0]: true,
			deal.Player[1]: true,
			deal.Dealer[0]: true,
			deal.Dealer[1]: true,
		}
		assert.Equal(4, len(drawn), "player and dealer cards must all be distinct")
	}
}
