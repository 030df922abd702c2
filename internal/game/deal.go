package game

import (
	"fmt"
	"sort"
)

// TienLenSeats is fixed: short rooms are filled with bots before dealing.
const TienLenSeats = 4

// TienLenDeal is one complete Tien Len deal: 13 sorted cards per seat and
// the seat that opens play.
type TienLenDeal struct {
	Hands     [TienLenSeats][]Card `json:"hands"`
	FirstTurn int                  `json:"currentTurn"`
}

// DealTienLen shuffles a fresh deck and deals it round-robin, seat i
// receiving deck indices i, i+4, i+8, ... Each hand is sorted ascending by
// Order. FirstTurn is the seat holding the 3 of Spades, which a full deck
// contains exactly once.
func DealTienLen() TienLenDeal {
	deck := FreshDeck()

	var deal TienLenDeal
	for i, card := range deck {
		seat := i % TienLenSeats
		deal.Hands[seat] = append(deal.Hands[seat], card)
	}

	for seat := range deal.Hands {
		hand := deal.Hands[seat]
		sort.Slice(hand, func(a, b int) bool {
			return hand[a].Order() < hand[b].Order()
		})
	}

	deal.FirstTurn = -1
	for seat, hand := range deal.Hands {
		for _, card := range hand {
			if card == ThreeOfSpades {
				deal.FirstTurn = seat
			}
		}
	}
	if deal.FirstTurn == -1 {
		// A full deck always contains the 3 of Spades.
		panic(fmt.Sprintf("deal has no %s: %v", ThreeOfSpades, deal.Hands))
	}

	return deal
}

// XiDachDeal is a single shared two-hand deal: two cards for the player
// role, two for the dealer.
type XiDachDeal struct {
	Player [2]Card `json:"player"`
	Dealer [2]Card `json:"dealer"`
}

// DealXiDach draws four cards by popping from the end of a freshly shuffled
// deck: player first, then dealer. Clients render cards in arrival order, so
// the pop order is part of the contract.
func DealXiDach() XiDachDeal {
	deck := FreshDeck()
	pop := func() Card {
		card := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		return card
	}
	return XiDachDeal{
		Player: [2]Card{pop(), pop()},
		Dealer: [2]Card{pop(), pop()},
	}
}
