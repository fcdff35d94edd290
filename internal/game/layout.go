package game

import (
	"errors"
	"fmt"

	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

const (
	// DefaultPlayers is the table size of a standard deal.
	DefaultPlayers = 9

	// HoleCards is the number of private cards per player.
	HoleCards = 2

	// BoardCards is the size of the shared board.
	BoardCards = 5
)

// MaxPlayers is the most players one 52-card ordering can seat.
const MaxPlayers = (52 - BoardCards) / HoleCards

// ErrInsufficientCards is returned when an ordering is too short for the
// requested number of players.
var ErrInsufficientCards = errors.New("insufficient cards to evaluate")

// CardsNeeded returns how many cards a deal for players consumes.
func CardsNeeded(players int) int {
	return players*HoleCards + BoardCards
}

// Layout deals an ordering the way a dealer pitches cards: one card to each
// seat in turn, then a second round, then the board. Seat p holds cards[p]
// and cards[p+players]; the board is cards[2*players : 2*players+5].
func Layout(cards []poker.Card, players int) (showdown.Deal, error) {
	if players < 1 {
		return showdown.Deal{}, showdown.ErrNoPlayers
	}
	if need := CardsNeeded(players); len(cards) < need {
		return showdown.Deal{}, fmt.Errorf("%w: %d players need %d cards, have %d",
			ErrInsufficientCards, players, need, len(cards))
	}

	holes := make([][2]poker.Card, players)
	for p := range holes {
		holes[p] = [2]poker.Card{cards[p], cards[p+players]}
	}
	start := players * HoleCards
	return showdown.Deal{
		Holes: holes,
		Board: [BoardCards]poker.Card(cards[start : start+BoardCards]),
	}, nil
}
