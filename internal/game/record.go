// Package game stores dealt hands as compact records and lays a stored card
// ordering out into seats and a board for the showdown evaluator.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

// Record is a persisted deal: the full shuffled ordering plus who dealt it.
type Record struct {
	GameID   uuid.UUID
	DealerID int
	CardIDs  string
}

// NewRecord captures an ordering under a fresh id.
func NewRecord(ids *IDGenerator, dealer int, order []poker.Card) (*Record, error) {
	if len(order) == 0 {
		return nil, ErrEmptyCardIDs
	}
	id, err := ids.Generate()
	if err != nil {
		return nil, err
	}
	return &Record{
		GameID:   id,
		DealerID: dealer,
		CardIDs:  EncodeCardIDs(order),
	}, nil
}

// Cards decodes the stored ordering.
func (r *Record) Cards() ([]poker.Card, error) {
	cards, err := DecodeCardIDs(r.CardIDs)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", r.GameID, err)
	}
	return cards, nil
}

// Deal restores the ordering and lays it out for players seats.
func (r *Record) Deal(players int) (showdown.Deal, error) {
	cards, err := r.Cards()
	if err != nil {
		return showdown.Deal{}, err
	}
	deal, err := Layout(cards, players)
	if err != nil {
		return showdown.Deal{}, fmt.Errorf("game %s: %w", r.GameID, err)
	}
	return deal, nil
}
