package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pokereval/poker"
)

// cardIDSeparator separates reference-deck identifiers in a stored ordering.
const cardIDSeparator = "|"

var (
	// ErrEmptyCardIDs is returned when decoding an ordering with no identifiers.
	ErrEmptyCardIDs = errors.New("card ids cannot be empty")

	// ErrInvalidCardID is returned for an identifier outside 1..52.
	ErrInvalidCardID = errors.New("invalid card id")

	// ErrRepeatedCardID is returned when an ordering uses a card twice.
	ErrRepeatedCardID = errors.New("repeated card id")
)

// EncodeCardIDs serializes a card ordering as pipe-delimited reference-deck
// identifiers, e.g. "6|27|12".
func EncodeCardIDs(cards []poker.Card) string {
	var b strings.Builder
	b.Grow(len(cards) * 3)
	for i, c := range cards {
		if i > 0 {
			b.WriteString(cardIDSeparator)
		}
		b.WriteString(strconv.Itoa(c.ID()))
	}
	return b.String()
}

// DecodeCardIDs restores an ordering written by EncodeCardIDs. Empty
// segments are skipped.
func DecodeCardIDs(s string) ([]poker.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyCardIDs
	}

	parts := strings.Split(s, cardIDSeparator)
	cards := make([]poker.Card, 0, len(parts))
	var seen poker.CardSet
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCardID, part)
		}
		card, err := poker.CardFromID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCardID, id)
		}
		if seen.Has(card) {
			return nil, fmt.Errorf("%w: %d (%s)", ErrRepeatedCardID, id, card)
		}
		seen.Add(card)
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, ErrEmptyCardIDs
	}
	return cards, nil
}
