package showdown

import (
	"errors"
	"fmt"

	"github.com/lox/pokereval/poker"
)

var (
	// ErrDuplicateCard is returned by CheckDistinct when a card appears twice
	// across the hole cards and board.
	ErrDuplicateCard = errors.New("showdown: duplicate card")

	// ErrInvalidCard is returned by CheckDistinct for a value that is not one
	// of the 52 card encodings.
	ErrInvalidCard = errors.New("showdown: invalid card")
)

// CheckDistinct verifies that every card is a real card and that no card is
// used twice. Evaluate does not call it; callers that cannot guarantee a
// well-formed deal should.
func CheckDistinct(holes [][2]poker.Card, board [5]poker.Card) error {
	var seen poker.CardSet
	check := func(c poker.Card, where string) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %#x at %s", ErrInvalidCard, uint32(c), where)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: %s at %s", ErrDuplicateCard, c, where)
		}
		seen.Add(c)
		return nil
	}

	for i, c := range board {
		if err := check(c, fmt.Sprintf("board %d", i)); err != nil {
			return err
		}
	}
	for seat, hole := range holes {
		for i, c := range hole {
			if err := check(c, fmt.Sprintf("seat %d hole %d", seat, i)); err != nil {
				return err
			}
		}
	}
	return nil
}
