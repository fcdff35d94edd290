package poker

import (
	"math/rand"
)

// ReferenceDeck returns the 52 cards ordered by reference-deck identifier
// (index i holds the card with ID i+1).
func ReferenceDeck() [52]Card {
	var cards [52]Card
	for id := 1; id <= 52; id++ {
		cards[id-1], _ = CardFromID(id)
	}
	return cards
}

// Deck is a shuffled ordering of the reference deck with a deal cursor.
// It is not safe for concurrent use; give each worker its own.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a deck shuffled with rng. A nil rng falls back to the
// package-level source, which makes the ordering non-reproducible.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: ReferenceDeck(), rng: rng}
	d.Shuffle()
	return d
}

// Shuffle permutes all 52 cards in place (Fisher-Yates) and rewinds the
// cursor. Cards already dealt are returned to the deck.
func (d *Deck) Shuffle() {
	intn := rand.Intn
	if d.rng != nil {
		intn = d.rng.Intn
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.next = 0
}

// Order returns a copy of the whole ordering, dealt cards included.
func (d *Deck) Order() []Card {
	return append([]Card(nil), d.cards[:]...)
}

// Deal returns the next n cards, or nil if fewer than n remain. The slice
// aliases the deck and is only valid until the next Shuffle.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > d.Remaining() {
		return nil
	}
	cards := d.cards[d.next : d.next+n : d.next+n]
	d.next += n
	return cards
}

// Remaining reports how many cards are left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
