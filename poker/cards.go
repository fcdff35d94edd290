package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is a packed 32-bit card encoding:
//
//	xxxbbbbb bbbbbbbb sssskkkk pppppppp
//
// p = prime for the rank, k = rank index (0-12), s = one-hot suit,
// b = rank bit at position 16+rank.
type Card uint32

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// Suit constants. The one-hot mask stored in a Card is 1 << suit.
const (
	Spades   uint8 = 0
	Hearts   uint8 = 1
	Diamonds uint8 = 2
	Clubs    uint8 = 3
)

const (
	primeMask  = 0xFF
	suitBits   = 0xF000
	rankShift  = 8
	suitShift  = 12
	rankBitOff = 16
)

var rankPrimes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// NewCard encodes a rank and suit. It panics on values outside the 52-card
// domain so a bad encoding never reaches the evaluator.
func NewCard(rank, suit uint8) Card {
	if rank > Ace || suit > Clubs {
		panic(fmt.Sprintf("poker: invalid card rank=%d suit=%d", rank, suit))
	}
	return Card(uint32(1)<<(rankBitOff+uint32(rank)) |
		uint32(1)<<(suitShift+uint32(suit)) |
		uint32(rank)<<rankShift |
		rankPrimes[rank])
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	return uint8(c>>rankShift) & 0xF
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	return uint8(bits.TrailingZeros32(uint32(c&suitBits) >> suitShift))
}

// Prime returns the rank prime stored in the low byte.
func (c Card) Prime() uint32 {
	return uint32(c) & primeMask
}

// RankBit returns the 13-bit rank pattern contribution of the card.
func (c Card) RankBit() uint16 {
	return uint16(c >> rankBitOff)
}

// Index returns a dense index in [0,52).
func (c Card) Index() int {
	return int(c.Rank())*4 + int(c.Suit())
}

// Valid reports whether c is one of the 52 encodings produced by NewCard.
func (c Card) Valid() bool {
	if c == 0 {
		return false
	}
	rank := c.Rank()
	if rank > Ace || bits.OnesCount32(uint32(c&suitBits)) != 1 {
		return false
	}
	return c == NewCard(rank, c.Suit())
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ID returns the reference-deck identifier (1-52). Identifiers run
// A♠ A♥ A♦ A♣ 2♠ ... K♣.
func (c Card) ID() int {
	face := (int(c.Rank()) + 1) % 13
	return face*4 + int(c.Suit()) + 1
}

// CardFromID returns the card with the given reference-deck identifier.
func CardFromID(id int) (Card, error) {
	if id < 1 || id > 52 {
		return 0, fmt.Errorf("invalid card id: %d", id)
	}
	face := (id - 1) / 4
	suit := uint8((id - 1) % 4)
	rank := uint8((face + 12) % 13)
	return NewCard(rank, suit), nil
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	var rank uint8
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit uint8
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses concatenated card notation such as "AsKsQsJsTs".
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests and fixtures)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// CardSet is a bitset over the 52 cards keyed by Card.Index.
type CardSet uint64

// NewCardSet creates a set from multiple cards
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

// Add adds a card to the set
func (s *CardSet) Add(c Card) {
	*s |= 1 << c.Index()
}

// Has checks if the set contains a specific card
func (s CardSet) Has(c Card) bool {
	return s&(1<<c.Index()) != 0
}

// Count returns the number of cards in the set
func (s CardSet) Count() int {
	return bits.OnesCount64(uint64(s))
}
