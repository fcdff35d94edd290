package poker

// HandRank represents the strength of a 5-card poker hand. Scores run from 1
// (royal flush) to 7462 (7-5-4-3-2 offsuit); lower values are stronger and
// equal values tie.
type HandRank uint16

// InvalidRank is produced only for inputs that repeat a card in a way no real
// hand can, e.g. five aces.
const InvalidRank HandRank = 0

// WorstRank is the weakest valid score.
const WorstRank = HandRank(HandClasses)

// HandType enumerates the categories of poker hands ordered from strongest to weakest.
type HandType uint8

const (
	InvalidHand HandType = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// HandTypes lists the valid categories strongest first.
var HandTypes = [...]HandType{
	StraightFlush, FourOfAKind, FullHouse, Flush, Straight,
	ThreeOfAKind, TwoPair, Pair, HighCard,
}

// handTypeBoundaries mark the exclusive upper bound for each category in descending strength order.
var handTypeBoundaries = [...]HandRank{
	HandRank(baseFourOfAKind),
	HandRank(baseFullHouse),
	HandRank(baseFlush),
	HandRank(baseStraight),
	HandRank(baseThreeOfAKind),
	HandRank(baseTwoPair),
	HandRank(baseOnePair),
	HandRank(baseHighCard),
	HandRank(baseHighCard + highCardCount),
}

// Type returns the type of hand (pair, flush, etc.).
func (hr HandRank) Type() HandType {
	switch {
	case hr == InvalidRank:
		return InvalidHand
	case hr < handTypeBoundaries[0]:
		return StraightFlush
	case hr < handTypeBoundaries[1]:
		return FourOfAKind
	case hr < handTypeBoundaries[2]:
		return FullHouse
	case hr < handTypeBoundaries[3]:
		return Flush
	case hr < handTypeBoundaries[4]:
		return Straight
	case hr < handTypeBoundaries[5]:
		return ThreeOfAKind
	case hr < handTypeBoundaries[6]:
		return TwoPair
	case hr < handTypeBoundaries[7]:
		return Pair
	case hr < handTypeBoundaries[8]:
		return HighCard
	default:
		return InvalidHand
	}
}

// Valid reports whether hr is inside [1, WorstRank].
func (hr HandRank) Valid() bool {
	return hr >= 1 && hr <= WorstRank
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	return hr.Type().String()
}

// Range returns the inclusive score range of a category.
func (ht HandType) Range() (best, worst HandRank) {
	if ht == InvalidHand || ht > HighCard {
		return InvalidRank, InvalidRank
	}
	best = 1
	if ht > StraightFlush {
		best = handTypeBoundaries[ht-2]
	}
	return best, handTypeBoundaries[ht-1] - 1
}

func (ht HandType) String() string {
	switch ht {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Eval5 scores five cards. The result does not depend on argument order.
func (t *Tables) Eval5(c0, c1, c2, c3, c4 Card) HandRank {
	pattern := uint16((c0 | c1 | c2 | c3 | c4) >> rankBitOff)
	if c0&c1&c2&c3&c4&suitBits != 0 {
		return t.flush[pattern]
	}
	if r := t.unique[pattern]; r != InvalidRank {
		return r
	}
	return t.paired.lookup(c0.Prime() * c1.Prime() * c2.Prime() * c3.Prime() * c4.Prime())
}

// Evaluate5 scores a 5-card array.
func (t *Tables) Evaluate5(cards [5]Card) HandRank {
	return t.Eval5(cards[0], cards[1], cards[2], cards[3], cards[4])
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}
