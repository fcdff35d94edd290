package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"sync"

	"github.com/opencoff/go-chd"
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277

	// HandClasses is the number of distinct 5-card hand classes.
	HandClasses = straightFlushCount + fourOfAKindCount + fullHouseCount +
		flushCount + straightCount + threeOfAKindCount + twoPairCount +
		onePairCount + highCardCount

	pairedClasses = fourOfAKindCount + fullHouseCount + threeOfAKindCount +
		twoPairCount + onePairCount
)

// First score of each category. Scores start at 1 for a royal flush.
const (
	baseStraightFlush = 1
	baseFourOfAKind   = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourOfAKind + fourOfAKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseThreeOfAKind  = baseStraight + straightCount
	baseTwoPair       = baseThreeOfAKind + threeOfAKindCount
	baseOnePair       = baseTwoPair + twoPairCount
	baseHighCard      = baseOnePair + onePairCount
)

// CHD load factor used when freezing the product hash.
const chdLoad = 0.9

// chdAttempts bounds how many fresh salts Freeze gets before construction fails.
const chdAttempts = 8

var (
	// ErrTableInconsistent is returned when table construction produces an
	// inconsistent mapping. The process must not evaluate with such tables.
	ErrTableInconsistent = errors.New("poker: inconsistent lookup tables")
)

// straightMasks lists the ten straight rank patterns from ace-high down to the wheel.
var straightMasks = [straightFlushCount]uint16{
	0x1F00, 0x0F80, 0x07C0, 0x03E0, 0x01F0,
	0x00F8, 0x007C, 0x003E, 0x001F, 0x100F,
}

// Tables is the immutable lookup bundle used by the evaluator. It is safe
// for concurrent use once NewTables returns.
type Tables struct {
	flush  [1 << 13]HandRank
	unique [1 << 13]HandRank
	paired productHash
}

// productHash maps prime products of paired hands to scores through a
// minimal perfect hash. keys and ranks are parallel and indexed by slot.
type productHash struct {
	mph   *chd.Chd
	keys  []uint32
	ranks []HandRank
}

// lookup returns InvalidRank for products no real hand can produce, which
// only happens when the same card is passed more than once.
func (h *productHash) lookup(product uint32) HandRank {
	slot := h.mph.Find(uint64(product))
	if slot >= uint64(len(h.keys)) || h.keys[slot] != product {
		return InvalidRank
	}
	return h.ranks[slot]
}

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := NewTables()
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTables returns the process-wide tables, building them on first use.
// It panics if construction fails.
func DefaultTables() *Tables {
	return defaultTables()
}

// NewTables builds and verifies all lookup tables.
func NewTables() (*Tables, error) {
	t := &Tables{}
	b := newTableBuilder()

	distinct := distinctRankPatterns()
	for i, mask := range straightMasks {
		if err := b.assign(t.flush[:], mask, HandRank(baseStraightFlush+i)); err != nil {
			return nil, err
		}
		if err := b.assign(t.unique[:], mask, HandRank(baseStraight+i)); err != nil {
			return nil, err
		}
	}
	for i, mask := range distinct {
		if err := b.assign(t.flush[:], mask, HandRank(baseFlush+i)); err != nil {
			return nil, err
		}
		if err := b.assign(t.unique[:], mask, HandRank(baseHighCard+i)); err != nil {
			return nil, err
		}
	}

	products := pairedProducts()
	if len(products) != pairedClasses {
		return nil, fmt.Errorf("%w: %d paired products, want %d", ErrTableInconsistent, len(products), pairedClasses)
	}
	seen := make(map[uint32]HandRank, len(products))
	for i, p := range products {
		score := HandRank(baseFourOfAKind + i)
		if i >= fourOfAKindCount+fullHouseCount {
			// Flushes and straights sit between full houses and trips.
			score += flushCount + straightCount
		}
		if prev, ok := seen[p]; ok && prev != score {
			return nil, fmt.Errorf("%w: product %d maps to %d and %d", ErrTableInconsistent, p, prev, score)
		}
		seen[p] = score
		if err := b.mark(score); err != nil {
			return nil, err
		}
	}

	paired, err := buildProductHash(seen)
	if err != nil {
		return nil, err
	}
	t.paired = paired

	if err := b.complete(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTables is like NewTables but panics on error.
func MustNewTables() *Tables {
	t, err := NewTables()
	if err != nil {
		panic(err)
	}
	return t
}

// tableBuilder tracks which scores have been handed out so construction can
// prove the score mapping is a bijection onto [1, HandClasses].
type tableBuilder struct {
	used [HandClasses + 1]bool
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{}
}

func (b *tableBuilder) mark(score HandRank) error {
	if score < 1 || int(score) > HandClasses {
		return fmt.Errorf("%w: score %d out of range", ErrTableInconsistent, score)
	}
	if b.used[score] {
		return fmt.Errorf("%w: score %d assigned twice", ErrTableInconsistent, score)
	}
	b.used[score] = true
	return nil
}

func (b *tableBuilder) assign(table []HandRank, mask uint16, score HandRank) error {
	if prev := table[mask]; prev != 0 && prev != score {
		return fmt.Errorf("%w: pattern %013b maps to %d and %d", ErrTableInconsistent, mask, prev, score)
	}
	table[mask] = score
	return b.mark(score)
}

func (b *tableBuilder) complete() error {
	for score := 1; score <= HandClasses; score++ {
		if !b.used[score] {
			return fmt.Errorf("%w: score %d unassigned", ErrTableInconsistent, score)
		}
	}
	return nil
}

// distinctRankPatterns returns every 5-of-13 rank pattern that is not a
// straight, strongest first. For five distinct ranks the numeric order of the
// bit pattern equals the high-card order of the hand.
func distinctRankPatterns() []uint16 {
	patterns := make([]uint16, 0, flushCount)
	for mask := uint16(0x1F00); mask >= 0x1F; mask-- {
		if bits.OnesCount16(mask) != 5 || isStraightMask(mask) {
			continue
		}
		patterns = append(patterns, mask)
	}
	return patterns
}

func isStraightMask(mask uint16) bool {
	for _, s := range straightMasks {
		if mask == s {
			return true
		}
	}
	return false
}

// pairedProducts returns the prime products of all hands with a repeated
// rank in strength order: quads, full houses, trips, two pair, one pair.
func pairedProducts() []uint32 {
	products := make([]uint32, 0, pairedClasses)
	p := func(r int) uint32 { return rankPrimes[r] }

	// Four of a kind: quad rank, then kicker.
	for q := 12; q >= 0; q-- {
		for k := 12; k >= 0; k-- {
			if k != q {
				products = append(products, p(q)*p(q)*p(q)*p(q)*p(k))
			}
		}
	}
	// Full house: trip rank, then pair rank.
	for tr := 12; tr >= 0; tr-- {
		for pr := 12; pr >= 0; pr-- {
			if pr != tr {
				products = append(products, p(tr)*p(tr)*p(tr)*p(pr)*p(pr))
			}
		}
	}
	// Three of a kind: trip rank, then two kickers high to low.
	for tr := 12; tr >= 0; tr-- {
		for k1 := 12; k1 >= 1; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				if k1 != tr && k2 != tr {
					products = append(products, p(tr)*p(tr)*p(tr)*p(k1)*p(k2))
				}
			}
		}
	}
	// Two pair: high pair, low pair, kicker.
	for hi := 12; hi >= 1; hi-- {
		for lo := hi - 1; lo >= 0; lo-- {
			for k := 12; k >= 0; k-- {
				if k != hi && k != lo {
					products = append(products, p(hi)*p(hi)*p(lo)*p(lo)*p(k))
				}
			}
		}
	}
	// One pair: pair rank, then three kickers high to low.
	for pr := 12; pr >= 0; pr-- {
		for k1 := 12; k1 >= 2; k1-- {
			for k2 := k1 - 1; k2 >= 1; k2-- {
				for k3 := k2 - 1; k3 >= 0; k3-- {
					if k1 != pr && k2 != pr && k3 != pr {
						products = append(products, p(pr)*p(pr)*p(k1)*p(k2)*p(k3))
					}
				}
			}
		}
	}
	return products
}

func buildProductHash(scores map[uint32]HandRank) (productHash, error) {
	keys := make([]uint32, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var lastErr error
	for attempt := 0; attempt < chdAttempts; attempt++ {
		h, err := freezeProductHash(keys, scores)
		if err == nil {
			return h, nil
		}
		lastErr = err
	}
	return productHash{}, fmt.Errorf("%w: perfect hash: %v", ErrTableInconsistent, lastErr)
}

func freezeProductHash(keys []uint32, scores map[uint32]HandRank) (productHash, error) {
	b, err := chd.New()
	if err != nil {
		return productHash{}, err
	}
	for _, k := range keys {
		if err := b.Add(uint64(k)); err != nil {
			return productHash{}, err
		}
	}
	mph, err := b.Freeze(chdLoad)
	if err != nil {
		return productHash{}, err
	}

	slots := make([]uint64, len(keys))
	size := uint64(0)
	for i, k := range keys {
		slots[i] = mph.Find(uint64(k))
		if slots[i]+1 > size {
			size = slots[i] + 1
		}
	}

	h := productHash{
		mph:   mph,
		keys:  make([]uint32, size),
		ranks: make([]HandRank, size),
	}
	for i, k := range keys {
		slot := slots[i]
		if h.keys[slot] != 0 {
			return productHash{}, fmt.Errorf("slot %d shared by products %d and %d", slot, h.keys[slot], k)
		}
		h.keys[slot] = k
		h.ranks[slot] = scores[k]
	}
	for _, k := range keys {
		if got := h.lookup(k); got != scores[k] {
			return productHash{}, fmt.Errorf("product %d reads back %d, want %d", k, got, scores[k])
		}
	}
	return h, nil
}
