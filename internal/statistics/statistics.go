package statistics

import (
	"fmt"
	"math"

	"github.com/lox/pokereval/poker"
)

// Reference7CardCounts holds the exact number of 7-card hands (out of
// C(52,7) = 133,784,560) whose best five falls in each category.
var Reference7CardCounts = map[poker.HandType]int{
	poker.StraightFlush: 41584,
	poker.FourOfAKind:   224848,
	poker.FullHouse:     3473184,
	poker.Flush:         4047644,
	poker.Straight:      6180020,
	poker.ThreeOfAKind:  6461620,
	poker.TwoPair:       31433400,
	poker.Pair:          58627800,
	poker.HighCard:      23294460,
}

// Total7CardHands is C(52,7).
const Total7CardHands = 133784560

// Reference7CardFrequency returns the exact probability that a random 7-card
// hand makes ht.
func Reference7CardFrequency(ht poker.HandType) float64 {
	return float64(Reference7CardCounts[ht]) / Total7CardHands
}

// Tally accumulates showdown outcomes. A Tally is owned by one worker; partial
// tallies are combined with Merge once the workers are done.
type Tally struct {
	Showdowns   int
	PlayerHands int
	Ties        int // showdowns with more than one winner

	// Categories is indexed by poker.HandType; index 0 counts InvalidHand.
	Categories [poker.HighCard + 1]int

	// SeatWins credits every winner of a split pot.
	SeatWins []int

	ScoreSum  uint64
	ScoreSum2 float64 // sum of squares for variance
}

// Add records one showdown.
func (t *Tally) Add(scores []poker.HandRank, winners []int) {
	t.Showdowns++
	t.PlayerHands += len(scores)

	for _, s := range scores {
		t.Categories[s.Type()]++
		t.ScoreSum += uint64(s)
		t.ScoreSum2 += float64(s) * float64(s)
	}

	if len(winners) > 1 {
		t.Ties++
	}
	for _, seat := range winners {
		t.growSeats(seat + 1)
		t.SeatWins[seat]++
	}
}

func (t *Tally) growSeats(n int) {
	if len(t.SeatWins) < n {
		grown := make([]int, n)
		copy(grown, t.SeatWins)
		t.SeatWins = grown
	}
}

// Merge folds other into t.
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	t.Showdowns += other.Showdowns
	t.PlayerHands += other.PlayerHands
	t.Ties += other.Ties
	for i, n := range other.Categories {
		t.Categories[i] += n
	}
	t.growSeats(len(other.SeatWins))
	for seat, n := range other.SeatWins {
		t.SeatWins[seat] += n
	}
	t.ScoreSum += other.ScoreSum
	t.ScoreSum2 += other.ScoreSum2
}

// Frequency returns the observed share of player hands in category ht.
func (t *Tally) Frequency(ht poker.HandType) float64 {
	if t.PlayerHands == 0 || int(ht) >= len(t.Categories) {
		return 0
	}
	return float64(t.Categories[ht]) / float64(t.PlayerHands)
}

// Deviation returns observed minus reference frequency for ht.
func (t *Tally) Deviation(ht poker.HandType) float64 {
	return t.Frequency(ht) - Reference7CardFrequency(ht)
}

// MaxDeviation returns the category with the largest absolute deviation from
// the reference distribution.
func (t *Tally) MaxDeviation() (poker.HandType, float64) {
	worst, dev := poker.InvalidHand, 0.0
	for _, ht := range poker.HandTypes {
		if d := math.Abs(t.Deviation(ht)); d > dev || worst == poker.InvalidHand {
			worst, dev = ht, d
		}
	}
	return worst, dev
}

// MeanScore returns the average player score.
func (t *Tally) MeanScore() float64 {
	if t.PlayerHands == 0 {
		return 0
	}
	return float64(t.ScoreSum) / float64(t.PlayerHands)
}

// ScoreStdDev returns the sample standard deviation of player scores.
func (t *Tally) ScoreStdDev() float64 {
	if t.PlayerHands < 2 {
		return 0
	}
	n := float64(t.PlayerHands)
	mean := t.MeanScore()
	v := (t.ScoreSum2 - n*mean*mean) / (n - 1)
	if v < 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Validate checks that the counters are mutually consistent.
func (t *Tally) Validate() error {
	if t.Showdowns < 0 || t.PlayerHands < 0 {
		return fmt.Errorf("negative counters: showdowns=%d hands=%d", t.Showdowns, t.PlayerHands)
	}

	total := 0
	for _, n := range t.Categories {
		total += n
	}
	if total != t.PlayerHands {
		return fmt.Errorf("category histogram total (%d) does not match player hands (%d)", total, t.PlayerHands)
	}
	if t.Categories[poker.InvalidHand] != 0 {
		return fmt.Errorf("%d hands scored invalid", t.Categories[poker.InvalidHand])
	}

	wins := 0
	for _, n := range t.SeatWins {
		wins += n
	}
	if wins < t.Showdowns {
		return fmt.Errorf("seat wins (%d) fewer than showdowns (%d)", wins, t.Showdowns)
	}
	if wins-t.Showdowns > t.PlayerHands {
		return fmt.Errorf("split credits (%d) exceed player hands (%d)", wins-t.Showdowns, t.PlayerHands)
	}
	if t.Ties > t.Showdowns {
		return fmt.Errorf("ties (%d) exceed showdowns (%d)", t.Ties, t.Showdowns)
	}
	return nil
}
