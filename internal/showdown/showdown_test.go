package showdown

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokereval/internal/statistics"
	"github.com/lox/pokereval/poker"
)

func holes(t testing.TB, hands ...string) [][2]poker.Card {
	t.Helper()
	out := make([][2]poker.Card, len(hands))
	for i, h := range hands {
		cards, err := poker.ParseCards(h)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		out[i] = [2]poker.Card(cards)
	}
	return out
}

func board(t testing.TB, s string) [5]poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	require.Len(t, cards, 5)
	return [5]poker.Card(cards)
}

func randomDeals(rng *rand.Rand, n, players int) []Deal {
	deals := make([]Deal, n)
	for i := range deals {
		order := poker.NewDeck(rng).Order()
		hs := make([][2]poker.Card, players)
		for p := range hs {
			hs[p] = [2]poker.Card{order[p], order[p+players]}
		}
		deals[i] = Deal{Holes: hs, Board: [5]poker.Card(order[2*players : 2*players+5])}
	}
	return deals
}

func TestEvaluate_SplitPotOnBoardQuads(t *testing.T) {
	e := NewEvaluator(nil)
	hs := holes(t, "AsAh", "AdAc", "3s3h", "4s4h", "5s5h", "6s6h", "7s7h", "8s8h", "9s9h")
	b := board(t, "KsKhKdKc2c")
	require.NoError(t, CheckDistinct(hs, b))

	res, err := e.Evaluate(hs, b)
	require.NoError(t, err)

	require.Len(t, res.Scores, 9)
	assert.Equal(t, poker.HandRank(23), res.Scores[0])
	assert.Equal(t, res.Scores[0], res.Scores[1])
	assert.Equal(t, []int{0, 1}, res.Winners())
	assert.Equal(t, []int{0, 1}, Winners(res.Scores))
	assert.Equal(t, poker.HandRank(23), res.Best())
	for seat, c := range res.Categories {
		assert.Equal(t, poker.FourOfAKind, c, "seat %d", seat)
	}
}

func TestEvaluate_SingleWinner(t *testing.T) {
	e := NewEvaluator(poker.DefaultTables())
	hs := holes(t, "AsAh", "7c2d")
	b := board(t, "KsKhQcJdTh")

	res, err := e.Evaluate(hs, b)
	require.NoError(t, err)

	// A-K-Q-J-T beats aces and kings.
	assert.Equal(t, poker.HandRank(1600), res.Scores[0])
	assert.Equal(t, poker.Straight, res.Categories[0])
	assert.Equal(t, uint8(13), res.Combos[0])
	assert.Equal(t, []int{0}, res.Winners())

	five := res.BestFive(hs, b, 0)
	assert.Equal(t, "As Ks Qc Jd Th", cardsString(five[:]))
}

func TestEvaluate_BestFiveFromHoleCards(t *testing.T) {
	e := NewEvaluator(nil)
	hs := holes(t, "AsKs", "2h2d")
	b := board(t, "QsJsTs2c3d")

	res, err := e.Evaluate(hs, b)
	require.NoError(t, err)

	assert.Equal(t, poker.HandRank(1), res.Scores[0])
	assert.Equal(t, poker.ThreeOfAKind, res.Categories[1])
	assert.Equal(t, uint8(0), res.Combos[0])
	five := res.BestFive(hs, b, 0)
	assert.Equal(t, "As Ks Qs Js Ts", cardsString(five[:]))
}

func cardsString(cards []poker.Card) string {
	s := ""
	for i, c := range cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}

func TestEvaluate_NoPlayers(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Evaluate(nil, board(t, "2c3d4h5s7c"))
	require.ErrorIs(t, err, ErrNoPlayers)
}

func TestEvaluate_SinglePlayer(t *testing.T) {
	e := NewEvaluator(nil)
	res, err := e.Evaluate(holes(t, "2c7d"), board(t, "9hJsKc4d3s"))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Winners())
	assert.Equal(t, poker.HighCard, res.Categories[0])
}

func TestEvaluateInto_ReusesSlices(t *testing.T) {
	e := NewEvaluator(nil)
	var res Result
	require.NoError(t, e.EvaluateInto(&res, holes(t, "AsAh", "KsKh", "QsQh"), board(t, "2c3d4h8s9c")))
	scores := &res.Scores[0]

	require.NoError(t, e.EvaluateInto(&res, holes(t, "AsAh", "KsKh"), board(t, "2c3d4h8s9c")))
	assert.Len(t, res.Scores, 2)
	assert.Same(t, scores, &res.Scores[0])
	assert.Equal(t, []int{0}, res.Winners())
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := NewEvaluator(nil)
	deals := randomDeals(rand.New(rand.NewSource(11)), 50, 9)
	for _, d := range deals {
		first, err := e.Evaluate(d.Holes, d.Board)
		require.NoError(t, err)
		second, err := e.Evaluate(d.Holes, d.Board)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEvaluate_DuplicateCards(t *testing.T) {
	e := NewEvaluator(nil)

	t.Run("shared hole cards tie", func(t *testing.T) {
		hs := holes(t, "AsAh", "AsAh", "3c4c")
		b := board(t, "KsKhKdKc2c")
		require.ErrorIs(t, CheckDistinct(hs, b), ErrDuplicateCard)

		res, err := e.Evaluate(hs, b)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, res.Winners())
	})

	t.Run("five of a rank scores invalid and wins", func(t *testing.T) {
		hs := holes(t, "AsAs", "KdKc")
		b := board(t, "AhAdAc2c3d")
		require.ErrorIs(t, CheckDistinct(hs, b), ErrDuplicateCard)

		res, err := e.Evaluate(hs, b)
		require.NoError(t, err)
		assert.Equal(t, poker.InvalidRank, res.Scores[0])
		assert.Equal(t, poker.InvalidHand, res.Categories[0])
		assert.Equal(t, []int{0}, res.Winners())
	})
}

func TestCheckDistinct(t *testing.T) {
	tests := []struct {
		name  string
		holes [][2]poker.Card
		board [5]poker.Card
		want  error
	}{
		{
			name:  "distinct",
			holes: holes(t, "AsAh", "KsKh"),
			board: board(t, "2c3d4h5s7c"),
		},
		{
			name:  "hole repeats board",
			holes: holes(t, "AsAh", "KsKh"),
			board: board(t, "2c3d4h5sAs"),
			want:  ErrDuplicateCard,
		},
		{
			name:  "hole repeats hole",
			holes: holes(t, "AsAh", "KsAh"),
			board: board(t, "2c3d4h5s7c"),
			want:  ErrDuplicateCard,
		},
		{
			name:  "board repeats itself",
			holes: holes(t, "AsAh"),
			board: board(t, "2c2c4h5s7c"),
			want:  ErrDuplicateCard,
		},
		{
			name:  "invalid encoding",
			holes: [][2]poker.Card{{0, poker.NewCard(poker.Ace, poker.Spades)}},
			board: board(t, "2c3d4h5s7c"),
			want:  ErrInvalidCard,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDistinct(tc.holes, tc.board)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWinners(t *testing.T) {
	tests := []struct {
		name   string
		scores []poker.HandRank
		want   []int
	}{
		{"empty", nil, nil},
		{"single", []poker.HandRank{4000}, []int{0}},
		{"last wins", []poker.HandRank{5, 4, 3}, []int{2}},
		{"three way tie", []poker.HandRank{10, 2, 2, 7, 2}, []int{1, 2, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Winners(tc.scores))
		})
	}
}

func TestEvaluateBatch_MatchesSequential(t *testing.T) {
	e := NewEvaluator(nil)
	deals := randomDeals(rand.New(rand.NewSource(7)), 1000, 9)

	var want statistics.Tally
	for _, d := range deals {
		res, err := e.Evaluate(d.Holes, d.Board)
		require.NoError(t, err)
		want.Add(res.Scores, res.Winners())
	}
	require.NoError(t, want.Validate())

	for _, workers := range []int{1, 3, 8, 0, 5000} {
		got, err := e.EvaluateBatch(context.Background(), deals, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, *got, "workers=%d", workers)
	}
}

func TestEvaluateBatch_Empty(t *testing.T) {
	e := NewEvaluator(nil)
	got, err := e.EvaluateBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Zero(t, got.Showdowns)
}

func TestEvaluateBatch_Cancelled(t *testing.T) {
	e := NewEvaluator(nil)
	deals := randomDeals(rand.New(rand.NewSource(1)), 100, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.EvaluateBatch(ctx, deals, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateBatch_NoPlayersInDeal(t *testing.T) {
	e := NewEvaluator(nil)
	deals := randomDeals(rand.New(rand.NewSource(1)), 10, 2)
	deals[6].Holes = nil

	_, err := e.EvaluateBatch(context.Background(), deals, 2)
	require.ErrorIs(t, err, ErrNoPlayers)
	assert.Contains(t, err.Error(), "deal 6")
}

func BenchmarkEvaluateNinePlayers(b *testing.B) {
	e := NewEvaluator(nil)
	deals := randomDeals(rand.New(rand.NewSource(42)), 256, 9)
	var res Result

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := &deals[i&255]
		_ = e.EvaluateInto(&res, d.Holes, d.Board)
	}
}
