package game

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

func TestEncodeCardIDs(t *testing.T) {
	cards := poker.MustParseCards("2hJsAd")
	assert.Equal(t, "6|41|3", EncodeCardIDs(cards))
	assert.Equal(t, "", EncodeCardIDs(nil))
}

func TestDecodeCardIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "simple", input: "1|52|5", want: "AsKc2s"},
		{name: "empty segments skipped", input: "|1||2|", want: "AsAh"},
		{name: "whitespace", input: " 3 | 4 ", want: "AdAc"},
		{name: "empty", input: "", wantErr: ErrEmptyCardIDs},
		{name: "only separators", input: "||", wantErr: ErrEmptyCardIDs},
		{name: "not a number", input: "1|x|3", wantErr: ErrInvalidCardID},
		{name: "out of range", input: "1|53", wantErr: ErrInvalidCardID},
		{name: "zero", input: "0", wantErr: ErrInvalidCardID},
		{name: "repeated", input: "7|8|7", wantErr: ErrRepeatedCardID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cards, err := DecodeCardIDs(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, cards)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, poker.MustParseCards(tc.want), cards)
		})
	}
}

func TestCardIDsRoundTripFullDeck(t *testing.T) {
	order := poker.NewDeck(rand.New(rand.NewSource(9))).Order()
	encoded := EncodeCardIDs(order)
	assert.Equal(t, 51, strings.Count(encoded, "|"))

	decoded, err := DecodeCardIDs(encoded)
	require.NoError(t, err)
	assert.Equal(t, order, decoded)
}

func TestLayout(t *testing.T) {
	order := poker.ReferenceDeck()
	deal, err := Layout(order[:], DefaultPlayers)
	require.NoError(t, err)

	require.Len(t, deal.Holes, 9)
	// Seat p receives cards p and p+9; the board follows both rounds.
	assert.Equal(t, [2]poker.Card{order[0], order[9]}, deal.Holes[0])
	assert.Equal(t, [2]poker.Card{order[8], order[17]}, deal.Holes[8])
	assert.Equal(t, [5]poker.Card(order[18:23]), deal.Board)
	require.NoError(t, showdown.CheckDistinct(deal.Holes, deal.Board))
}

func TestLayout_Errors(t *testing.T) {
	order := poker.ReferenceDeck()

	_, err := Layout(order[:], 0)
	require.ErrorIs(t, err, showdown.ErrNoPlayers)

	_, err = Layout(order[:22], DefaultPlayers)
	require.ErrorIs(t, err, ErrInsufficientCards)

	_, err = Layout(order[:], MaxPlayers+1)
	require.ErrorIs(t, err, ErrInsufficientCards)

	deal, err := Layout(order[:], MaxPlayers)
	require.NoError(t, err)
	assert.Len(t, deal.Holes, 23)
	assert.Equal(t, 51, CardsNeeded(MaxPlayers))
}

func TestRecord_Deal(t *testing.T) {
	order := poker.NewDeck(rand.New(rand.NewSource(3))).Order()
	rec, err := NewRecord(nil, 4, order)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.DealerID)
	assert.Equal(t, uuid.Version(7), rec.GameID.Version())

	deal, err := rec.Deal(DefaultPlayers)
	require.NoError(t, err)
	want, err := Layout(order, DefaultPlayers)
	require.NoError(t, err)
	assert.Equal(t, want, deal)

	res, err := showdown.NewEvaluator(nil).Evaluate(deal.Holes, deal.Board)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Winners())
}

func TestRecord_Errors(t *testing.T) {
	_, err := NewRecord(nil, 0, nil)
	require.ErrorIs(t, err, ErrEmptyCardIDs)

	rec := &Record{GameID: uuid.New(), CardIDs: "1|2|3"}
	_, err = rec.Deal(2)
	require.ErrorIs(t, err, ErrInsufficientCards)
	assert.Contains(t, err.Error(), rec.GameID.String())

	rec.CardIDs = "1|1"
	_, err = rec.Cards()
	require.ErrorIs(t, err, ErrRepeatedCardID)
}

func TestIDGenerator(t *testing.T) {
	gen := NewIDGenerator(bytes.NewReader(bytes.Repeat([]byte{0xAB}, 64)))
	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())

	// An exhausted reader surfaces as an error.
	_, err = NewIDGenerator(bytes.NewReader(nil)).Generate()
	require.Error(t, err)

	seen := make(map[uuid.UUID]bool)
	var def *IDGenerator
	for i := 0; i < 100; i++ {
		id, err := def.Generate()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", 26), ShortID(uuid.Nil))

	var full uuid.UUID
	for i := range full {
		full[i] = 0xff
	}
	assert.Equal(t, strings.Repeat("z", 25)+"w", ShortID(full))

	a, b := uuid.UUID{0: 1}, uuid.UUID{0: 2}
	assert.Less(t, ShortID(a), ShortID(b))
	assert.Len(t, ShortID(uuid.New()), 26)
}
