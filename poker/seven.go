package poker

// ComboCount is the number of 5-card subsets of 7 cards.
const ComboCount = 21

// Combos7 enumerates the 5-subsets of seven positions in lexicographic
// order: row 0 is {0,1,2,3,4}, row 20 is {2,3,4,5,6}.
var Combos7 = func() [ComboCount][5]uint8 {
	var table [ComboCount][5]uint8
	row := 0
	for a := uint8(0); a <= 2; a++ {
		for b := a + 1; b <= 3; b++ {
			for c := b + 1; c <= 4; c++ {
				for d := c + 1; d <= 5; d++ {
					for e := d + 1; e <= 6; e++ {
						table[row] = [5]uint8{a, b, c, d, e}
						row++
					}
				}
			}
		}
	}
	return table
}()

// Best5of7 returns the best score among the 21 five-card subsets of seven
// and the Combos7 row that produced it. On equal scores the first row wins.
func (t *Tables) Best5of7(seven [7]Card) (HandRank, uint8) {
	best := HandRank(0xFFFF)
	var bestRow uint8
	for row := range Combos7 {
		idx := &Combos7[row]
		r := t.Eval5(seven[idx[0]], seven[idx[1]], seven[idx[2]], seven[idx[3]], seven[idx[4]])
		if r < best {
			best = r
			bestRow = uint8(row)
		}
	}
	return best, bestRow
}

// Evaluate7 returns only the best score of seven cards.
func (t *Tables) Evaluate7(seven [7]Card) HandRank {
	r, _ := t.Best5of7(seven)
	return r
}

// Evaluate7Batch evaluates multiple 7-card hands and writes results into out.
// If out is nil or smaller than hands, a new slice is allocated and returned.
func (t *Tables) Evaluate7Batch(hands [][7]Card, out []HandRank) []HandRank {
	if len(out) < len(hands) {
		out = make([]HandRank, len(hands))
	} else {
		out = out[:len(hands)]
	}

	for i := range hands {
		out[i], _ = t.Best5of7(hands[i])
	}

	return out
}

// SelectCombo returns the five cards of seven chosen by a Combos7 row.
func SelectCombo(seven [7]Card, row uint8) [5]Card {
	idx := Combos7[row%ComboCount]
	return [5]Card{seven[idx[0]], seven[idx[1]], seven[idx[2]], seven[idx[3]], seven[idx[4]]}
}
