package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used for short ids (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// IDGenerator creates time-ordered game ids. A nil reader uses crypto/rand.
type IDGenerator struct {
	rand io.Reader
}

// NewIDGenerator creates a generator reading randomness from r.
func NewIDGenerator(r io.Reader) *IDGenerator {
	return &IDGenerator{rand: r}
}

// Generate returns a new UUIDv7.
func (g *IDGenerator) Generate() (uuid.UUID, error) {
	if g == nil || g.rand == nil {
		return uuid.NewV7()
	}
	id, err := uuid.NewV7FromReader(g.rand)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate game id: %w", err)
	}
	return id, nil
}

// ShortID encodes an id as a 26-character lowercase base32 string that sorts
// the same way the id does.
func ShortID(id uuid.UUID) string {
	result := make([]byte, 26)

	// 128 bits in 5-bit groups; the final group is padded with two zero bits.
	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if bitIndex <= 3 {
			value = (id[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			value = (id[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < len(id) {
				value |= id[byteIndex+1] >> (11 - bitIndex)
			}
		}
		result[i] = alphabet[value]
	}

	return string(result)
}
