// Package containerid generates identifiers for card containers.
//
// An identifier is a kind prefix followed by a 26-character base32 encoding of
// a UUIDv7, e.g. "deck_064gmq9c7dz4z6gv5gymwqv0e4". IDs produced by one
// generator sort by creation time.
package containerid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet (Crockford's, lower case)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

// RandSource lets tests inject deterministic randomness.
type RandSource interface {
	IntN(n int) int
}

// Generator produces container IDs from a clock and a random source.
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. A nil randSource uses crypto/rand and a
// nil clock uses the real clock.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate returns a new ID with the given kind prefix.
func (g *Generator) Generate(kind string) string {
	return kind + "_" + encodeBase32(g.uuidV7())
}

func (g *Generator) uuidV7() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp, big-endian
	now := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("containerid: failed to read random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return id
}

// encodeBase32 packs the 128 bits five at a time, most significant first.
func encodeBase32(data [16]byte) string {
	out := make([]byte, encodedLen)
	for i := range out {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var v uint8
		if bitIndex <= 3 {
			v = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			v = (data[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < len(data) {
				v |= data[byteIndex+1] >> (11 - bitIndex)
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks that id has the given kind prefix and a body that decodes
// to a version 7, variant 10 UUID.
func Validate(kind, id string) error {
	body, ok := strings.CutPrefix(id, kind+"_")
	if !ok {
		return fmt.Errorf("container ID %q does not have prefix %q", id, kind+"_")
	}
	if len(body) != encodedLen {
		return fmt.Errorf("container ID body must be exactly %d characters, got %d", encodedLen, len(body))
	}
	data, err := decodeBase32(body)
	if err != nil {
		return err
	}
	if v := data[6] >> 4; v != 7 {
		return fmt.Errorf("container ID has UUID version %d, want 7", v)
	}
	if data[8]&0xc0 != 0x80 {
		return fmt.Errorf("container ID has invalid UUID variant bits %02b", data[8]>>6)
	}
	return nil
}

// decodeBase32 reverses encodeBase32. The two bits below the final character's
// data are padding and must be zero.
func decodeBase32(body string) ([16]byte, error) {
	var data [16]byte
	for i := range len(body) {
		v := strings.IndexByte(alphabet, body[i])
		if v < 0 {
			return data, fmt.Errorf("invalid character %c at position %d", body[i], i)
		}
		for b := range 5 {
			bit := i*5 + b
			if v&(1<<(4-b)) == 0 {
				continue
			}
			if bit >= 128 {
				return data, fmt.Errorf("container ID has nonzero padding in final character %c", body[i])
			}
			data[bit/8] |= 1 << (7 - bit%8)
		}
	}
	return data, nil
}
