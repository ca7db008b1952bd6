// Package runid mints sortable identifiers for simulation runs. An ID is a
// UUIDv7 written as 26 characters of Crockford base32.
package runid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID.
const Length = 26

// Generator mints IDs from a clock and a source of random bytes.
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// NewGenerator returns a generator. A nil clock uses the wall clock and a nil
// entropy source uses crypto/rand.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// New mints an ID from the wall clock and crypto/rand.
func New() string {
	id, err := NewGenerator(nil, nil).Generate()
	if err != nil {
		panic("runid: " + err.Error())
	}
	return id
}

// Generate mints the next ID. IDs from later milliseconds sort after earlier
// ones.
func (g *Generator) Generate() (string, error) {
	var uuid [16]byte

	ms := uint64(g.clock.Now().UnixMilli())
	for i := range 6 {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	if _, err := io.ReadFull(g.entropy, uuid[6:]); err != nil {
		return "", fmt.Errorf("reading entropy: %w", err)
	}
	uuid[6] = uuid[6]&0x0f | 0x70 // version 7
	uuid[8] = uuid[8]&0x3f | 0x80 // RFC 4122 variant

	return encode(uuid), nil
}

// encode writes the 128 bits as 26 five-bit groups, padding two zero bits on
// the left so the first character is at most '7'.
func encode(uuid [16]byte) string {
	var b [Length]byte
	var acc uint32
	bits := 2 // leading padding
	n := 0
	for _, v := range uuid {
		acc = acc<<8 | uint32(v)
		bits += 8
		for bits >= 5 {
			bits -= 5
			b[n] = alphabet[(acc>>bits)&0x1f]
			n++
		}
	}
	return string(b[:])
}

// Validate checks that id is 26 characters of lowercase Crockford base32
// encoding at most 128 bits.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
