// Package random provides the seedable randomness used to roll tables.
//
// Rolls draw from an explicit Source rather than global state so a table can
// be reproduced from its seed and tests can supply a fixed sequence.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
