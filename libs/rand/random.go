package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// NewSeed draws a non-zero seed from OS randomness.
func NewSeed() (int64, error) {
	for {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.BigEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// NewRand returns a prng seeded with seed. A zero seed is replaced with one
// drawn from OS randomness; the seed actually used is returned alongside so
// callers can report it and replay the run.
//
// Like any math/rand.Rand, none of the provided methods are suitable for
// cryptographic usage, and the returned value is not safe for concurrent use.
func NewRand(seed int64) (*mrand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return mrand.New(mrand.NewSource(seed)), seed, nil // nolint: gosec
}
