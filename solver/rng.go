// Package solver - entropy source shared by the randomized solvers.
//
// Policy:
//   - One Source per call. math/rand.Rand is NOT goroutine-safe; a Source must
//     never be shared across goroutines.
//   - seed != 0 ⇒ deterministic stream; seed == 0 ⇒ fresh entropy from crypto/rand.
//   - DeriveSeed gives independent sub-streams for concurrent callers.
package solver

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// fallbackSeed replaces a derived or drawn seed that happens to be 0, since 0
// is reserved for "draw fresh entropy".
const fallbackSeed int64 = 1

// Source supplies uniformly distributed signs, indices and reals.
type Source struct {
	r    *rand.Rand
	seed int64
}

// NewSource returns a Source seeded with seed, or with fresh entropy when
// seed == 0. The effective seed is reported by Seed.
//
// Complexity: O(1).
func NewSource(seed int64) *Source {
	s := seed
	if s == 0 {
		s = entropySeed()
	}

	return &Source{r: rand.New(rand.NewSource(s)), seed: s}
}

// Seed returns the effective seed; passing it to NewSource replays the stream.
func (s *Source) Seed() int64 { return s.seed }

// Sign returns −1 or +1 with probability ½ each.
func (s *Source) Sign() int {
	if s.r.Intn(2) == 0 {
		return -1
	}

	return 1
}

// Bucket returns a bucket index uniform in [0,n). n must be > 0.
func (s *Source) Bucket(n int) int { return s.r.Intn(n) }

// Index returns a position uniform in [0,n). n must be > 0.
func (s *Source) Index(n int) int { return s.r.Intn(n) }

// Float64 returns a real uniform in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so neighbouring stream ids give uncorrelated
// streams. The result is never 0.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return fallbackSeed
	}

	return int64(x)
}

// entropySeed reads 8 bytes from crypto/rand. The clock is only a fallback for
// platforms where the system entropy source is unavailable.
func entropySeed() int64 {
	var b [8]byte
	var s int64
	if _, err := crand.Read(b[:]); err == nil {
		s = int64(binary.LittleEndian.Uint64(b[:]))
	} else {
		s = time.Now().UnixNano()
	}
	if s == 0 {
		return fallbackSeed
	}

	return s
}
