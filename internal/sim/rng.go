package sim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource abstracts the random stream the outcome model draws from.
type RandomSource interface {
	Float64() float64 // [0, 1)
}

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible PCG-backed source. One instance per
// worker avoids lock contention; pass the same seed for repeatable runs.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// NewRNG returns a source seeded from the OS entropy pool, for callers that
// don't care about reproducibility.
func NewRNG() RandomSource {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return NewSeededRNG(rand.Uint64())
	}
	return NewSeededRNG(binary.BigEndian.Uint64(buf[:]))
}

type lockedRNG struct {
	mu sync.Mutex
	r  RandomSource
}

// NewLockedRNG wraps a source for safe sharing across goroutines. Use this
// when bit-for-bit cross-run reproducibility with a single global seed matters
// more than avoiding lock contention between a day's parallel games.
func NewLockedRNG(r RandomSource) RandomSource {
	return &lockedRNG{r: r}
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
