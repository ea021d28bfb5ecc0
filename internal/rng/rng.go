package rng

import (
	"encoding/hex"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode selects how the master seed is chosen
type Mode int

const (
	Deterministic Mode = iota
	Real
)

// Factory hands out independent random streams derived from one master seed.
// A *rand.Rand is not safe for concurrent use, so each request takes its own stream.
type Factory struct {
	mu     sync.Mutex
	master *rand.Rand
}

// New creates a factory. Real mode ignores seed and uses the wall clock once.
func New(mode Mode, seed int64) *Factory {
	if mode == Real {
		seed = time.Now().UnixNano()
	}
	return &Factory{master: rand.New(rand.NewSource(seed))}
}

// FromSeed returns a deterministic factory for a non-zero seed and a real one otherwise
func FromSeed(seed int64) *Factory {
	if seed == 0 {
		return New(Real, 0)
	}
	return New(Deterministic, seed)
}

// Stream derives a new generator from the master source
func (f *Factory) Stream() *Rand {
	f.mu.Lock()
	seed := f.master.Int63()
	f.mu.Unlock()
	return &Rand{Rand: rand.New(rand.NewSource(seed))}
}

// Rand wraps math/rand with the helpers the generators need
type Rand struct {
	*rand.Rand
}

// Uniform returns a float in [lo, hi)
func (r *Rand) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi]
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance reports true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Hex returns n lowercase hex characters
func (r *Rand) Hex(n int) string {
	b := make([]byte, (n+1)/2)
	_, _ = r.Read(b)
	return hex.EncodeToString(b)[:n]
}

// Address returns a random 0x-prefixed 40-character address
func (r *Rand) Address() string {
	return "0x" + r.Hex(40)
}

// TxHash returns a random 0x-prefixed 64-character hash
func (r *Rand) TxHash() string {
	return "0x" + r.Hex(64)
}

// UUID draws a version 4 UUID from the stream so seeded runs are reproducible
func (r *Rand) UUID() string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Choice picks one element uniformly. items must not be empty.
func Choice[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Weighted picks one element with probability proportional to its weight
func Weighted[T any](r *Rand, items []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return items[i]
		}
		x -= w
	}
	return items[len(items)-1]
}

// Sample returns up to n distinct elements in random order
func Sample[T any](r *Rand, items []T, n int) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < len(out) {
		out = out[:n]
	}
	return out
}
