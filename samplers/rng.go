// Package samplers implements the exact noise and selection primitives
// every Laplace/Gaussian/top-k mechanism is built from. Every sampler is a
// deterministic function of its entropy Source: the Source is the only
// place randomness enters the package, which keeps the samplers testable
// with a seeded deterministic source while production draws come from the
// OS CSPRNG.
package samplers

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"vsis-dpcore/errs"
)

// Source is the entropy boundary every sampler in this package draws
// through. It never returns an error at the bit level; exhaustion of the
// underlying OS RNG is surfaced by osSource.Uint64 via a panic recovered
// at the call sites that can fail (InsufficientEntropy), matching the
// spec's "sampler failure modes" list: only OS RNG failure and arithmetic
// failure propagate.
type Source interface {
	// Uint64 returns a uniformly random 64-bit word.
	Uint64() uint64
}

// osSource draws from crypto/rand, the production entropy source.
type osSource struct{}

// OS is the process-wide production entropy source. Multiple goroutines
// may call its methods concurrently; crypto/rand.Reader is safe for
// concurrent use.
var OS Source = osSource{}

func (osSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(entropyPanic{err})
	}
	return binary.LittleEndian.Uint64(buf[:])
}

type entropyPanic struct{ err error }

// withEntropyGuard runs fn, converting a panic raised by osSource.Uint64
// into an InsufficientEntropy error instead of crashing the caller -
// samplers have no other way to fail at the bit-drawing level.
func withEntropyGuard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if p, ok := r.(entropyPanic); ok {
				err = errs.WrapInsufficientEntropy(p.err, "entropy source exhausted")
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// RNG is a seeded, deterministic Source for reproducible tests.
type RNG struct {
	r *mrand.Rand
}

// NewRNG creates a deterministic Source seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: mrand.New(mrand.NewSource(seed))}
}

func (r *RNG) Uint64() uint64 { return r.r.Uint64() }
