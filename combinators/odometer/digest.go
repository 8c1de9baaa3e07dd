package odometer

import (
	"golang.org/x/crypto/sha3"
)

// digest accumulates the sequence of committed privacy-map descriptions
// an odometer has accepted and hashes them with SHA-3, letting two
// odometer replays be compared for equality without re-running queries.
// Hashing an append-only transcript, rather than folding a running hash
// in place, keeps Sum() side-effect-free and safe to call mid-replay.
type digest struct {
	transcript []byte
}

func newDigest() *digest {
	return &digest{}
}

func (d *digest) append(fields ...string) {
	for _, f := range fields {
		d.transcript = append(d.transcript, []byte(f)...)
		d.transcript = append(d.transcript, 0)
	}
}

// Sum returns the SHA3-256 digest of the transcript so far.
func (d *digest) Sum() [32]byte {
	return sha3.Sum256(d.transcript)
}
