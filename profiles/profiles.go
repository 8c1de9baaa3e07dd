// Package profiles loads named privacy-budget presets from a JSON file,
// the way credential.LoadParamsFromFile loads credential parameters:
// read the file (falling back to parent directories when the given
// path is relative and not found in the working directory), unmarshal
// into a disk schema, then validate and convert into the arith.Rat
// values the rest of the library operates on.
package profiles

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"vsis-dpcore/arith"
)

// Profile is a named privacy budget: a pure-DP epsilon, an optional
// approximate-DP delta, an optional zCDP rho, and the default noise
// granularity (the exponent k of a 2^-k rounding granularity, as taken by
// measurements.GaussianMechanism) callers
// should request when none is supplied explicitly.
type Profile struct {
	Name        string
	Epsilon     arith.Rat
	Delta       arith.Rat
	Rho         arith.Rat
	Granularity int
}

// profileFile mirrors the JSON schema stored on disk. Epsilon/Delta/Rho
// are plain float64 on disk; exact rational budgets that don't round-trip
// through float64 should be constructed in code via arith.FiniteRat
// instead of loaded from a profile file.
type profileFile struct {
	Name        string  `json:"name"`
	Epsilon     float64 `json:"epsilon"`
	Delta       float64 `json:"delta"`
	Rho         float64 `json:"rho"`
	Granularity int     `json:"granularity"`
}

// Set is a collection of profiles keyed by name, as loaded from a single
// JSON file.
type Set map[string]Profile

// Default returns the built-in presets available when no profile file
// is supplied: "strict" (tight pure-DP budget), "standard" (a
// moderate zCDP budget), and "loose" (a permissive approximate-DP
// budget). "strict" and "standard" default to a 2^-10 granularity,
// "loose" to 2^-8.
func Default() Set {
	return Set{
		"strict": {
			Name:        "strict",
			Epsilon:     arith.FiniteRat(big.NewRat(1, 10)),
			Granularity: 10,
		},
		"standard": {
			Name:        "standard",
			Rho:         arith.FiniteRat(big.NewRat(1, 8)),
			Granularity: 10,
		},
		"loose": {
			Name:        "loose",
			Epsilon:     arith.FiniteRat(big.NewRat(2, 1)),
			Delta:       arith.FiniteRat(big.NewRat(1, 1000000)),
			Granularity: 8,
		},
	}
}

// LoadFromFile reads a JSON array of profiles from path, falling back to
// "../path" and "../../path" the way credential.readFileWithFallback
// does, and returns them merged on top of Default() so a profile file
// need only override what it customizes.
func LoadFromFile(path string) (Set, error) {
	raw, _, err := readFileWithFallback(path)
	if err != nil {
		return nil, err
	}
	var files []profileFile
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	set := Default()
	for _, pf := range files {
		if pf.Name == "" {
			return nil, fmt.Errorf("profiles: entry missing name")
		}
		if pf.Granularity <= 0 {
			return nil, fmt.Errorf("profiles: %s: granularity must be positive", pf.Name)
		}
		p := Profile{Name: pf.Name, Granularity: pf.Granularity}
		if pf.Epsilon != 0 {
			eps, ok := arith.RatFromFloat64(pf.Epsilon)
			if !ok {
				return nil, fmt.Errorf("profiles: %s: epsilon not representable", pf.Name)
			}
			p.Epsilon = eps
		}
		if pf.Delta != 0 {
			delta, ok := arith.RatFromFloat64(pf.Delta)
			if !ok {
				return nil, fmt.Errorf("profiles: %s: delta not representable", pf.Name)
			}
			p.Delta = delta
		}
		if pf.Rho != 0 {
			rho, ok := arith.RatFromFloat64(pf.Rho)
			if !ok {
				return nil, fmt.Errorf("profiles: %s: rho not representable", pf.Name)
			}
			p.Rho = rho
		}
		set[pf.Name] = p
	}
	return set, nil
}

// Lookup returns the named profile, or an error naming the unknown
// profile.
func (s Set) Lookup(name string) (Profile, error) {
	p, ok := s[name]
	if !ok {
		return Profile{}, fmt.Errorf("profiles: unknown profile %q", name)
	}
	return p, nil
}

func readFileWithFallback(path string) ([]byte, string, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates, filepath.Join("..", path), filepath.Join("..", "..", path))
	}
	for _, p := range candidates {
		if data, err := os.ReadFile(p); err == nil {
			return data, p, nil
		}
	}
	return nil, "", fmt.Errorf("read %s: not found", path)
}
