package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	wrand "github.com/mroth/weightedrand/v2"
)

// weightScale is the integer resolution weights are normalized to before a
// weighted pick. Any positive weight maps to at least 1.
const weightScale = 1_000_000_000

// ErrNoWeight indicates a weighted choice had no positive weight to draw from.
var ErrNoWeight = errors.New("no positive weight to choose from")

// ErrInvalidWeight indicates a weight was negative, NaN, or infinite.
var ErrInvalidWeight = errors.New("weights must be finite and non-negative")

// Source supplies the randomness for a roll.
//
// Choose draws an index into weights with probability proportional to its
// weight, with replacement. Intn returns a uniform integer in [0, n).
type Source interface {
	Choose(weights []float64) (int, error)
	Intn(n int) int
}

// Rand is a Source backed by a seeded math/rand generator.
type Rand struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Rand seeded with seed. A zero seed is replaced with a
// crypto-random seed; Seed reports the value actually used.
func New(seed int64) (*Rand, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Rand{seed: seed, rng: rand.New(rand.NewSource(seed))}, nil
}

// Seed returns the seed the generator was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a uniform integer in [0, n).
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Choose returns an index into weights chosen by weighted random selection.
func (r *Rand) Choose(weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrInvalidWeight
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrNoWeight
	}

	choices := make([]wrand.Choice[int, int], 0, len(weights))
	for i, w := range weights {
		if w == 0 {
			continue
		}
		scaled := int(math.Round(w / total * weightScale))
		if scaled < 1 {
			scaled = 1
		}
		choices = append(choices, wrand.NewChoice(i, scaled))
	}
	chooser, err := wrand.NewChooser(choices...)
	if err != nil {
		return 0, fmt.Errorf("build chooser: %w", err)
	}
	return chooser.PickSource(r.rng), nil
}
