package match

import "math/rand"

// Rand is the randomness a match consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed is still deterministic.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [-spread, spread).
func uniform(rng Rand, spread float64) float64 {
	return (rng.Float64() - 0.5) * 2 * spread
}

func randomSign(rng Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
