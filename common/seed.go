package common

// RNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences so a batch run is reproducible
// sample for sample.
type RNG struct {
	state       uint32
	initialSeed uint32
}

// NewRNG creates a new seeded random number generator.
func NewRNG(seed uint32) *RNG {
	return &RNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *RNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *RNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using the Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *RNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64((t^(t>>14))>>0) / 4294967296.0
}

// RandomFloat generates a random float in the specified range [min, max).
func (r *RNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// RandomBipolar generates a random float in [-1, 1), the range white
// noise samples are drawn from.
func (r *RNG) RandomBipolar() float64 {
	return r.Random()*2 - 1
}

// RecipeSeed derives a deterministic seed for a single recipe so that
// recipes can be rendered concurrently without sharing one stream.
func RecipeSeed(baseSeed uint32, recipeIndex int) uint32 {
	seed := baseSeed ^ (uint32(recipeIndex) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
