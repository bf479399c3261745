package tetris

import "math/rand"

// Randomizer chooses the kind of each new piece.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws every kind independently with equal probability.
// Repeats and droughts are possible; there is no bag.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer returns a randomizer seeded for reproducible games.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- gameplay randomness, not security
}

// Next returns a uniformly chosen kind.
func (u *UniformRandomizer) Next() Kind {
	return Kind(u.rng.Intn(KindCount))
}
