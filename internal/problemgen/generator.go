package problemgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Generator produces practice problems.
type Generator interface {
	// Generate returns a fresh problem. It never fails.
	Generate() Problem
}

// RandomGenerator draws operands uniformly from the allowed ranges.
type RandomGenerator struct {
	rng   *rand.Rand
	newID func() string
}

// New creates a RandomGenerator. A nil rng uses a randomly seeded source.
func New(rng *rand.Rand) *RandomGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomGenerator{
		rng:   rng,
		newID: func() string { return uuid.New().String() },
	}
}

// Generate returns a problem like 3.9 × 5. Whole-number decimals such as 4.0
// are possible and exercise the no-decimals branch of the lesson.
func (g *RandomGenerator) Generate() Problem {
	tenths := MinTenths + g.rng.IntN(MaxTenths-MinTenths+1)
	return Problem{
		Decimal: float64(tenths) / 10,
		Integer: MinInteger + g.rng.IntN(MaxInteger-MinInteger+1),
		ID:      g.newID(),
	}
}
