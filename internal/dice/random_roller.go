package dice

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomRoller implements Roller with a private seeded source
type RandomRoller struct {
	rng  *rand.Rand
	seed int64
}

// NewRandomRoller creates a roller whose sequence is fixed by seed
func NewRandomRoller(seed int64) *RandomRoller {
	return &RandomRoller{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewSeed returns a fresh seed from the clock
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// Seed returns the seed the roller was built with
func (r *RandomRoller) Seed() int64 {
	return r.seed
}

// Intn implements Roller.Intn
func (r *RandomRoller) Intn(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("invalid item count %d", n)
	}
	return r.rng.Intn(n), nil
}

// Between implements Roller.Between
func (r *RandomRoller) Between(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}
	return min + r.rng.Intn(max-min+1), nil
}
