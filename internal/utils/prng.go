// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource is every probability roll the simulation makes.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PRNGService wraps a seeded math/rand generator so a whole run can be replayed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator with the given seed. Seed 0 means the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports whether a single draw falls below p.
func Chance(r RandomSource, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Roll100 draws the integer in [0,100) used by the rarity tables.
func Roll100(r RandomSource) int {
	return r.Intn(100)
}

// Spread returns (rand-0.5)*width, a symmetric offset in [-width/2, width/2).
func Spread(r RandomSource, width float64) float64 {
	return (r.Float64() - 0.5) * width
}

// ScriptedSource replays fixed draws. Once a queue is empty Float64 returns
// DefaultFloat and Intn returns n-1, so chance rolls fail and rarity rolls
// land on common.
type ScriptedSource struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64
}

// NewScriptedSource returns a source whose exhausted Float64 is just below 1.
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{DefaultFloat: 0.999999}
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.DefaultFloat
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return n - 1
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		v = ((v % n) + n) % n
	}
	return v
}
