package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/f4hy/blightedisland/internal/dice Roller

// Roller is the source of randomness for pickers and flavor text
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller implements Roller on a seeded math/rand source. Safe for concurrent use.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Float64 returns a uniformly distributed value in [0.0, 1.0)
func (r *roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Index returns a uniform index in [0, n) using r. n must be positive.
func Index(r Roller, n int) int {
	return r.Roll(n) - 1
}
