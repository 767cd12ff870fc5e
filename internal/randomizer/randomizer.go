package randomizer

import (
	"errors"
	"fmt"

	"github.com/f4hy/blightedisland/internal/catalog"
	"github.com/f4hy/blightedisland/internal/dice"
	"github.com/f4hy/blightedisland/internal/models"
)

// MinWeight keeps the most played candidate selectable
const MinWeight = 0.1

var (
	// ErrInvalidLevel is returned for a level outside the catalog range
	ErrInvalidLevel = errors.New("adversary level out of range")

	// ErrNoCandidates is returned when a filter leaves nothing to pick
	ErrNoCandidates = errors.New("no candidates to pick from")
)

// Config holds the randomizer dependencies
type Config struct {
	Catalog *catalog.Catalog
	Roller  dice.Roller
}

// Randomizer picks adversaries and spirits for a new session
type Randomizer struct {
	catalog *catalog.Catalog
	roller  dice.Roller
}

// New creates a randomizer
func New(cfg *Config) (*Randomizer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &Randomizer{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
	}, nil
}

// RandomAdversary picks an adversary uniformly
func (r *Randomizer) RandomAdversary(level int) (models.Adversary, error) {
	if !r.catalog.ValidLevel(level) {
		return models.Adversary{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	names := r.catalog.AdversaryNames()
	return models.Adversary{Name: names[dice.Index(r.roller, len(names))], Level: level}, nil
}

// PickAdversary favors adversaries played least often at level
func (r *Randomizer) PickAdversary(level int, history []*models.Game) (models.Adversary, error) {
	if !r.catalog.ValidLevel(level) {
		return models.Adversary{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	counts := make(map[string]int)
	for _, g := range history {
		if g.Adversary.Level == level {
			counts[g.Adversary.Name]++
		}
	}

	names := r.catalog.AdversaryNames()
	name := names[r.draw(names, counts)]
	return models.Adversary{Name: name, Level: level}, nil
}

// RandomSpirit picks uniformly among every selectable spirit, aspects
// included. A non-empty complexity restricts the pool.
func (r *Randomizer) RandomSpirit(complexity models.Complexity) (models.Spirit, error) {
	pool := r.catalog.Spirits(complexity)
	if len(pool) == 0 {
		return models.Spirit{}, fmt.Errorf("%w: complexity %q", ErrNoCandidates, complexity)
	}
	return pool[dice.Index(r.roller, len(pool))], nil
}

// PickSpirit favors base spirits played least often, then picks one of the
// chosen base's variants uniformly. Aspects count toward their base.
func (r *Randomizer) PickSpirit(history []*models.Game, complexity models.Complexity) (models.Spirit, error) {
	bases := r.catalog.BaseNames(complexity)
	if len(bases) == 0 {
		return models.Spirit{}, fmt.Errorf("%w: complexity %q", ErrNoCandidates, complexity)
	}

	counts := make(map[string]int)
	for _, g := range history {
		for _, seat := range g.PlayersPlayed {
			counts[seat.Spirit.Name]++
		}
	}

	base := bases[r.draw(bases, counts)]
	variants := r.catalog.Variants(base)
	return variants[dice.Index(r.roller, len(variants))], nil
}

// draw returns the index of the chosen candidate
func (r *Randomizer) draw(candidates []string, counts map[string]int) int {
	weights := Weights(candidates, counts)
	if weights == nil {
		return dice.Index(r.roller, len(candidates))
	}
	return weightedIndex(r.roller, weights)
}

// Weights returns the selection weight of each candidate given play counts.
// Counts of names outside candidates still raise the maximum. A nil result
// means there is no history and the pick should be uniform.
func Weights(candidates []string, counts map[string]int) []float64 {
	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n)
	}
	if maxCount == 0 {
		return nil
	}

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		w := float64(maxCount)/float64(max(counts[c], 1)) - 1
		weights[i] = max(w, MinWeight)
	}
	return weights
}

func weightedIndex(roller dice.Roller, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	x := roller.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
