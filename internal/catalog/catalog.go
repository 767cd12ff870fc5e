package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

type rosterFile struct {
	Levels      *levelRange   `yaml:"levels"`
	Adversaries []string      `yaml:"adversaries"`
	Players     []string      `yaml:"players"`
	Spirits     []spiritEntry `yaml:"spirits"`
}

type levelRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type spiritEntry struct {
	Name       string   `yaml:"name"`
	Complexity string   `yaml:"complexity"`
	Aspects    []string `yaml:"aspects"`
}

// Catalog holds the read-only adversary, spirit and player rosters
type Catalog struct {
	adversaries []string
	minLevel    int
	maxLevel    int

	// spirits holds every selectable spirit: each base followed by its aspects
	spirits  []models.Spirit
	variants map[string][]models.Spirit

	players []models.Player
}

// Default returns the catalog built from the embedded roster
func Default() (*Catalog, error) {
	return Parse(defaultRoster)
}

// Load reads a roster file, or the embedded roster when path is empty
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from roster YAML. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var rf rosterFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("parse roster yaml: %w", err)
	}

	c := &Catalog{
		minLevel: models.MinAdversaryLevel,
		maxLevel: models.MaxAdversaryLevel,
		variants: make(map[string][]models.Spirit),
	}

	if rf.Levels != nil {
		if !models.ValidLevel(rf.Levels.Min) || !models.ValidLevel(rf.Levels.Max) || rf.Levels.Min > rf.Levels.Max {
			return nil, fmt.Errorf("invalid level range %d-%d", rf.Levels.Min, rf.Levels.Max)
		}
		c.minLevel, c.maxLevel = rf.Levels.Min, rf.Levels.Max
	}

	if len(rf.Adversaries) == 0 {
		return nil, errors.New("roster has no adversaries")
	}
	for _, name := range rf.Adversaries {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("blank adversary name")
		}
		if slices.Contains(c.adversaries, name) {
			return nil, fmt.Errorf("duplicate adversary %q", name)
		}
		c.adversaries = append(c.adversaries, name)
	}
	slices.Sort(c.adversaries)

	if len(rf.Spirits) == 0 {
		return nil, errors.New("roster has no spirits")
	}
	entries := slices.Clone(rf.Spirits)
	slices.SortFunc(entries, func(a, b spiritEntry) int { return strings.Compare(a.Name, b.Name) })
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errors.New("blank spirit name")
		}
		if _, ok := c.variants[name]; ok {
			return nil, fmt.Errorf("duplicate spirit %q", name)
		}
		complexity, err := models.ParseComplexity(entry.Complexity)
		if err != nil {
			return nil, fmt.Errorf("spirit %q: %w", name, err)
		}
		base := models.Spirit{Name: name, Complexity: complexity}
		variants := []models.Spirit{base}
		for _, aspect := range entry.Aspects {
			aspect = strings.TrimSpace(aspect)
			if aspect == "" {
				return nil, fmt.Errorf("spirit %q has a blank aspect", name)
			}
			variants = append(variants, models.Spirit{Name: name, Complexity: complexity, Aspect: aspect})
		}
		c.variants[name] = variants
		c.spirits = append(c.spirits, variants...)
	}

	names := make([]string, 0, len(rf.Players))
	for _, name := range rf.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("blank player name")
		}
		if slices.Contains(names, name) {
			return nil, fmt.Errorf("duplicate player %q", name)
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c.players = append(c.players, models.Player{Name: name})
	}

	return c, nil
}

// AdversaryNames returns the adversary names in alphabetical order
func (c *Catalog) AdversaryNames() []string {
	return slices.Clone(c.adversaries)
}

// HasAdversary reports whether name is a known adversary
func (c *Catalog) HasAdversary(name string) bool {
	return slices.Contains(c.adversaries, name)
}

// LevelRange returns the lowest and highest selectable adversary level
func (c *Catalog) LevelRange() (int, int) {
	return c.minLevel, c.maxLevel
}

// ValidLevel reports whether level is selectable
func (c *Catalog) ValidLevel(level int) bool {
	return level >= c.minLevel && level <= c.maxLevel
}

// Spirits returns every selectable spirit, aspects included.
// A non-empty complexity restricts the result to that rating.
func (c *Catalog) Spirits(complexity models.Complexity) []models.Spirit {
	out := make([]models.Spirit, 0, len(c.spirits))
	for _, s := range c.spirits {
		if complexity == "" || s.Complexity == complexity {
			out = append(out, s)
		}
	}
	return out
}

// BaseNames returns the base spirit names in alphabetical order, optionally
// restricted to one complexity
func (c *Catalog) BaseNames(complexity models.Complexity) []string {
	var out []string
	for _, s := range c.spirits {
		if s.Aspect != "" {
			continue
		}
		if complexity == "" || s.Complexity == complexity {
			out = append(out, s.Name)
		}
	}
	return out
}

// Variants returns the base form of a spirit followed by its aspects
func (c *Catalog) Variants(base string) []models.Spirit {
	return slices.Clone(c.variants[base])
}

// FindSpirit looks up a spirit by base name and aspect. Matching is
// case-insensitive; the returned spirit carries the catalog spelling.
func (c *Catalog) FindSpirit(name, aspect string) (models.Spirit, bool) {
	for _, s := range c.spirits {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) && strings.EqualFold(s.Aspect, strings.TrimSpace(aspect)) {
			return s, true
		}
	}
	return models.Spirit{}, false
}

// Players returns the static player roster in alphabetical order
func (c *Catalog) Players() []models.Player {
	return slices.Clone(c.players)
}

// HasPlayer reports whether name is on the static roster
func (c *Catalog) HasPlayer(name string) bool {
	return slices.Contains(c.players, models.Player{Name: name})
}
