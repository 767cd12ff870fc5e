package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Complexity is the published difficulty rating of a spirit
type Complexity string

const (
	ComplexityLow      Complexity = "Low"
	ComplexityModerate Complexity = "Moderate"
	ComplexityHigh     Complexity = "High"
	ComplexityVeryHigh Complexity = "Very High"
)

// Complexities lists every rating from easiest to hardest
var Complexities = []Complexity{
	ComplexityLow,
	ComplexityModerate,
	ComplexityHigh,
	ComplexityVeryHigh,
}

// Valid reports whether c is a known rating
func (c Complexity) Valid() bool {
	for _, known := range Complexities {
		if c == known {
			return true
		}
	}
	return false
}

// ParseComplexity parses a rating case-insensitively. "VeryHigh" and
// "very_high" are accepted for "Very High".
func ParseComplexity(s string) (Complexity, error) {
	norm := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s))
	for _, known := range Complexities {
		if strings.ToLower(strings.ReplaceAll(string(known), " ", "")) == norm {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown complexity %q", s)
}

// Spirit represents a playable spirit, optionally in one of its aspects.
// A spirit with an aspect is a distinct selectable entity from its base form.
type Spirit struct {
	// Name is the base spirit name
	Name string

	// Complexity is the spirit's rating
	Complexity Complexity

	// Aspect is the aspect name, empty for the base spirit
	Aspect string
}

// String renders the spirit as "Name" or "Name (Aspect)"
func (s Spirit) String() string {
	if s.Aspect == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Aspect)
}

// Base returns the spirit without its aspect
func (s Spirit) Base() Spirit {
	s.Aspect = ""
	return s
}

type wireSpirit struct {
	Name       string     `json:"name"`
	Complexity Complexity `json:"complexity"`
	Aspect     *string    `json:"aspect"`
}

// MarshalJSON writes the aspect as null when the spirit has none
func (s Spirit) MarshalJSON() ([]byte, error) {
	w := wireSpirit{Name: s.Name, Complexity: s.Complexity}
	if s.Aspect != "" {
		aspect := s.Aspect
		w.Aspect = &aspect
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads a spirit document
func (s *Spirit) UnmarshalJSON(data []byte) error {
	var w wireSpirit
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Name = w.Name
	s.Complexity = w.Complexity
	s.Aspect = ""
	if w.Aspect != nil {
		s.Aspect = *w.Aspect
	}
	return nil
}
