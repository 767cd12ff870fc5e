package models

import (
	"fmt"
	"strings"
)

const (
	// MinAdversaryLevel is the lowest difficulty level an adversary can be played at
	MinAdversaryLevel = 0

	// MaxAdversaryLevel is the highest difficulty level an adversary can be played at
	MaxAdversaryLevel = 6
)

// Adversary represents the invading nation and the level it was played at
type Adversary struct {
	// Name is the adversary name, e.g. "Brandenburg-Prussia"
	Name string `json:"name"`

	// Level is the difficulty level
	Level int `json:"level"`
}

// String renders the adversary compactly as "[level]FirstWord"
func (a Adversary) String() string {
	first := strings.Split(strings.ReplaceAll(a.Name, "-", " "), " ")[0]
	return fmt.Sprintf("[%d]%s", a.Level, first)
}

// DisplayName returns the adversary name with hyphens replaced by spaces
func (a Adversary) DisplayName() string {
	return strings.ReplaceAll(a.Name, "-", " ")
}

// Label is the key adversary statistics are grouped under
func (a Adversary) Label() string {
	return fmt.Sprintf("%s (Lvl %d)", a.Name, a.Level)
}

// ValidLevel reports whether level is within the playable range
func ValidLevel(level int) bool {
	return level >= MinAdversaryLevel && level <= MaxAdversaryLevel
}
