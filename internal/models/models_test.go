package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdversary_Rendering(t *testing.T) {
	a := Adversary{Name: "Brandenburg-Prussia", Level: 4}
	assert.Equal(t, "[4]Brandenburg", a.String())
	assert.Equal(t, "Brandenburg Prussia", a.DisplayName())
	assert.Equal(t, "Brandenburg-Prussia (Lvl 4)", a.Label())

	france := Adversary{Name: "France (Plantation Colony)", Level: 2}
	assert.Equal(t, "[2]France", france.String())
}

func TestSpirit_Rendering(t *testing.T) {
	base := Spirit{Name: "Lightning's Swift Strike", Complexity: ComplexityLow}
	aspect := Spirit{Name: "Lightning's Swift Strike", Complexity: ComplexityLow, Aspect: "Pandemonium"}

	assert.Equal(t, "Lightning's Swift Strike", base.String())
	assert.Equal(t, "Lightning's Swift Strike (Pandemonium)", aspect.String())
	assert.Equal(t, base, aspect.Base())
	assert.NotEqual(t, base, aspect)
}

func TestParseComplexity(t *testing.T) {
	for _, in := range []string{"Very High", "VeryHigh", "very_high", "VERY HIGH"} {
		c, err := ParseComplexity(in)
		require.NoError(t, err, in)
		assert.Equal(t, ComplexityVeryHigh, c)
	}
	c, err := ParseComplexity("low")
	require.NoError(t, err)
	assert.Equal(t, ComplexityLow, c)

	_, err = ParseComplexity("trivial")
	assert.Error(t, err)
}

func TestParseOutcome(t *testing.T) {
	for in, want := range map[string]Outcome{
		"won": OutcomeWon, "Win": OutcomeWon, "lost": OutcomeLost, "loss": OutcomeLost,
		"desync": OutcomeDesync, "": OutcomePending,
	} {
		got, err := ParseOutcome(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOutcome("draw")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = ParseDate("2024-02-29T23:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestDate_Compare(t *testing.T) {
	early := Date{Year: 2024, Month: 12, Day: 31}
	late := Date{Year: 2025, Month: 1, Day: 1}
	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.Equal(t, 0, early.Compare(early))
	assert.True(t, Date{}.IsZero())
}

func TestGroupStats_Record(t *testing.T) {
	var s GroupStats
	s.Record(OutcomeWon)
	s.Record(OutcomeLost)
	s.Record(OutcomeLost)
	s.Record(OutcomeDesync)

	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 4, s.Played)
	assert.Equal(t, 33.3, s.WinRate)
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(0, 0))
	assert.Equal(t, 100.0, WinRate(3, 0))
	assert.Equal(t, 66.7, WinRate(2, 1))
	assert.Equal(t, 50.0, WinRate(1, 1))
}
