package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	c := New()

	tests := []struct {
		xp   float64
		want int
	}{
		{0, 0},
		{-50, 0},
		{99, 0},
		{100, 1}, // level 1 costs exactly BaseXP
		{382, 1},
		{383, 2}, // 100 + 100*2^1.5 ≈ 382.8
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.LevelForXP(tt.xp), "XP: %f", tt.xp)
	}
}

func TestXPForLevelMonotonic(t *testing.T) {
	c := New()

	assert.Zero(t, c.XPForLevel(0))
	assert.Zero(t, c.XPForLevel(-3))

	prev := 0.0
	for lvl := 1; lvl <= 50; lvl++ {
		cur := c.XPForLevel(lvl)
		assert.Greater(t, cur, prev, "level %d", lvl)
		prev = cur
	}
}

func TestRoundTripLevelAndXP(t *testing.T) {
	c := New()

	for lvl := 0; lvl <= 30; lvl++ {
		xp := c.XPForLevel(lvl)
		assert.Equal(t, lvl, c.LevelForXP(xp), "level %d at its own threshold", lvl)
	}
}

func TestXPProgress(t *testing.T) {
	c := New()

	lvl, toNext := c.XPProgress(0)
	assert.Equal(t, 0, lvl)
	assert.InDelta(t, BaseXP, toNext, 1e-9)

	lvl, toNext = c.XPProgress(c.XPForLevel(3))
	assert.Equal(t, 3, lvl)
	assert.Greater(t, toNext, 0.0)
}
