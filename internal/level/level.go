// Package level implements the XP-to-level curve used by reach_level quests.
package level

import "math"

// Curve parameters: the cumulative XP needed for level N grows as
// BaseXP * N^Exponent.
const (
	BaseXP   = 100.0
	Exponent = 1.5

	// maxIterationLevel bounds the search so a corrupt XP total cannot spin.
	maxIterationLevel = 1000
)

// Curve converts XP totals to levels. The zero value is not usable; call New.
type Curve struct {
	baseXP   float64
	exponent float64
}

// New returns the platform's standard level curve.
func New() *Curve {
	return &Curve{baseXP: BaseXP, exponent: Exponent}
}

// LevelForXP determines the level from total XP.
func (c *Curve) LevelForXP(totalXP float64) int {
	level, _ := c.levelAndNextXP(totalXP)
	return level
}

// XPForLevel returns the cumulative XP required to reach a level from level 0.
func (c *Curve) XPForLevel(level int) float64 {
	if level <= 0 {
		return 0
	}

	cumulative := 0.0
	for i := 1; i <= level; i++ {
		cumulative += c.baseXP * math.Pow(float64(i), c.exponent)
	}
	return cumulative
}

// XPProgress returns the current level and the XP still needed for the next.
func (c *Curve) XPProgress(currentXP float64) (currentLevel int, xpToNext float64) {
	level, xpForNext := c.levelAndNextXP(currentXP)
	return level, xpForNext - currentXP
}

// levelAndNextXP computes the level and the cumulative XP required for the
// NEXT level in a single pass.
func (c *Curve) levelAndNextXP(totalXP float64) (int, float64) {
	if totalXP <= 0 {
		return 0, c.baseXP
	}

	level := 0
	cumulative := 0.0

	for level < maxIterationLevel {
		next := level + 1
		xpForNext := c.baseXP * math.Pow(float64(next), c.exponent)

		if cumulative+xpForNext > totalXP {
			return level, cumulative + xpForNext
		}
		cumulative += xpForNext
		level = next
	}

	next := level + 1
	return level, cumulative + c.baseXP*math.Pow(float64(next), c.exponent)
}
