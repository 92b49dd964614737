package flappy

import "math"

// Difficulty curve constants. The curve is intentionally not configurable.
const (
	maxDifficultyScore = 30.0 // Score at which the factor saturates
	baseGap            = 180  // Gap at factor 0
	gapReduction       = 60   // Gap removed at factor 1
	minSpeedBound      = 0.5  // Oscillation speed bound at factor 0
	speedBoundSpan     = 1.5  // Added to the bound at factor 1
	oscillationStart   = 10.0 // Pipes never oscillate at or below this score
	oscillationBand    = 10.0 // Width of alternating oscillate/pinned bands
	oscillationOffset  = 6.0  // Band phase offset
)

// DifficultyState is the difficulty derived from a score.
type DifficultyState struct {
	Factor             float64 // 0 (easy) to 1 (max chaos)
	Gap                int     // Vertical gap between the pipes of a new pair
	SpeedBound         float64 // Upper bound of oscillation speed magnitude
	OscillationEnabled bool    // Whether pipes move vertically
}

// Difficulty derives the full difficulty state from a score.
func Difficulty(score float64) DifficultyState {
	return DifficultyState{
		Factor:             DifficultyFactor(score),
		Gap:                CurrentGap(score),
		SpeedBound:         SpeedBound(score),
		OscillationEnabled: OscillationEnabled(score),
	}
}

// DifficultyFactor scales from 0 at score 0 to 1 at score 30 and saturates.
// Negative scores are treated as 0.
func DifficultyFactor(score float64) float64 {
	if score <= 0 || math.IsNaN(score) {
		return 0
	}
	return math.Min(1, score/maxDifficultyScore)
}

// CurrentGap returns the gap for pairs spawned at this score, in [120, 180].
func CurrentGap(score float64) int {
	return int(baseGap - DifficultyFactor(score)*gapReduction)
}

// SpeedBound returns the oscillation speed bound, in [0.5, 2.0].
func SpeedBound(score float64) float64 {
	return minSpeedBound + DifficultyFactor(score)*speedBoundSpan
}

// OscillationEnabled reports whether pipes oscillate at this score.
// Above 10 points the behavior alternates in 10-point bands.
func OscillationEnabled(score float64) bool {
	if score <= oscillationStart || math.IsNaN(score) || math.IsInf(score, 0) {
		return false
	}
	cycle := int64(math.Floor((score - oscillationOffset) / oscillationBand))
	return cycle%2 == 0
}
