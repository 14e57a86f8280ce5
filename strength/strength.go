// Package strength implements bot difficulty levels: weaker levels get a
// smaller time budget and sometimes play a move other than the driver's
// top choice, the way the reference engine's bot levels filtered plays
// by a findability probability instead of always taking the best one.
package strength

import (
	"time"

	"lukechampine.com/frand"

	"github.com/copperhead-games/gomoku-engine/search"
)

// Level names a bot difficulty.
type Level int

const (
	Level1 Level = iota
	Level2
	Level3
	Level4
	Level5
)

// Config is the per-level behavior: how much of the caller's time
// budget this level actually uses, and the probability it plays the
// driver's single best move rather than a weighted pick among the
// runners-up.
type Config struct {
	budgetFraction float64
	bestMoveChance float64
}

// Configs mirrors the reference engine's BotConfigs table: lower
// numbers make a level play weaker and faster.
var Configs = map[Level]Config{
	Level1: {budgetFraction: 0.2, bestMoveChance: 0.2},
	Level2: {budgetFraction: 0.4, bestMoveChance: 0.45},
	Level3: {budgetFraction: 0.6, bestMoveChance: 0.7},
	Level4: {budgetFraction: 0.85, bestMoveChance: 0.9},
	Level5: {budgetFraction: 1.0, bestMoveChance: 1.0},
}

// randomFraction draws a uniform float in [0, 1) using frand's
// integer generator, the same primitive the reference engine's solver
// uses for shuffling.
func randomFraction() float64 {
	const resolution = 1 << 53
	return float64(frand.Uint64n(resolution)) / float64(resolution)
}

// Budget scales a caller-supplied time limit down for weaker levels.
func (l Level) Budget(timeLimit time.Duration) time.Duration {
	cfg, ok := Configs[l]
	if !ok {
		return timeLimit
	}
	return time.Duration(float64(timeLimit) * cfg.budgetFraction)
}

// Pick selects among the driver's candidate roots, ordered best-first,
// weighted toward the top of the list but occasionally choosing a
// weaker candidate to simulate an imperfect player. It is the caller's
// responsibility to pass roots already sorted by search.Less.
func (l Level) Pick(candidates []*search.Node) *search.Node {
	if len(candidates) == 0 {
		panic("strength: Pick called with no candidates")
	}
	cfg, ok := Configs[l]
	if !ok || len(candidates) == 1 {
		return candidates[0]
	}
	if randomFraction() < cfg.bestMoveChance {
		return candidates[0]
	}
	// Weighted pick among the runners-up, favoring ones nearer the top
	// of the list.
	weights := make([]float64, len(candidates)-1)
	total := 0.0
	for i := range weights {
		weights[i] = 1.0 / float64(i+2)
		total += weights[i]
	}
	r := randomFraction() * total
	for i, w := range weights {
		if r < w {
			return candidates[i+1]
		}
		r -= w
	}
	return candidates[len(candidates)-1]
}
