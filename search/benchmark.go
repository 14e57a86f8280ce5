package search

import (
	"context"
	"time"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
)

// BenchmarkResult reports how many center-opening decide runs a Driver
// can complete against an empty board within a fixed wall-clock budget,
// the way the original engine's perf mode measured raw throughput.
type BenchmarkResult struct {
	Runs           int
	NodesEvaluated uint64
	Elapsed        time.Duration
}

// Benchmark repeatedly decides a center-opening move on a fresh empty
// board of the given size until timeBudget elapses, accumulating node
// counts across every run.
func Benchmark(ctx context.Context, d *Driver, size int, perRun time.Duration, timeBudget time.Duration) (BenchmarkResult, error) {
	deadline := time.Now().Add(timeBudget)
	var result BenchmarkResult
	start := time.Now()

	for time.Now().Before(deadline) {
		b, err := board.NewEmpty(size)
		if err != nil {
			return result, err
		}
		_, stats, err := d.Decide(ctx, b, player.X, perRun)
		if err != nil {
			return result, err
		}
		result.Runs++
		result.NodesEvaluated += stats.NodesEvaluated
	}
	result.Elapsed = time.Since(start)
	return result, nil
}
