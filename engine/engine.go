package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
)

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run(ctx context.Context) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
