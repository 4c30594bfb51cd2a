package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
)

type Agent interface {
	// FindMove returns the column to play for player and performance metrics (if collected) from the search
	FindMove(ctx context.Context, b *game.Board, player game.Player) (int, metrics.SearchMetric, error)
}
