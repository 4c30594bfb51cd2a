package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"context"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns an agent playing the searcher's win, block and minimax choices.
func NewMinimaxAgent(s *searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(ctx context.Context, b *game.Board, player game.Player) (int, metrics.SearchMetric, error) {
	return a.searcher.FindMove(ctx, b, player, player.Opponent())
}
