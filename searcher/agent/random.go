package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"context"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal columns. The
// same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, b *game.Board, player game.Player) (int, metrics.SearchMetric, error) {
	start := time.Now()
	columns := b.PlayableColumns()
	if len(columns) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoLegalMove
	}
	column := columns[a.rng.Intn(len(columns))]
	return column, metrics.SearchMetric{
		Duration: time.Since(start),
		Decision: metrics.DecisionRandom,
	}, nil
}
