package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"fmt"
)

// Minimax searches depth plies ahead with toMove maximizing and returns the best
// column and its score. Columns are tried in ascending order and only a strictly
// better score replaces the best, so ties go to the lowest column. When depth is 0,
// the board is full or already won it returns game.NoMove with the evaluation of the
// board.
func (s *Searcher) Minimax(ctx context.Context, b *game.Board, depth int, toMove, other game.Player) (int, float64, error) {
	s.metrics.Start(depth, s.evaluatorName)
	column, score, err := s.minimax(ctx, b, depth, toMove, other, toMove)
	s.metrics.SetDecision(metrics.DecisionSearch)
	return column, score, err
}

// minimax maximizes on root's turns and minimizes on the opponent's. Leaves are
// evaluated from root's perspective.
func (s *Searcher) minimax(ctx context.Context, b *game.Board, depth int, toMove, other, root game.Player) (int, float64, error) {
	winner, err := game.CheckWin(b)
	if err != nil {
		return game.NoMove, 0, err
	}
	columns := b.PlayableColumns()
	if depth == 0 || len(columns) == 0 || winner != game.Empty {
		s.metrics.AddLeaf()
		if toMove == root {
			return game.NoMove, s.evaluate(b, toMove, other), nil
		}
		return game.NoMove, s.evaluate(b, other, toMove), nil
	}
	s.metrics.AddNode()

	maximizing := toMove == root
	bestColumn, bestScore := game.NoMove, 0.0
	for _, column := range columns {
		if err := ctx.Err(); err != nil {
			return game.NoMove, 0, err
		}

		row, err := b.ApplyMove(column, toMove)
		if err != nil {
			return game.NoMove, 0, fmt.Errorf("searching column %d: %w", column, err)
		}
		_, score, err := s.minimax(ctx, b, depth-1, other, toMove, root)
		b.UndoMove(column, row)
		if err != nil {
			return game.NoMove, 0, err
		}

		if bestColumn == game.NoMove ||
			(maximizing && score > bestScore) ||
			(!maximizing && score < bestScore) {
			bestColumn, bestScore = column, score
		}
	}

	return bestColumn, bestScore, nil
}
