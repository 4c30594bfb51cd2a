package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ChooseMove returns the engine's reply: an immediate win if one exists, otherwise a
// block of the human's immediate win, otherwise the minimax choice.
func (s *Searcher) ChooseMove(ctx context.Context, b *game.Board, enginePlayer, humanPlayer game.Player) (int, error) {
	column, _, err := s.FindMove(ctx, b, enginePlayer, humanPlayer)
	return column, err
}

// FindMove is ChooseMove returning the metrics of the search as well.
func (s *Searcher) FindMove(ctx context.Context, b *game.Board, enginePlayer, humanPlayer game.Player) (int, metrics.SearchMetric, error) {
	s.metrics.Start(s.depth, s.evaluatorName)

	columns := b.PlayableColumns()
	if len(columns) == 0 {
		return game.NoMove, s.metrics.Complete(), ErrNoLegalMove
	}

	column, err := winningColumn(b, columns, enginePlayer)
	if err != nil {
		return game.NoMove, s.metrics.Complete(), err
	}
	if column != game.NoMove {
		return s.decide(column, metrics.DecisionWin)
	}

	column, err = winningColumn(b, columns, humanPlayer)
	if err != nil {
		return game.NoMove, s.metrics.Complete(), err
	}
	if column != game.NoMove {
		return s.decide(column, metrics.DecisionBlock)
	}

	column, score, err := s.minimax(ctx, b, s.depth, enginePlayer, humanPlayer, enginePlayer)
	if err != nil {
		return game.NoMove, s.metrics.Complete(), err
	}
	log.Debug().Int("column", column).Float64("score", score).Msg("minimax result")
	return s.decide(column, metrics.DecisionSearch)
}

func (s *Searcher) decide(column int, decision metrics.Decision) (int, metrics.SearchMetric, error) {
	s.metrics.SetDecision(decision)
	metric := s.metrics.Complete()
	log.Debug().
		Int("column", column).
		Str("decision", string(decision)).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Dur("duration", metric.Duration).
		Msg("chose move")
	return column, metric, nil
}

// winningColumn returns the lowest playable column where a disc of player wins on the
// spot, or game.NoMove.
func winningColumn(b *game.Board, columns []int, player game.Player) (int, error) {
	for _, column := range columns {
		row, err := b.ApplyMove(column, player)
		if err != nil {
			return game.NoMove, fmt.Errorf("trying column %d: %w", column, err)
		}
		winner, err := game.CheckWin(b)
		b.UndoMove(column, row)
		if err != nil {
			return game.NoMove, err
		}
		if winner == player {
			return column, nil
		}
	}
	return game.NoMove, nil
}
