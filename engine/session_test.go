package engine

import (
	"connect4/game"
	"connect4/searcher"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Ties go to the lowest column, so the engine always plays column 0 unless it can win
// or has to block.
func flat(*game.Board, game.Player, game.Player) float64 { return 0 }

// spread rewards the player for every column it occupies, so the engine plays the
// lowest column it has not used yet.
func spread(b *game.Board, player, _ game.Player) float64 {
	score := 0.0
	for column := 0; column < b.Width(); column++ {
		for row := 0; row < b.Height(); row++ {
			if b.Cell(row, column) == player {
				score++
				break
			}
		}
	}
	return score
}

func TestGameSession(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		g := NewGameSession()

		require.Equal(t, game.PlayerB, g.Turn(), "Human should move first")
		require.Equal(t, game.PlayerA, g.EnginePlayer())
		require.Equal(t, game.PlayerB, g.HumanPlayer())
		require.True(t, g.Board().Equal(game.NewBoard()))
		require.Empty(t, g.Moves())
	})

	t.Run("column fills up", func(t *testing.T) {
		s := searcher.NewSearcher(searcher.WithDepth(1), searcher.WithEvaluationFn(spread))
		g := NewGameSession(WithSearcher(s))

		// Engine replies 0, 1, block on 3, 2, 4
		expected := []int{0, 1, 3, 2, 4}
		for i, column := range expected {
			_, outcome, err := g.ApplyHumanMove(3)
			require.NoError(t, err)
			require.False(t, outcome.Over())

			played, _, outcome, err := g.ApplyEngineMove(ctx)
			require.NoError(t, err)
			require.Equal(t, column, played, "Engine reply %d", i+1)
			require.False(t, outcome.Over())
		}

		board := g.Board()
		require.False(t, board.ColumnIsPlayable(3))
		require.Equal(t, board.Height(), board.ColumnFill(3))
		moves := g.Moves()

		row, outcome, err := g.ApplyHumanMove(3)

		require.ErrorIs(t, err, game.ErrColumnFull)
		require.Equal(t, game.NoMove, row)
		require.Equal(t, game.InProgress, outcome.Status)
		require.True(t, board.Equal(g.Board()), "Rejected move should not change the board")
		require.Equal(t, moves, g.Moves())
		require.Equal(t, game.PlayerB, g.Turn())

		_, _, err = g.ApplyHumanMove(0)
		require.NoError(t, err)
	})

	t.Run("turn order", func(t *testing.T) {
		g := NewGameSession()

		_, _, _, err := g.ApplyEngineMove(ctx)
		require.ErrorIs(t, err, ErrNotYourTurn)

		row, _, err := g.ApplyHumanMove(2)
		require.NoError(t, err)
		require.Equal(t, 5, row)
		require.Equal(t, game.PlayerA, g.Turn())

		_, _, err = g.ApplyHumanMove(2)
		require.ErrorIs(t, err, ErrNotYourTurn)
		require.Len(t, g.Moves(), 1)
	})

	t.Run("out of range", func(t *testing.T) {
		g := NewGameSession()

		_, _, err := g.ApplyHumanMove(7)

		require.ErrorIs(t, err, game.ErrColumnOutOfRange)
		require.Empty(t, g.Moves())
		require.Equal(t, game.PlayerB, g.Turn())
	})

	t.Run("no moves after the game is over", func(t *testing.T) {
		s := searcher.NewSearcher(searcher.WithDepth(1), searcher.WithEvaluationFn(flat))
		g := NewGameSession(WithSearcher(s), WithEngineFirst(true))
		require.Equal(t, game.PlayerA, g.Turn())

		for i := 0; i < 3; i++ {
			column, _, _, err := g.ApplyEngineMove(ctx)
			require.NoError(t, err)
			require.Equal(t, 0, column)
			_, _, err = g.ApplyHumanMove(6)
			require.NoError(t, err)
		}

		column, row, outcome, err := g.ApplyEngineMove(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, column)
		require.Equal(t, 2, row)
		require.Equal(t, game.Outcome{Status: game.Win, Winner: game.PlayerA}, outcome)

		_, _, err = g.ApplyHumanMove(1)
		require.ErrorIs(t, err, ErrGameOver)
		_, _, _, err = g.ApplyEngineMove(ctx)
		require.ErrorIs(t, err, ErrGameOver)

		outcome, err = g.Outcome()
		require.NoError(t, err)
		require.Equal(t, game.PlayerA, outcome.Winner)
	})

	t.Run("reset starts a new game", func(t *testing.T) {
		g := NewGameSession(WithEngineFirst(true))
		id := g.ID()
		_, _, _, err := g.ApplyEngineMove(ctx)
		require.NoError(t, err)

		g.Reset()

		require.NotEqual(t, id, g.ID())
		require.Empty(t, g.Moves())
		require.Equal(t, game.PlayerA, g.Turn())
		require.True(t, g.Board().Equal(game.NewBoard()))
	})

	t.Run("board is a copy", func(t *testing.T) {
		g := NewGameSession()
		b := g.Board()
		_, err := b.ApplyMove(0, game.PlayerA)
		require.NoError(t, err)

		require.Zero(t, g.Board().Discs())
	})

	t.Run("board size", func(t *testing.T) {
		g := NewGameSession(WithBoardSize(5, 4))
		require.Equal(t, 5, g.Board().Width())
		require.Equal(t, 4, g.Board().Height())

		g = NewGameSession(WithBoardSize(0, 6))
		require.Equal(t, game.DefaultWidth, g.Board().Width())
	})
}
