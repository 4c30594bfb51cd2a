package ui

import (
	"connect4/config"
	"connect4/engine"
	"connect4/game"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

func newBoardUI(t *testing.T) *BoardUI {
	t.Helper()
	cfg := config.DefaultConfig
	board := NewBoardUI(tview.NewApplication(), tview.NewPages(), &cfg, engine.NewGameSession(), tview.NewTextView())
	t.Cleanup(board.Close)
	return board
}

func TestBoardUI(t *testing.T) {
	t.Run("cursor starts in the centre and stays on the board", func(t *testing.T) {
		board := newBoardUI(t)
		require.Equal(t, 3, board.Cursor())

		for i := 0; i < 10; i++ {
			board.MoveCursor(1)
		}
		require.Equal(t, game.DefaultWidth-1, board.Cursor())

		board.handleKey(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
		board.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
		require.Equal(t, game.DefaultWidth-3, board.Cursor())
	})

	t.Run("unhandled keys pass through", func(t *testing.T) {
		board := newBoardUI(t)
		event := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)

		require.Equal(t, event, board.handleKey(event))
	})

	t.Run("out of range column is reported", func(t *testing.T) {
		board := newBoardUI(t)

		board.PlayColumn(9)

		require.Equal(t, "Columns are 1 to 7", board.message)
		require.False(t, board.thinking)
		require.Zero(t, board.board.Discs())
	})

	t.Run("symbols from the theme", func(t *testing.T) {
		board := newBoardUI(t)
		cfg := config.DefaultConfig
		cfg.Theme.Symbols.Human = "X"

		board.SetConfig(&cfg)

		require.Equal(t, 'X', board.symbols[game.PlayerB])
	})
}

func TestResultText(t *testing.T) {
	require.Equal(t, "You win!", resultText(game.Outcome{Status: game.Win, Winner: game.PlayerB}, game.PlayerB))
	require.Equal(t, "Engine wins", resultText(game.Outcome{Status: game.Win, Winner: game.PlayerA}, game.PlayerB))
	require.Equal(t, "Draw: the board is full", resultText(game.Outcome{Status: game.Draw}, game.PlayerB))
}
