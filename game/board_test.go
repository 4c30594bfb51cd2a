package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// requireFillMatchesCells checks that every fill counter equals the discs in its column
// and that the discs sit contiguously at the bottom.
func requireFillMatchesCells(t *testing.T, b *Board) {
	t.Helper()
	for col := 0; col < b.Width(); col++ {
		discs := 0
		for row := 0; row < b.Height(); row++ {
			if b.Cell(row, col) != Empty {
				discs++
				continue
			}
			require.Zero(t, discs, "column %d has a gap above row %d", col, row)
		}
		require.Equal(t, discs, b.ColumnFill(col), "fill counter of column %d", col)
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, DefaultWidth, b.Width())
	require.Equal(t, DefaultHeight, b.Height())
	require.Zero(t, b.Discs())
	require.False(t, b.IsFull())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.PlayableColumns())
}

func TestNewBoardSize(t *testing.T) {
	t.Run("custom dimensions", func(t *testing.T) {
		b, err := NewBoardSize(9, 4)
		require.NoError(t, err)
		require.Equal(t, 9, b.Width())
		require.Equal(t, 4, b.Height())
	})

	t.Run("rejects empty dimensions", func(t *testing.T) {
		_, err := NewBoardSize(0, 6)
		require.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("discs stack from the bottom", func(t *testing.T) {
		b := NewBoard()

		row, err := b.ApplyMove(3, PlayerB)
		require.NoError(t, err)
		require.Equal(t, DefaultHeight-1, row, "First disc should land on the bottom row")

		row, err = b.ApplyMove(3, PlayerA)
		require.NoError(t, err)
		require.Equal(t, DefaultHeight-2, row, "Second disc should land on top of the first")

		require.Equal(t, PlayerB, b.Cell(5, 3))
		require.Equal(t, PlayerA, b.Cell(4, 3))
		require.Equal(t, 2, b.ColumnFill(3))
		requireFillMatchesCells(t, b)
	})

	t.Run("full column is rejected without state change", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < DefaultHeight; i++ {
			_, err := b.ApplyMove(0, PlayerA)
			require.NoError(t, err)
		}
		before := b.Copy()

		require.False(t, b.ColumnIsPlayable(0))
		row, err := b.ApplyMove(0, PlayerB)
		require.ErrorIs(t, err, ErrColumnFull)
		require.Equal(t, NoMove, row)
		require.True(t, before.Equal(b), "Rejected move should not change the board")
	})

	t.Run("out of range column", func(t *testing.T) {
		b := NewBoard()
		_, err := b.ApplyMove(DefaultWidth, PlayerA)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
		_, err = b.ApplyMove(-1, PlayerA)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
		require.False(t, b.ColumnIsPlayable(-1))
	})

	t.Run("empty is not a player", func(t *testing.T) {
		b := NewBoard()
		_, err := b.ApplyMove(0, Empty)
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})
}

func TestApplyUndoRoundTrip(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		"...A...",
		"..BB...",
		".AAB...",
		"BABAB..",
	)
	before := b.Copy()

	type placed struct{ col, row int }
	var stack []placed
	player := PlayerA
	for _, col := range []int{0, 6, 3, 3, 5, 1, 6, 6, 2} {
		row, err := b.ApplyMove(col, player)
		require.NoError(t, err)
		stack = append(stack, placed{col, row})
		requireFillMatchesCells(t, b)
		player = player.Opponent()
	}
	for i := len(stack) - 1; i >= 0; i-- {
		b.UndoMove(stack[i].col, stack[i].row)
		requireFillMatchesCells(t, b)
	}

	require.True(t, before.Equal(b), "Undoing every move should restore the board")
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	player := PlayerA
	for col := 0; col < DefaultWidth; col++ {
		for i := 0; i < DefaultHeight; i++ {
			require.False(t, b.IsFull())
			_, err := b.ApplyMove(col, player)
			require.NoError(t, err)
			player = player.Opponent()
		}
	}

	require.True(t, b.IsFull())
	require.Empty(t, b.PlayableColumns())
	require.Equal(t, DefaultWidth*DefaultHeight, b.Discs())
}

func TestReset(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"...A...",
		"..BBA..",
	)

	b.Reset()

	require.True(t, NewBoard().Equal(b))
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	_, err := c.ApplyMove(2, PlayerA)
	require.NoError(t, err)

	require.Zero(t, b.Discs(), "Original board should not see moves applied to a copy")
	require.False(t, b.Equal(c))
}

func TestParseBoard(t *testing.T) {
	t.Run("rejects floating discs", func(t *testing.T) {
		_, err := ParseBoard(
			"A..",
			"...",
		)
		require.Error(t, err)
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard(
			"...",
			"..",
		)
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("renders back", func(t *testing.T) {
		b := mustParse(t,
			"...",
			"B..",
			"BA.",
		)
		require.Equal(t, ". . .\nB . .\nB A .\n1 2 3\n", b.String())
	})
}
