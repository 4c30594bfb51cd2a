package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Board represents the grid at any point of a game. Cells are stored row-major with
// row 0 at the top; fill tracks the number of discs per column.
type Board struct {
	width  int
	height int
	cells  []Player // Indexed row*width + col
	fill   []int    // Discs per column, indexed by column
}

// NewBoard returns an empty standard 7x6 board.
func NewBoard() *Board {
	b, _ := NewBoardSize(DefaultWidth, DefaultHeight)
	return b
}

// NewBoardSize returns an empty board with the given dimensions.
func NewBoardSize(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Player, width*height),
		fill:   make([]int, width),
	}, nil
}

// ParseBoard builds a board from rows written top row first, using 'A' and 'B' for
// discs and '.' for empty cells. Discs must obey gravity.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	b, err := NewBoardSize(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, i, len(rows[i]), b.width)
		}
		for col, ch := range rows[i] {
			var player Player
			switch ch {
			case '.':
				continue
			case 'A':
				player = PlayerA
			case 'B':
				player = PlayerB
			default:
				return nil, fmt.Errorf("%w: %q at row %d", ErrInvalidPlayer, ch, i)
			}
			row, err := b.ApplyMove(col, player)
			if err != nil {
				return nil, err
			}
			if row != i {
				return nil, fmt.Errorf("disc at row %d column %d is not supported", i, col)
			}
		}
	}
	return b, nil
}

// copy of the Board.
func (b *Board) Copy() *Board {
	cellsCopy := make([]Player, len(b.cells))
	copy(cellsCopy, b.cells)

	fillCopy := make([]int, len(b.fill))
	copy(fillCopy, b.fill)

	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cellsCopy,
		fill:   fillCopy,
	}
}

// Equal reports whether both boards have the same dimensions, cells and fill counters.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	for c := range b.fill {
		if b.fill[c] != other.fill[c] {
			return false
		}
	}
	return true
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Cell returns the content at (row, col), or Empty outside the board.
func (b *Board) Cell(row, col int) Player {
	if !b.inside(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

// ColumnFill returns the number of discs in column c.
func (b *Board) ColumnFill(c int) int {
	if c < 0 || c >= b.width {
		return 0
	}
	return b.fill[c]
}

// Discs returns the number of discs on the board.
func (b *Board) Discs() int {
	total := 0
	for _, n := range b.fill {
		total += n
	}
	return total
}

func (b *Board) ColumnIsPlayable(c int) bool {
	return c >= 0 && c < b.width && b.fill[c] < b.height
}

// PlayableColumns returns the columns that accept a disc, in ascending order.
func (b *Board) PlayableColumns() []int {
	columns := make([]int, 0, b.width)
	for c := 0; c < b.width; c++ {
		if b.fill[c] < b.height {
			columns = append(columns, c)
		}
	}
	return columns
}

func (b *Board) IsFull() bool {
	for _, n := range b.fill {
		if n < b.height {
			return false
		}
	}
	return true
}

// ApplyMove drops a disc for player into column c and returns the row it landed on.
// The board is unchanged when an error is returned.
func (b *Board) ApplyMove(c int, player Player) (int, error) {
	if c < 0 || c >= b.width {
		return NoMove, fmt.Errorf("%w: %d", ErrColumnOutOfRange, c)
	}
	if player != PlayerA && player != PlayerB {
		return NoMove, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	if b.fill[c] >= b.height {
		return NoMove, fmt.Errorf("%w: %d", ErrColumnFull, c)
	}
	row := b.height - 1 - b.fill[c]
	b.fill[c]++
	b.cells[row*b.width+c] = player
	return row, nil
}

// UndoMove clears the disc placed at (row, c). row must be the value returned by the
// matching ApplyMove, which keeps the gravity invariant intact.
func (b *Board) UndoMove(c, row int) {
	b.cells[row*b.width+c] = Empty
	b.fill[c]--
}

// Reset empties the board in place.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	for c := range b.fill {
		b.fill[c] = 0
	}
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// String renders the board top row first, followed by 1-based column labels.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Cell(row, col).String())
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.width; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa((col + 1) % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}
