package game

import "fmt"

// Direction is a step along one axis of the grid.
type Direction struct {
	DRow int
	DCol int
}

var (
	Vertical     = Direction{DRow: 1, DCol: 0}
	Horizontal   = Direction{DRow: 0, DCol: 1}
	DiagonalUp   = Direction{DRow: -1, DCol: 1} // "/"
	DiagonalDown = Direction{DRow: 1, DCol: 1}  // "\"
)

// Directions are the four axes a line can follow.
var Directions = [...]Direction{Vertical, Horizontal, DiagonalUp, DiagonalDown}

// CheckWin returns the player owning a line of ConnectLength discs, or Empty if there
// is none. Both players owning a line cannot happen under alternating play and is
// reported as an ErrInvariantViolation instead of picking a winner.
func CheckWin(b *Board) (Player, error) {
	wins := countWins(b)

	switch {
	case wins[PlayerA] > 0 && wins[PlayerB] > 0:
		return Empty, fmt.Errorf("%w: both players connect %d (A=%d, B=%d)",
			ErrInvariantViolation, ConnectLength, wins[PlayerA], wins[PlayerB])
	case wins[PlayerA] > 0:
		return PlayerA, nil
	case wins[PlayerB] > 0:
		return PlayerB, nil
	default:
		return Empty, nil
	}
}

// countWins walks every line once per direction, starting from the cells whose
// predecessor lies off the board, and counts the runs reaching ConnectLength.
func countWins(b *Board) [3]int {
	var wins [3]int // Indexed by Player

	for _, d := range Directions {
		for row := 0; row < b.height; row++ {
			for col := 0; col < b.width; col++ {
				if b.inside(row-d.DRow, col-d.DCol) { // Not the start of a line
					continue
				}
				current, run := Empty, 0
				for r, c := row, col; b.inside(r, c); r, c = r+d.DRow, c+d.DCol {
					cell := b.cells[r*b.width+c]
					switch {
					case cell == Empty:
						current, run = Empty, 0
					case cell == current:
						run++
					default:
						current, run = cell, 1
					}
					// Exact match so a run longer than ConnectLength counts once
					if current != Empty && run == ConnectLength {
						wins[current]++
					}
				}
			}
		}
	}

	return wins
}

// DetermineOutcome derives the game outcome from the board.
func DetermineOutcome(b *Board) (Outcome, error) {
	winner, err := CheckWin(b)
	if err != nil {
		return Outcome{}, err
	}
	if winner != Empty {
		return Outcome{Status: Win, Winner: winner}, nil
	}
	if b.IsFull() {
		return Outcome{Status: Draw}, nil
	}
	return Outcome{Status: InProgress}, nil
}
