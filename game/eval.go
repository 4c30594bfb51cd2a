package game

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Evaluators by configuration name
var Evaluators = map[string]Evaluate{
	"threats": EvaluateThreats,
	"windows": EvaluateWindows,
}

// LookupEvaluator returns the evaluator registered under name.
func LookupEvaluator(name string) (Evaluate, error) {
	evaluate, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown evaluator %q (available: %v)", name, names)
	}
	return evaluate, nil
}

// EvaluateThreats scores a board by the open-line potential of its empty cells: every
// empty cell that would complete or extend a line of three for player adds 1, and for
// opponent subtracts 1, once per axis. Decided boards score +Inf or -Inf.
func EvaluateThreats(b *Board, player, opponent Player) float64 {
	if score, decided := decidedScore(b, player, opponent); decided {
		return score
	}

	score := 0
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] != Empty {
				continue
			}
			for _, d := range Directions {
				score += b.lineScore(row, col, d, player, opponent)
			}
		}
	}
	return float64(score)
}

// EvaluateWindows scores every window of ConnectLength cells that only one player
// occupies, plus a small bonus for discs in the centre column. Decided boards score
// +Inf or -Inf.
func EvaluateWindows(b *Board, player, opponent Player) float64 {
	if score, decided := decidedScore(b, player, opponent); decided {
		return score
	}

	score := 0
	for _, d := range Directions {
		for row := 0; row < b.height; row++ {
			for col := 0; col < b.width; col++ {
				last := ConnectLength - 1
				if !b.inside(row+last*d.DRow, col+last*d.DCol) {
					continue
				}
				score += b.windowScore(row, col, d, player, opponent)
			}
		}
	}

	center := b.width / 2
	for row := 0; row < b.height; row++ {
		switch b.cells[row*b.width+center] {
		case player:
			score++
		case opponent:
			score--
		}
	}
	return float64(score)
}

// decidedScore returns the sentinel score when the board already has a winner.
func decidedScore(b *Board, player, opponent Player) (float64, bool) {
	winner, err := CheckWin(b)
	if err != nil {
		// Unreachable under alternating play; score the position heuristically
		log.Error().Err(err).Msgf("evaluating board with two winners:\n%s", b)
		return 0, false
	}
	switch winner {
	case player:
		return WinScore, true
	case opponent:
		return LossScore, true
	}
	return 0, false
}

// lineScore checks the runs adjacent to the empty cell (row, col) on both sides of one
// axis. Runs of the same player on both sides combine, otherwise each side counts
// alone. A run of ConnectLength-1 or more scores +1 for player and -1 for opponent.
func (b *Board) lineScore(row, col int, d Direction, player, opponent Player) int {
	before, beforeLen := b.run(row, col, -d.DRow, -d.DCol)
	after, afterLen := b.run(row, col, d.DRow, d.DCol)

	if before == after {
		return runWeight(before, beforeLen+afterLen, player, opponent)
	}
	return runWeight(before, beforeLen, player, opponent) + runWeight(after, afterLen, player, opponent)
}

// run returns the owner and length of the contiguous run of discs starting next to
// (row, col) in direction (dRow, dCol). An empty cell or the edge ends the run.
func (b *Board) run(row, col, dRow, dCol int) (Player, int) {
	r, c := row+dRow, col+dCol
	if !b.inside(r, c) {
		return Empty, 0
	}
	owner := b.cells[r*b.width+c]
	if owner == Empty {
		return Empty, 0
	}

	length := 0
	for b.inside(r, c) && b.cells[r*b.width+c] == owner {
		length++
		r, c = r+dRow, c+dCol
	}
	return owner, length
}

func runWeight(owner Player, length int, player, opponent Player) int {
	if length < ConnectLength-1 {
		return 0
	}
	switch owner {
	case player:
		return 1
	case opponent:
		return -1
	}
	return 0
}

func (b *Board) windowScore(row, col int, d Direction, player, opponent Player) int {
	mine, theirs := 0, 0
	for i := 0; i < ConnectLength; i++ {
		switch b.cells[(row+i*d.DRow)*b.width+col+i*d.DCol] {
		case player:
			mine++
		case opponent:
			theirs++
		}
	}
	if mine > 0 && theirs > 0 {
		return 0
	}

	empty := ConnectLength - mine - theirs
	switch {
	case mine == ConnectLength-1 && empty == 1:
		return 5
	case mine == ConnectLength-2 && empty == 2:
		return 2
	case theirs == ConnectLength-1 && empty == 1:
		return -5
	case theirs == ConnectLength-2 && empty == 2:
		return -2
	}
	return 0
}
