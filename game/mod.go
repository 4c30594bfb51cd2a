package game

import "math"

const (
	DefaultWidth  = 7
	DefaultHeight = 6
	ConnectLength = 4 // Discs in a line needed to win
	NoMove        = -1
)

// Sentinel scores for decided positions, larger in magnitude than any heuristic value
var (
	WinScore  = math.Inf(1)
	LossScore = math.Inf(-1)
)

// Player is the content of a board cell. The zero value is an empty cell.
type Player int8

const (
	Empty   Player = iota
	PlayerA        // Engine (computer)
	PlayerB        // Human
)

// Opponent returns the other player, or Empty for Empty
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome is derived from a board and must not be cached across moves.
type Outcome struct {
	Status Status
	Winner Player // Empty unless Status is Win
}

func (o Outcome) Over() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Win {
		return "win " + o.Winner.String()
	}
	return o.Status.String()
}

// Evaluates a board to a score from player's perspective: positive favors player,
// negative favors opponent, +Inf/-Inf for decided games.
type Evaluate func(b *Board, player, opponent Player) float64
