package engine

import (
	"connect4/game"
	"connect4/searcher"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not this player's turn")
)

// Move is a disc placed during a session.
type Move struct {
	Player game.Player
	Column int
	Row    int
}

type SessionOption func(g *GameSession)

// GameSession owns the state of one game between the engine and a human. The
// presentation layer drives it through ApplyHumanMove and ApplyEngineMove and renders
// from Board; nothing about the game lives outside the session value.
type GameSession struct {
	id       uuid.UUID
	board    *game.Board
	searcher *searcher.Searcher
	engine   game.Player
	human    game.Player
	first    game.Player
	turn     game.Player
	moves    []Move
	logger   zerolog.Logger
}

func WithSearcher(s *searcher.Searcher) SessionOption {
	return func(g *GameSession) {
		if s != nil {
			g.searcher = s
		}
	}
}

// WithEngineFirst lets the engine open the game instead of the human.
func WithEngineFirst(engineFirst bool) SessionOption {
	return func(g *GameSession) {
		if engineFirst {
			g.first = g.engine
		} else {
			g.first = g.human
		}
	}
}

func WithBoardSize(width, height int) SessionOption {
	return func(g *GameSession) {
		b, err := game.NewBoardSize(width, height)
		if err != nil {
			log.Warn().Err(err).Msg("keeping the standard board")
			return
		}
		g.board = b
	}
}

// NewGameSession starts a game on an empty board, with the engine playing PlayerA and
// the human PlayerB. The human moves first unless WithEngineFirst is given.
func NewGameSession(options ...SessionOption) *GameSession {
	g := &GameSession{ // Default values
		board:  game.NewBoard(),
		engine: game.PlayerA,
		human:  game.PlayerB,
		first:  game.PlayerB,
	}
	for _, option := range options {
		option(g)
	}
	if g.searcher == nil {
		g.searcher = searcher.NewSearcher()
	}
	g.start()
	return g
}

func (g *GameSession) start() {
	g.id = uuid.New()
	g.turn = g.first
	g.moves = nil
	g.logger = log.With().Str("session", g.id.String()).Logger()
	g.logger.Info().
		Str("first", g.first.String()).
		Int("depth", g.searcher.Depth()).
		Str("evaluator", g.searcher.EvaluatorName()).
		Msg("new game")
}

// Reset empties the board and starts a new game with the same settings.
func (g *GameSession) Reset() {
	g.board.Reset()
	g.start()
}

func (g *GameSession) ID() uuid.UUID            { return g.id }
func (g *GameSession) EnginePlayer() game.Player { return g.engine }
func (g *GameSession) HumanPlayer() game.Player  { return g.human }

// Turn returns the player expected to move next.
func (g *GameSession) Turn() game.Player {
	return g.turn
}

// Board returns a copy of the board for rendering.
func (g *GameSession) Board() *game.Board {
	return g.board.Copy()
}

// Moves returns the discs played so far, in order.
func (g *GameSession) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Outcome derives the current outcome from the board.
func (g *GameSession) Outcome() (game.Outcome, error) {
	return game.DetermineOutcome(g.board)
}

// ApplyHumanMove drops the human's disc into column and returns the row it landed on
// and the outcome after the move. A rejected move leaves the session unchanged.
func (g *GameSession) ApplyHumanMove(column int) (int, game.Outcome, error) {
	return g.apply(column, g.human)
}

// ApplyEngineMove chooses and plays the engine's reply, returning its column, row and
// the outcome after the move.
func (g *GameSession) ApplyEngineMove(ctx context.Context) (int, int, game.Outcome, error) {
	outcome, err := g.ready(g.engine)
	if err != nil {
		return game.NoMove, game.NoMove, outcome, err
	}

	column, err := g.searcher.ChooseMove(ctx, g.board, g.engine, g.human)
	if err != nil {
		return game.NoMove, game.NoMove, outcome, fmt.Errorf("choosing engine move: %w", err)
	}

	row, outcome, err := g.apply(column, g.engine)
	return column, row, outcome, err
}

// ready checks that player may move now.
func (g *GameSession) ready(player game.Player) (game.Outcome, error) {
	outcome, err := game.DetermineOutcome(g.board)
	if err != nil {
		return outcome, err
	}
	if outcome.Over() {
		return outcome, ErrGameOver
	}
	if g.turn != player {
		return outcome, ErrNotYourTurn
	}
	return outcome, nil
}

func (g *GameSession) apply(column int, player game.Player) (int, game.Outcome, error) {
	outcome, err := g.ready(player)
	if err != nil {
		return game.NoMove, outcome, err
	}

	row, err := g.board.ApplyMove(column, player)
	if err != nil {
		g.logger.Debug().Err(err).Int("column", column).Str("player", player.String()).Msg("move rejected")
		return game.NoMove, outcome, err
	}
	g.moves = append(g.moves, Move{Player: player, Column: column, Row: row})
	g.turn = player.Opponent()

	outcome, err = game.DetermineOutcome(g.board)
	if err != nil {
		g.logger.Error().Err(err).Msgf("board after move:\n%s", g.board)
		return row, outcome, err
	}

	g.logger.Debug().
		Str("player", player.String()).
		Int("column", column).
		Int("row", row).
		Stringer("outcome", outcome).
		Msg("move played")
	if outcome.Over() {
		g.logger.Info().Stringer("outcome", outcome).Int("moves", len(g.moves)).Msg("game over")
	}
	return row, outcome, nil
}
