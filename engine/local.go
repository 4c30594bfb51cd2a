package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays agents against each other in process. agents[0] plays PlayerA,
// which always moves first.
type LocalEngine struct {
	board  *game.Board
	agents [2]agent.Agent
	names  [2]string
}

type LocalOption func(e *LocalEngine)

// WithNames labels the agents in logs and in GameMetric.Winner.
func WithNames(first, second string) LocalOption {
	return func(e *LocalEngine) {
		if first != "" && second != "" {
			e.names = [2]string{first, second}
		}
	}
}

func WithBoard(b *game.Board) LocalOption {
	return func(e *LocalEngine) {
		if b != nil {
			e.board = b
		}
	}
}

func NewLocalEngine(agents [2]agent.Agent, options ...LocalOption) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	e := &LocalEngine{ // Default values
		board:  game.NewBoard(),
		agents: agents,
		names:  [2]string{"Player1", "Player2"},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until a player connects four or the board is full.
func (e *LocalEngine) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(game.PlayerA),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.names[0])

	player := game.PlayerA
	step := 1
	for {
		outcome, err := game.DetermineOutcome(e.board)
		if err != nil {
			return outcome, gameMetric, moveMetrics, err
		}
		if outcome.Over() {
			gameMetric.EndTime = time.Now()
			gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
			gameMetric.TotalMoves = step - 1
			if outcome.Status == game.Win {
				gameMetric.Winner = e.names[agentIndex(outcome.Winner)]
			}
			log.Info().Msgf("game ended after %d moves: %s", gameMetric.TotalMoves, outcome)
			return outcome, gameMetric, moveMetrics, nil
		}
		if err := ctx.Err(); err != nil {
			return outcome, gameMetric, moveMetrics, err
		}

		i := agentIndex(player)
		column, searchMetric, err := e.agents[i].FindMove(ctx, e.board, player)
		if err != nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("%s at step %d: %w", e.names[i], step, err)
		}
		if _, err := e.board.ApplyMove(column, player); err != nil {
			return outcome, gameMetric, moveMetrics, fmt.Errorf("%s played column %d: %w", e.names[i], column, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Column:       column,
			SearchMetric: searchMetric,
		})

		player = player.Opponent()
		step++
	}
}

// Board returns a copy of the board in its current state.
func (e *LocalEngine) Board() *game.Board {
	return e.board.Copy()
}

func agentIndex(player game.Player) int {
	if player == game.PlayerA {
		return 0
	}
	return 1
}

var _ Engine = (*LocalEngine)(nil)
