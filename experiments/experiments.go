package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.AgentRandom, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.AgentMinimax, Depth: 1, Evaluator: searcher.DefaultEvaluator},
	{ID: 2, Kind: metrics.AgentMinimax, Depth: 2, Evaluator: searcher.DefaultEvaluator},
	{ID: 3, Kind: metrics.AgentMinimax, Depth: 3, Evaluator: searcher.DefaultEvaluator},
	{ID: 4, Kind: metrics.AgentMinimax, Depth: 4, Evaluator: searcher.DefaultEvaluator},
}

// RunDepthExperiment pairs each search depth against the random baseline and writes
// the results under baseDir. It returns the directory holding the CSV files.
func RunDepthExperiment(ctx context.Context, baseDir string, games int) (string, error) {
	// Each matchup pairs the baseline agent against a minimax agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, baseDir, "depth", append(depthConfigs, baseline), matchUps, games)
}

// RunEvaluatorExperiment pairs the evaluators against each other at the default depth.
func RunEvaluatorExperiment(ctx context.Context, baseDir string, games int) (string, error) {
	threats := metrics.AgentConfig{ID: 1, Kind: metrics.AgentMinimax, Depth: searcher.DefaultDepth, Evaluator: "threats"}
	windows := metrics.AgentConfig{ID: 2, Kind: metrics.AgentMinimax, Depth: searcher.DefaultDepth, Evaluator: "windows"}
	matchUps := [][2]metrics.AgentConfig{{threats, windows}}

	return runExperiment(ctx, baseDir, "evaluator", []metrics.AgentConfig{threats, windows}, matchUps, games)
}

func runExperiment(ctx context.Context, baseDir, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) (string, error) {
	if games < 1 {
		games = NumGames
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			// Alternate the starting agent
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(ctx, first, second, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(baseDir, name, configs, gameRecords, moveRecords)
}

func store(baseDir, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays game index with first moving first and returns the winner's name
func runGame(ctx context.Context, first, second metrics.AgentConfig, index uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{createAgent(first, index), createAgent(second, index)}
	e := engine.NewLocalEngine(agents, engine.WithNames(agentName(first), agentName(second)))

	outcome, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return "", gameMetric, moveMetrics, err
	}
	if outcome.Status == game.Draw {
		return "draw", gameMetric, moveMetrics, nil
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, index uint64) agent.Agent {
	if config.Kind == metrics.AgentRandom {
		// A fresh seed per game so the baseline does not replay one game
		return agent.NewRandomAgent(config.Seed + index)
	}

	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Evaluator != "" {
		options = append(options, searcher.WithEvaluator(config.Evaluator))
	}
	options = append(options, searcher.WithMetrics())
	return agent.NewMinimaxAgent(searcher.NewSearcher(options...))
}

func agentName(config metrics.AgentConfig) string {
	if config.Kind == metrics.AgentRandom {
		return fmt.Sprintf("%d-random", config.ID)
	}
	return fmt.Sprintf("%d-minimax-%d-%s", config.ID, config.Depth, config.Evaluator)
}
