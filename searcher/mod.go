package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"

	"github.com/rs/zerolog/log"
)

const DefaultDepth = 4 // Plies searched by the minimax fallback

const DefaultEvaluator = "threats"

// ErrNoLegalMove is returned when a move is requested on a full board. Callers check
// Board.IsFull first, so this signals a sequencing bug on the caller's side.
var ErrNoLegalMove = errors.New("no legal move")

type Option func(s *Searcher)

// Searcher picks moves with a fixed-depth minimax search. It keeps no state between
// calls apart from metrics, and mutates the board it is given only transiently: the
// board is restored before every call returns. At most one search may run against a
// board at a time.
type Searcher struct {
	depth         int
	evaluate      game.Evaluate
	evaluatorName string
	metrics       metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
			s.evaluatorName = "custom"
		}
	}
}

// WithEvaluator selects a registered evaluator by name, keeping the default for
// unknown names.
func WithEvaluator(name string) Option {
	return func(s *Searcher) {
		evaluate, err := game.LookupEvaluator(name)
		if err != nil {
			log.Warn().Err(err).Msgf("keeping evaluator %q", s.evaluatorName)
			return
		}
		s.evaluate = evaluate
		s.evaluatorName = name
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:         DefaultDepth,
		evaluate:      game.EvaluateThreats,
		evaluatorName: DefaultEvaluator,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) EvaluatorName() string {
	return s.evaluatorName
}
