package metrics

import (
	"sync/atomic"
	"time"
)

// Decision is how a move was chosen
type Decision string

const (
	DecisionNone   Decision = ""
	DecisionWin    Decision = "win"    // Immediate win
	DecisionBlock  Decision = "block"  // Blocks the opponent's immediate win
	DecisionSearch Decision = "search" // Minimax fallback
	DecisionRandom Decision = "random"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Positions expanded by the search
	Leaves    int // Positions evaluated
	Decision  Decision
	Evaluator string
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // Player name, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, evaluator string)
	AddNode()
	AddLeaf()
	SetDecision(decision Decision)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	evaluator string
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	decision  atomic.Value // Decision
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, evaluator string) {
	m.startTime = time.Now()
	m.depth = depth
	m.evaluator = evaluator
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.decision.Store(DecisionNone)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) SetDecision(decision Decision) {
	m.decision.Store(decision)
}

func (m *collector) Complete() SearchMetric {
	decision, _ := m.decision.Load().(Decision)
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Decision:  decision,
		Evaluator: m.evaluator,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, evaluator string) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) SetDecision(decision Decision)     {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
