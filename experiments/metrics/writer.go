package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentKind string

const (
	AgentMinimax AgentKind = "minimax"
	AgentRandom  AgentKind = "random"
)

type AgentConfig struct {
	ID        int
	Kind      AgentKind
	Depth     int    // Minimax only
	Evaluator string // Minimax only
	Seed      uint64 // Random only
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, moves first
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	dir string
}

// NewWriter creates baseDir/name/<timestamp> for the CSV files of one experiment run.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		dir: dir,
	}, nil
}

// Dir is the directory the CSV files are written to.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "evaluator", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			string(config.Kind),
			strconv.Itoa(config.Depth),
			config.Evaluator,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "column", "decision", "depth", "evaluator", "duration", "nodes", "leaves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Column),
			string(record.Decision),
			strconv.Itoa(record.Depth),
			record.Evaluator,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
