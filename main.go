// connect4 plays Connect Four against a minimax engine in the terminal.
package main

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/searcher"
	"connect4/ui"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags, overriding the config file
var (
	flagText        = flag.Bool("text", false, "Play with a line based prompt instead of the board UI")
	flagExperiment  = flag.String("experiment", "", "Run an engine experiment (depth or evaluator) and exit")
	flagGames       = flag.Int("games", experiments.NumGames, "Games per matchup in experiments")
	flagOut         = flag.String("out", "experiments", "Directory for experiment results")
	flagDepth       = flag.Int("depth", 0, "Search depth in plies")
	flagEvaluator   = flag.String("evaluator", "", "Board evaluator (threats or windows)")
	flagEngineFirst = flag.Bool("engine-first", false, "Let the engine make the first move")
	flagLogLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSaveConfig  = flag.Bool("save-config", false, "Write the effective config to the config file and exit")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("connect4 %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *flagExperiment != "":
		setupLogging(cfg, os.Stderr)
		err = runExperiment(ctx, *flagExperiment)
	case *flagText:
		setupLogging(cfg, os.Stderr)
		err = ui.RunText(ctx, os.Stdin, os.Stdout, newSession(cfg))
	default:
		// Logs would corrupt the screen, so they go to a file
		var logFile *os.File
		logFile, err = openLogFile()
		if err != nil {
			break
		}
		defer logFile.Close()
		setupLogging(cfg, logFile)
		err = runBoard(cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *flagDepth > 0 {
		cfg.Engine.Depth = *flagDepth
	}
	if *flagEvaluator != "" {
		cfg.Engine.Evaluator = *flagEvaluator
	}
	if *flagEngineFirst {
		cfg.Engine.EngineFirst = true
	}
	if *flagLogLevel != "" {
		cfg.Log.Level = *flagLogLevel
	}
}

func setupLogging(cfg *config.Config, w io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr})
}

func openLogFile() (*os.File, error) {
	path, err := config.LogFile()
	if err != nil {
		return nil, fmt.Errorf("locating log file: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func newSession(cfg *config.Config) *engine.GameSession {
	s := searcher.NewSearcher(
		searcher.WithDepth(cfg.Engine.Depth),
		searcher.WithEvaluator(cfg.Engine.Evaluator),
	)
	return engine.NewGameSession(engine.WithSearcher(s), engine.WithEngineFirst(cfg.Engine.EngineFirst))
}

func runExperiment(ctx context.Context, name string) error {
	var dir string
	var err error
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(ctx, *flagOut, *flagGames)
	case "evaluator":
		dir, err = experiments.RunEvaluatorExperiment(ctx, *flagOut, *flagGames)
	default:
		return fmt.Errorf("unknown experiment %q (available: depth, evaluator)", name)
	}
	if err != nil {
		return err
	}
	fmt.Printf("results written to %s\n", dir)
	return nil
}

func runBoard(cfg *config.Config) error {
	app := tview.NewApplication()
	pages := tview.NewPages()

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	board := ui.NewBoardUI(app, pages, cfg, newSession(cfg), hint)
	defer board.Close()
	pages.AddPage("game", ui.CreateGameLayout(board), true, true)
	board.Start()

	return app.SetRoot(pages, true).Run()
}
