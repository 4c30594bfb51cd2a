package ui

import (
	"bufio"
	"connect4/engine"
	"connect4/game"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RunText plays session over a line based prompt: a column number (1-based) drops a
// disc, n starts a new game and q quits. It returns nil at q or at the end of in.
func RunText(ctx context.Context, in io.Reader, out io.Writer, session *engine.GameSession) error {
	scanner := bufio.NewScanner(in)
	width := session.Board().Width()
	fmt.Fprintf(out, "Connect four. Enter a column 1-%d, n for a new game or q to quit.\n", width)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := session.Outcome()
		if err != nil {
			return err
		}
		if !outcome.Over() && session.Turn() == session.EnginePlayer() {
			var column int
			column, _, outcome, err = session.ApplyEngineMove(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Engine plays column %d\n", column+1)
		}

		fmt.Fprint(out, session.Board())
		if outcome.Over() {
			fmt.Fprintln(out, resultText(outcome, session.HumanPlayer()))
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "q", "quit":
			return nil
		case "n", "new":
			session.Reset()
			continue
		case "":
			continue
		}

		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "%q is not a column\n", line)
			continue
		}
		_, _, err = session.ApplyHumanMove(column - 1)
		switch {
		case errors.Is(err, game.ErrColumnFull):
			fmt.Fprintf(out, "Column %d is full\n", column)
		case errors.Is(err, game.ErrColumnOutOfRange):
			fmt.Fprintf(out, "Columns are 1 to %d\n", width)
		case errors.Is(err, engine.ErrGameOver):
			fmt.Fprintln(out, "The game is over. n for a new game, q to quit")
		case err != nil:
			return err
		}
	}
}
