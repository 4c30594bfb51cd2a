// Package ui presents a game session in the terminal, either as a tview board or as a
// line based text prompt.
package ui

import (
	"connect4/config"
	"connect4/engine"
	"connect4/game"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const resultPage = "result"

type BoardUI struct {
	Box      *tview.Box
	app      *tview.Application
	pages    *tview.Pages
	hint     *tview.TextView
	session  *engine.GameSession
	cfg      *config.Config
	styles   []tcell.Color
	symbols  []rune
	board    *game.Board // Snapshot drawn by the draw func
	selCol   int
	lastCol  int
	lastRow  int
	thinking bool
	finished bool
	message  string
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewBoardUI(app *tview.Application, pages *tview.Pages, c *config.Config, session *engine.GameSession, hint *tview.TextView) *BoardUI {
	ctx, cancel := context.WithCancel(context.Background())
	board := &BoardUI{
		Box:     tview.NewBox(),
		app:     app,
		pages:   pages,
		hint:    hint,
		session: session,
		board:   session.Board(),
		lastCol: game.NoMove,
		lastRow: game.NoMove,
		ctx:     ctx,
		cancel:  cancel,
	}
	board.selCol = board.board.Width() / 2
	board.SetConfig(c)
	board.Box.SetBorder(true).SetTitle(" Connect Four ")
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetInputCapture(board.handleKey)
	return board
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.Board),     // 0
		tcell.PaletteColor(c.Theme.Colors.Engine),    // 1
		tcell.PaletteColor(c.Theme.Colors.Human),     // 2
		tcell.PaletteColor(c.Theme.Colors.Cursor),    // 3
		tcell.PaletteColor(c.Theme.Colors.LastMoved), // 4
	}
	g.symbols = []rune{
		firstRune(c.Theme.Symbols.Empty),  // 0
		firstRune(c.Theme.Symbols.Engine), // 1
		firstRune(c.Theme.Symbols.Human),  // 2
		firstRune(c.Theme.Symbols.Cursor), // 3
	}
	g.cfg = c
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Start lets the engine open the game when it moves first.
func (g *BoardUI) Start() {
	g.refreshHint()
	if g.session.Turn() == g.session.EnginePlayer() {
		g.engineMove()
	}
}

// Close stops a running engine search.
func (g *BoardUI) Close() {
	g.cancel()
}

func (g *BoardUI) Cursor() int {
	return g.selCol
}

// MoveCursor shifts the column cursor, staying on the board.
func (g *BoardUI) MoveCursor(delta int) {
	col := g.selCol + delta
	if col < 0 || col >= g.board.Width() {
		return
	}
	g.selCol = col
}

// PlayColumn drops the human's disc into column and hands the turn to the engine.
func (g *BoardUI) PlayColumn(column int) {
	if g.thinking || g.finished {
		return
	}
	g.message = ""
	row, outcome, err := g.session.ApplyHumanMove(column)
	switch {
	case errors.Is(err, game.ErrColumnFull):
		g.message = fmt.Sprintf("Column %d is full", column+1)
	case errors.Is(err, game.ErrColumnOutOfRange):
		g.message = fmt.Sprintf("Columns are 1 to %d", g.board.Width())
	case err != nil:
		log.Error().Err(err).Int("column", column).Msg("human move failed")
		g.message = err.Error()
	default:
		g.played(column, row, outcome)
		if !g.finished {
			g.engineMove()
		}
	}
	g.refreshHint()
}

// NewGame resets the session unless the engine is still searching.
func (g *BoardUI) NewGame() {
	if g.thinking {
		return
	}
	g.session.Reset()
	g.board = g.session.Board()
	g.lastCol, g.lastRow = game.NoMove, game.NoMove
	g.finished = false
	g.message = ""
	g.Start()
}

func (g *BoardUI) played(column, row int, outcome game.Outcome) {
	g.board = g.session.Board()
	g.lastCol, g.lastRow = column, row
	g.selCol = column
	if outcome.Over() {
		g.finish(outcome)
	}
}

// engineMove searches in the background; the session is left to the search goroutine
// until its result is applied on the event loop.
func (g *BoardUI) engineMove() {
	g.thinking = true
	go func() {
		column, row, outcome, err := g.session.ApplyEngineMove(g.ctx)
		g.app.QueueUpdateDraw(func() {
			g.thinking = false
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Error().Err(err).Msg("engine move failed")
				g.message = err.Error()
			} else {
				g.played(column, row, outcome)
			}
			g.refreshHint()
		})
	}()
	g.refreshHint()
}

func (g *BoardUI) finish(outcome game.Outcome) {
	g.finished = true
	modal := tview.NewModal().
		SetText(resultText(outcome, g.session.HumanPlayer())).
		AddButtons([]string{"New game", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			g.pages.RemovePage(resultPage)
			if buttonLabel == "New game" {
				g.NewGame()
				g.app.SetFocus(g.Box)
				return
			}
			g.Close()
			g.app.Stop()
		})
	g.pages.AddPage(resultPage, modal, true, true)
}

func (g *BoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		g.MoveCursor(-1)
	case tcell.KeyRight:
		g.MoveCursor(1)
	case tcell.KeyEnter:
		g.PlayColumn(g.selCol)
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'h':
			g.MoveCursor(-1)
		case r == 'l':
			g.MoveCursor(1)
		case r == ' ':
			g.PlayColumn(g.selCol)
		case r == 'n':
			g.NewGame()
		case r == 'q':
			g.Close()
			g.app.Stop()
		case r >= '1' && r <= '9':
			column := int(r - '1')
			if column < g.board.Width() {
				g.selCol = column
				g.PlayColumn(column)
			}
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (g *BoardUI) refreshHint() {
	if g.hint == nil {
		return
	}

	var turnLine string
	switch {
	case g.finished:
		outcome, _ := g.session.Outcome()
		turnLine = "  " + resultText(outcome, g.session.HumanPlayer()) + "\n"
	case g.thinking:
		turnLine = "  ◌ Thinking...\n"
	default:
		turnLine = fmt.Sprintf("  %c Your move\n", g.symbols[g.session.HumanPlayer()])
	}

	messageLine := ""
	if g.message != "" {
		messageLine = "\n  " + g.message + "\n"
	}

	controlsLine := `
  h/l ←→ move   ⏎ drop   1-9 column
  n new game   q quit`

	g.hint.SetText(turnLine + messageLine + controlsLine)
}

// draw renders two screen cells per board cell with the cursor row above the board and
// column numbers below.
func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	left, top := x+2, y+1
	boardStyle := tcell.StyleDefault.Background(g.styles[0])

	drawCell(screen, tcell.StyleDefault.Foreground(g.styles[3]), g.symbols[3], left, top, g.selCol, 0)
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			style := boardStyle.Foreground(g.styles[3])
			r := g.symbols[0]
			if player := g.board.Cell(row, col); player != game.Empty {
				style = boardStyle.Foreground(g.styles[player])
				r = g.symbols[player]
			}
			if row == g.lastRow && col == g.lastCol {
				style = style.Background(g.styles[4])
			}
			drawCell(screen, style, r, left, top+1, col, row)
		}
	}
	for col := 0; col < g.board.Width(); col++ {
		style := tcell.StyleDefault
		if col == g.selCol {
			style = style.Foreground(g.styles[3]).Bold(true)
		}
		drawCell(screen, style, rune('1'+col%10), left, top+1+g.board.Height(), col, 0)
	}

	return x + 1, y + 1, width - 2, height - 2
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, style tcell.Style, r rune, left, top, col, row int) {
	s.SetContent(left+col*2, top+row, r, nil, style)
	s.SetContent(left+col*2+1, top+row, ' ', nil, style)
}

// CreateGameLayout puts the board next to the hint panel.
func CreateGameLayout(board *BoardUI) *tview.Flex {
	width := board.board.Width()*2 + 6
	return tview.NewFlex().
		AddItem(board.Box, width, 0, true).
		AddItem(board.hint, 0, 1, false)
}

func resultText(outcome game.Outcome, human game.Player) string {
	switch {
	case outcome.Status == game.Draw:
		return "Draw: the board is full"
	case outcome.Winner == human:
		return "You win!"
	case outcome.Status == game.Win:
		return "Engine wins"
	default:
		return ""
	}
}
