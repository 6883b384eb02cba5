package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	cellWidth  = 4
	cellHeight = 2

	offsetX = 2
	offsetY = 1

	helpText = "click a cell | r: restart | q: quit"
)

type clickController interface {
	Press(row, col int) (entity.Cell, error)
	Restart() error
	Rows() [][]entity.Cell
	Status() string
}

// UI is a point-and-click front end drawn with termbox.
type UI struct {
	logger     *slog.Logger
	controller clickController
}

func New(logger *slog.Logger, controller clickController) *UI {
	return &UI{
		logger:     logger.With("component", "terminal"),
		controller: controller,
	}
}

// Run owns the terminal until the user quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	stop := context.AfterFunc(ctx, termbox.Interrupt)
	defer stop()

	for {
		if err := that.draw(); err != nil {
			return err
		}

		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return ctx.Err()
		}

		quit, err := that.handleEvent(ev)
		if err != nil {
			return err
		}

		if quit {
			return nil
		}
	}
}

// handleEvent applies one input event and reports whether the UI should exit.
func (that *UI) handleEvent(ev termbox.Event) (bool, error) {
	log := that.logger.With("method", "handleEvent")

	switch ev.Type {
	case termbox.EventError:
		return true, fmt.Errorf("terminal event error: %w", ev.Err)
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc, ev.Key == termbox.KeyCtrlC, ev.Ch == 'q':
			return true, nil
		case ev.Ch == 'r':
			if err := that.controller.Restart(); err != nil {
				return true, fmt.Errorf("failed to restart game: %w", err)
			}
			log.Info("game restarted")
		}
	case termbox.EventMouse:
		if ev.Key != termbox.MouseLeft {
			return false, nil
		}

		row, col, ok := cellAt(ev.MouseX, ev.MouseY, len(that.controller.Rows()))
		if !ok {
			return false, nil
		}

		mark, err := that.controller.Press(row, col)
		if err != nil {
			// occupied cells and finished games ignore presses
			log.Debug("press ignored", "row", row, "col", col, "error", err)
			return false, nil
		}

		log.Debug("cell captured", "row", row, "col", col, "mark", mark.String())
	}

	return false, nil
}

// cellAt maps a screen position to a board cell; borders and outside positions map to nothing.
func cellAt(x, y, size int) (int, int, bool) {
	relX, relY := x-offsetX, y-offsetY
	if relX < 0 || relY < 0 {
		return 0, 0, false
	}

	if relX%cellWidth == 0 || relY%cellHeight == 0 {
		return 0, 0, false
	}

	row, col := relY/cellHeight, relX/cellWidth
	if row >= size || col >= size {
		return 0, 0, false
	}

	return row, col, true
}

// cellOrigin is the screen position where the mark of (row, col) is drawn.
func cellOrigin(row, col int) (int, int) {
	return offsetX + col*cellWidth + cellWidth/2, offsetY + row*cellHeight + cellHeight/2
}

func (that *UI) draw() error {
	rows := that.controller.Rows()
	size := len(rows)

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("failed to clear terminal: %w", err)
	}

	for y := 0; y <= size*cellHeight; y++ {
		for x := 0; x <= size*cellWidth; x++ {
			termbox.SetCell(offsetX+x, offsetY+y, gridRune(x, y), termbox.ColorDefault, termbox.ColorDefault)
		}
	}

	for r, row := range rows {
		for c, cell := range row {
			x, y := cellOrigin(r, c)
			termbox.SetCell(x, y, []rune(tictactoe.Symbol(cell))[0], markColor(cell)|termbox.AttrBold, termbox.ColorDefault)
		}
	}

	statusY := offsetY + size*cellHeight + 1
	printText(offsetX, statusY, that.controller.Status())
	printText(offsetX, statusY+1, helpText)

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to flush terminal: %w", err)
	}

	return nil
}

func gridRune(x, y int) rune {
	onRow, onCol := y%cellHeight == 0, x%cellWidth == 0

	switch {
	case onRow && onCol:
		return '+'
	case onRow:
		return '-'
	case onCol:
		return '|'
	default:
		return ' '
	}
}

func markColor(cell entity.Cell) termbox.Attribute {
	switch cell {
	case entity.Cross:
		return termbox.ColorRed
	case entity.Circle:
		return termbox.ColorBlue
	default:
		return termbox.ColorDefault
	}
}

func printText(x, y int, text string) {
	for _, r := range text {
		termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
