package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// ClickController handles cell presses coming from a point-and-click front end.
// Presses on occupied cells or after the game ended are rejected and should be ignored.
type ClickController struct {
	logger *slog.Logger
	game   *entity.Game
	frozen bool
}

func NewClickController(logger *slog.Logger, size int) (*ClickController, error) {
	game, err := entity.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &ClickController{
		logger: logger,
		game:   game,
	}, nil
}

// Press captures (row, col) for the current player and returns the mark that was placed.
func (that *ClickController) Press(row, col int) (entity.Cell, error) {
	if that.frozen {
		return entity.Empty, apperror.ErrGameFinished
	}

	occupied, err := that.game.IsCellOccupied(row, col)
	if err != nil {
		return entity.Empty, err
	}

	if occupied {
		return entity.Empty, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	// the mark has to be read before the turn is passed
	mark := that.game.CurrentPlayer().Mark()

	if err = that.game.CaptureCell(row, col); err != nil {
		return entity.Empty, fmt.Errorf("failed to capture cell: %w", err)
	}

	that.game.ChangeCurrentPlayer()

	if outcome := that.game.Outcome(); outcome != entity.Ongoing {
		that.frozen = true
		that.logger.Info("game over", "outcome", outcome.String())
	}

	return mark, nil
}

// Restart replaces the game with a fresh one of the same size.
func (that *ClickController) Restart() error {
	game, err := entity.NewGame(that.game.BoardSize())
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.game = game
	that.frozen = false

	return nil
}

func (that *ClickController) Frozen() bool {
	return that.frozen
}

func (that *ClickController) Game() *entity.Game {
	return that.game
}

func (that *ClickController) Rows() [][]entity.Cell {
	return that.game.Rows()
}

func (that *ClickController) Status() string {
	return StatusLine(that.game)
}
