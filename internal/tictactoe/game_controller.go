package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	msgInvalidInteger = "Invalid input. Please enter a valid integer."
	msgInvalidInput   = "Invalid input"
	msgCellOccupied   = "Cell occupied!"
	msgGameOver       = "Game over!"
)

// GameController drives a game from a line based text console.
type GameController struct {
	logger *slog.Logger
	game   *entity.Game

	in  *bufio.Scanner
	out io.Writer
}

func NewGameController(logger *slog.Logger, game *entity.Game, in io.Reader, out io.Writer) *GameController {
	return &GameController{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// HandleGameFlow plays moves read from the input until the game is won or drawn.
func (that *GameController) HandleGameFlow(ctx context.Context) error {
	log := that.logger.With("method", "HandleGameFlow")

	that.drawGameState()

	for that.game.Outcome() == entity.Ongoing {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, col, err := that.ReadMove()
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		player := that.game.CurrentPlayer()
		if err = that.game.CaptureCell(row, col); err != nil {
			return fmt.Errorf("failed to capture cell: %w", err)
		}

		log.Debug("cell captured", "player", player.String(), "row", row, "col", col)

		that.drawGameState()
		that.game.ChangeCurrentPlayer()
	}

	that.println(msgGameOver)
	that.println(StatusLine(that.game))

	log.Info("game over", "outcome", that.game.Outcome().String())

	return nil
}

// ReadMove prompts until it gets an in-range, unoccupied cell.
func (that *GameController) ReadMove() (int, int, error) {
	for {
		row, err := that.readCoordinate("row")
		if isRetryable(err) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}

		col, err := that.readCoordinate("column")
		if isRetryable(err) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}

		occupied, err := that.game.IsCellOccupied(row, col)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to check cell: %w", err)
		}

		if occupied {
			that.logger.Debug("rejected move", "error", apperror.ErrCellOccupied, "row", row, "col", col)
			that.println(msgCellOccupied)
			continue
		}

		return row, col, nil
	}
}

func (that *GameController) readCoordinate(name string) (int, error) {
	size := that.game.BoardSize()

	that.println(fmt.Sprintf("Please enter %s (0-%d): ", name, size-1))

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read line: %w", err)
		}
		return 0, apperror.ErrInputClosed
	}

	value, err := ParseCoordinate(that.in.Text(), size)
	switch {
	case errors.Is(err, apperror.ErrParse):
		that.println(msgInvalidInteger)
	case errors.Is(err, apperror.ErrOutOfRange):
		that.println(msgInvalidInput)
	}

	if err != nil {
		that.logger.Debug("rejected input", "coordinate", name, "error", err)
	}

	return value, err
}

func (that *GameController) drawGameState() {
	fmt.Fprint(that.out, FormatBoard(that.game.Rows()))
}

func (that *GameController) println(line string) {
	fmt.Fprintln(that.out, line)
}

func isRetryable(err error) bool {
	return errors.Is(err, apperror.ErrParse) || errors.Is(err, apperror.ErrOutOfRange)
}
