package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Game holds the board and the turn pointer of a single match.
// It is owned by one front end and is not safe for concurrent use.
type Game struct {
	size    int
	board   [][]Cell
	current Player
}

// NewGame creates a game with an empty size×size board and the starter to move.
func NewGame(size int) (*Game, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	board := make([][]Cell, size)
	for row := range board {
		board[row] = make([]Cell, size)
	}

	return &Game{
		size:    size,
		board:   board,
		current: Starter,
	}, nil
}

func (that *Game) CurrentPlayer() Player {
	return that.current
}

func (that *Game) BoardSize() int {
	return that.size
}

func (that *Game) Cell(row, col int) (Cell, error) {
	if err := that.checkBounds(row, col); err != nil {
		return Empty, err
	}

	return that.board[row][col], nil
}

func (that *Game) IsCellOccupied(row, col int) (bool, error) {
	cell, err := that.Cell(row, col)
	if err != nil {
		return false, err
	}

	return cell != Empty, nil
}

// CaptureCell places the current player's mark at (row, col).
// The turn is not passed: callers follow a successful capture with ChangeCurrentPlayer.
func (that *Game) CaptureCell(row, col int) error {
	if err := that.checkBounds(row, col); err != nil {
		return err
	}

	if that.IsGameFinished() {
		return apperror.ErrGameFinished
	}

	if that.board[row][col] != Empty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.board[row][col] = that.current.Mark()

	return nil
}

func (that *Game) ChangeCurrentPlayer() {
	that.current = that.current.Next()
}

// IsGameFinished reports whether a full row, column or diagonal holds one mark.
// A full board without such a line is not finished, see Outcome.
func (that *Game) IsGameFinished() bool {
	_, ok := that.Winner()
	return ok
}

// Winner returns the mark that completed a line, if any.
func (that *Game) Winner() (Cell, bool) {
	for _, line := range that.lines() {
		if mark, ok := that.uniform(line); ok {
			return mark, true
		}
	}

	return Empty, false
}

func (that *Game) IsBoardFull() bool {
	for _, row := range that.board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Game) Outcome() Outcome {
	switch {
	case that.IsGameFinished():
		return Won
	case that.IsBoardFull():
		return Draw
	default:
		return Ongoing
	}
}

// Rows returns a copy of the board, row by row.
func (that *Game) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for i, row := range that.board {
		rows[i] = append([]Cell(nil), row...)
	}

	return rows
}

func (that *Game) checkBounds(row, col int) error {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return fmt.Errorf("%w: row %d, col %d on a %dx%d board", apperror.ErrOutOfRange, row, col, that.size, that.size)
	}

	return nil
}

type coord struct {
	row, col int
}

// lines enumerates every row, every column and both diagonals.
func (that *Game) lines() [][]coord {
	lines := make([][]coord, 0, 2*that.size+2)

	for i := 0; i < that.size; i++ {
		row := make([]coord, that.size)
		col := make([]coord, that.size)
		for j := 0; j < that.size; j++ {
			row[j] = coord{row: i, col: j}
			col[j] = coord{row: j, col: i}
		}
		lines = append(lines, row, col)
	}

	mainDiagonal := make([]coord, that.size)
	antiDiagonal := make([]coord, that.size)
	for i := 0; i < that.size; i++ {
		mainDiagonal[i] = coord{row: i, col: i}
		antiDiagonal[i] = coord{row: i, col: that.size - 1 - i}
	}

	return append(lines, mainDiagonal, antiDiagonal)
}

func (that *Game) uniform(line []coord) (Cell, bool) {
	first := that.board[line[0].row][line[0].col]
	if first == Empty {
		return Empty, false
	}

	for _, c := range line[1:] {
		if that.board[c.row][c.col] != first {
			return Empty, false
		}
	}

	return first, true
}
