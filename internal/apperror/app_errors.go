package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange       = errors.New("coordinate is out of range")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrParse            = errors.New("input is not an integer")
	ErrInputClosed      = errors.New("input closed before the game finished")
)
