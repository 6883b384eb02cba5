package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// ParseCoordinate turns a line of user input into a row or column index in [0, size).
func ParseCoordinate(input string, size int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, strings.TrimSpace(input))
	}

	if value < 0 || value >= size {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", apperror.ErrOutOfRange, value, size)
	}

	return value, nil
}
