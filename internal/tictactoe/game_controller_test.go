package tictactoe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newConsole(t *testing.T, size int, input string) (*GameController, *entity.Game, *bytes.Buffer) {
	t.Helper()

	game, err := entity.NewGame(size)
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return NewGameController(discardLogger(), game, strings.NewReader(input), out), game, out
}

func moves(coords ...int) string {
	var sb strings.Builder
	for _, c := range coords {
		sb.WriteString(string(rune('0' + c)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestGameController_HandleGameFlow(t *testing.T) {
	t.Run("Starter wins the top row", func(t *testing.T) {
		// Given: X plays row 0 while O plays (1,0) and (1,1)
		controller, game, out := newConsole(t, 3, moves(0, 0, 1, 0, 0, 1, 1, 1, 0, 2))

		// When: the console loop runs
		err := controller.HandleGameFlow(context.Background())

		// Then: the game ends with X as the winner
		require.NoError(t, err)
		assert.True(t, game.IsGameFinished())
		assert.Equal(t, entity.Second, game.CurrentPlayer())
		assert.Contains(t, out.String(), "| X | X | X |")
		assert.Contains(t, out.String(), msgGameOver+"\nX wins!\n")
	})

	t.Run("Full board ends as a draw", func(t *testing.T) {
		// Given: a move sequence that fills the board without a line
		controller, game, out := newConsole(t, 3, moves(0, 0, 0, 1, 0, 2, 1, 1, 1, 0, 1, 2, 2, 1, 2, 0, 2, 2))

		// When: the console loop runs
		err := controller.HandleGameFlow(context.Background())

		// Then: the loop stops although no line was completed
		require.NoError(t, err)
		assert.False(t, game.IsGameFinished())
		assert.Equal(t, entity.Draw, game.Outcome())
		assert.Contains(t, out.String(), "Draw!")
	})

	t.Run("Input ends before the game", func(t *testing.T) {
		// Given: a single move
		controller, game, _ := newConsole(t, 3, moves(2, 2))

		// When: the console loop runs
		err := controller.HandleGameFlow(context.Background())

		// Then: ErrInputClosed is returned after the move was played
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		cell, err := game.Cell(2, 2)
		require.NoError(t, err)
		assert.Equal(t, entity.Cross, cell)
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		controller, _, _ := newConsole(t, 3, moves(0, 0))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := controller.HandleGameFlow(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Works on a 5x5 board", func(t *testing.T) {
		// Given: X fills column 4 while O plays column 0
		controller, game, out := newConsole(t, 5, moves(0, 4, 0, 0, 1, 4, 1, 0, 2, 4, 2, 0, 3, 4, 3, 0, 4, 4))

		err := controller.HandleGameFlow(context.Background())

		require.NoError(t, err)
		assert.True(t, game.IsGameFinished())
		assert.Contains(t, out.String(), "Please enter row (0-4): ")
	})
}

func TestGameController_ReadMove(t *testing.T) {
	t.Run("Re-prompts on bad input", func(t *testing.T) {
		// Given: a non integer, an out of range row, a negative column and then a valid move
		controller, _, out := newConsole(t, 3, "abc\n7\n1\n-1\n1\n2\n")

		// When: reading a move
		row, col, err := controller.ReadMove()

		// Then: every bad line is reported and the valid move is returned
		require.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 2, col)
		assert.Contains(t, out.String(), msgInvalidInteger)
		assert.Equal(t, 2, strings.Count(out.String(), msgInvalidInput+"\n"))
		assert.Equal(t, 4, strings.Count(out.String(), "Please enter row (0-2): "))
	})

	t.Run("Re-prompts on an occupied cell", func(t *testing.T) {
		// Given: a game where (0,0) is taken
		controller, game, out := newConsole(t, 3, "0\n0\n0\n1\n")
		require.NoError(t, game.CaptureCell(0, 0))
		game.ChangeCurrentPlayer()

		// When: the player first picks (0,0) and then (0,1)
		row, col, err := controller.ReadMove()

		// Then: the occupied cell is rejected
		require.NoError(t, err)
		assert.Equal(t, 0, row)
		assert.Equal(t, 1, col)
		assert.Contains(t, out.String(), msgCellOccupied)
	})

	t.Run("Fails when input is closed", func(t *testing.T) {
		controller, _, _ := newConsole(t, 3, "1\n")

		_, _, err := controller.ReadMove()

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestParseCoordinate(t *testing.T) {
	testCases := []struct {
		input string
		size  int
		want  int
		err   error
	}{
		{input: "0", size: 3, want: 0},
		{input: " 2 \r", size: 3, want: 2},
		{input: "4", size: 5, want: 4},
		{input: "3", size: 3, err: apperror.ErrOutOfRange},
		{input: "-1", size: 3, err: apperror.ErrOutOfRange},
		{input: "", size: 3, err: apperror.ErrParse},
		{input: "one", size: 3, err: apperror.ErrParse},
		{input: "1.5", size: 3, err: apperror.ErrParse},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCoordinate(tc.input, tc.size)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
