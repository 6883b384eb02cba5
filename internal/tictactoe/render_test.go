package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBoard(t *testing.T) {
	rows := [][]entity.Cell{
		{entity.Cross, entity.Empty},
		{entity.Empty, entity.Circle},
	}

	expected := "" +
		"| X |   |\n" +
		". _ . _ .\n" +
		"|   | O |\n" +
		". _ . _ .\n"

	assert.Equal(t, expected, FormatBoard(rows))
}

func TestStatusLine(t *testing.T) {
	game, err := entity.NewGame(3)
	require.NoError(t, err)

	assert.Equal(t, "Turn: first player (X)", StatusLine(game))

	game.ChangeCurrentPlayer()
	assert.Equal(t, "Turn: second player (O)", StatusLine(game))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "X", Symbol(entity.Cross))
	assert.Equal(t, "O", Symbol(entity.Circle))
	assert.Equal(t, " ", Symbol(entity.Empty))
}
