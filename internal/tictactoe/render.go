package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Symbol returns the single character drawn for a cell.
func Symbol(cell entity.Cell) string {
	if cell == entity.Empty {
		return " "
	}
	return cell.String()
}

// FormatBoard renders a board snapshot as text, one line per row followed by a separator.
func FormatBoard(rows [][]entity.Cell) string {
	var sb strings.Builder

	separator := "." + strings.Repeat(" _ .", len(rows))

	for _, row := range rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + Symbol(cell) + " |")
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
		sb.WriteString("\n")
	}

	return sb.String()
}

// StatusLine describes the game for display: whose turn it is or how it ended.
func StatusLine(game *entity.Game) string {
	switch game.Outcome() {
	case entity.Won:
		winner, _ := game.Winner()
		return fmt.Sprintf("%s wins!", winner)
	case entity.Draw:
		return "Draw!"
	default:
		player := game.CurrentPlayer()
		return fmt.Sprintf("Turn: %s player (%s)", player, player.Mark())
	}
}
