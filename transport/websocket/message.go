package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	actionState   = "game:state"
	actionPress   = "game:press"
	actionRestart = "game:restart"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PressRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type GameResponse struct {
	Session  string     `json:"session"`
	Size     int        `json:"size"`
	Board    [][]string `json:"board"`
	Turn     string     `json:"turn"`
	Mark     string     `json:"mark,omitempty"`
	Outcome  string     `json:"outcome"`
	Winner   string     `json:"winner,omitempty"`
	Finished bool       `json:"finished"`
	Status   string     `json:"status"`
	Error    string     `json:"error,omitempty"`
}

type Response struct {
	Action  string        `json:"action"`
	Payload *GameResponse `json:"payload"`
}

func newGameResponse(sess *session) *GameResponse {
	game := sess.controller.Game()
	rows := game.Rows()

	board := make([][]string, len(rows))
	for i, row := range rows {
		board[i] = make([]string, len(row))
		for j, cell := range row {
			board[i][j] = cell.String()
		}
	}

	response := &GameResponse{
		Session:  sess.id,
		Size:     game.BoardSize(),
		Board:    board,
		Turn:     game.CurrentPlayer().Mark().String(),
		Outcome:  game.Outcome().String(),
		Finished: sess.controller.Frozen(),
		Status:   tictactoe.StatusLine(game),
	}

	if winner, ok := game.Winner(); ok {
		response.Winner = winner.String()
	}

	return response
}
