package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

func (that *Server) handleState(sess *session, msg *Message) error {
	return that.sendState(sess, msg.Action, newGameResponse(sess))
}

func (that *Server) handlePress(sess *session, msg *Message) error {
	log := sess.logger.With("method", "handlePress")

	var req PressRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil || req.Row == nil || req.Col == nil {
		log.Warn("invalid press payload", "payload", string(msg.Payload))
		return that.sendError(sess, msg.Action, "row and col are required")
	}

	mark, err := sess.controller.Press(*req.Row, *req.Col)
	switch {
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrOutOfRange):
		log.Debug("press ignored", "row", *req.Row, "col", *req.Col, "error", err)
		return that.sendError(sess, msg.Action, err.Error())
	case err != nil:
		return fmt.Errorf("failed to press cell: %w", err)
	}

	log.Debug("cell captured", "row", *req.Row, "col", *req.Col, "mark", mark.String())

	response := newGameResponse(sess)
	response.Mark = mark.String()

	return that.sendState(sess, msg.Action, response)
}

func (that *Server) handleRestart(sess *session, msg *Message) error {
	if err := sess.controller.Restart(); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	sess.logger.Info("game restarted")

	return that.sendState(sess, msg.Action, newGameResponse(sess))
}
