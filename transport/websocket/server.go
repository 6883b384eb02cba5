package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	shutdownTimeout = 5 * time.Second
	maxMessageSize  = 1024
)

// session is one browser tab playing its own game.
type session struct {
	id         string
	conn       *websocket.Conn
	controller *tictactoe.ClickController
	logger     *slog.Logger
}

type Server struct {
	logger    *slog.Logger
	boardSize int
	upgrader  websocket.Upgrader

	handlers map[string]func(sess *session, message *Message) error
}

func New(logger *slog.Logger, boardSize int) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		boardSize: boardSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHost,
		},

		handlers: make(map[string]func(*session, *Message) error),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionPress] = server.handlePress
	server.handlers[actionRestart] = server.handleRestart

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown WebSocket server", "error", err)
		}
	})
	defer stop()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and gives it a fresh game.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	sessionID := uuid.NewString()
	log := that.logger.With("session", sessionID)

	controller, err := tictactoe.NewClickController(log, that.boardSize)
	if err != nil {
		log.Error("failed to create game", "error", err)
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	// hijacked connections outlive http.Server.Shutdown
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	sess := &session{
		id:         sessionID,
		conn:       conn,
		controller: controller,
		logger:     log,
	}

	log.Info("WebSocket connection established")

	if err = that.handleMessages(sess); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(sess *session) error {
	log := sess.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := sess.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(sess, actionError, "invalid message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(sess, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(sess, &message); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

func (that *Server) sendState(sess *session, action string, payload *GameResponse) error {
	if err := sess.conn.WriteJSON(Response{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func (that *Server) sendError(sess *session, action, reason string) error {
	payload := newGameResponse(sess)
	payload.Error = reason

	return that.sendState(sess, action, payload)
}

// sameHost accepts pages served from the same host on any port.
func sameHost(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := req.Host
	if h, _, splitErr := net.SplitHostPort(host); splitErr == nil {
		host = h
	}

	return u.Hostname() == host
}
