package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/transport/rest"
	"github.com/rocketscienceinc/tictactoe/transport/terminal"
	"github.com/rocketscienceinc/tictactoe/transport/websocket"
)

// RunApp - runs the front end selected in the configuration until it ends or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting game", "mode", conf.Mode, "boardSize", conf.BoardSize)

	var err error
	switch conf.Mode {
	case config.ModeConsole:
		err = runConsole(ctx, logger, conf, os.Stdin, os.Stdout)
	case config.ModeTerminal:
		err = runTerminal(ctx, logger, conf)
	case config.ModeWeb:
		err = runWeb(ctx, logger, conf)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownMode, conf.Mode)
	}

	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	game, err := entity.NewGame(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	controller := tictactoe.NewGameController(logger, game, in, out)

	// reading stdin cannot be interrupted, so a signal abandons the loop instead
	done := make(chan error, 1)
	go func() {
		done <- controller.HandleGameFlow(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if errors.Is(err, apperror.ErrInputClosed) {
		logger.Info("input closed, leaving the game")
		return nil
	}

	return err
}

func runTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	controller, err := tictactoe.NewClickController(logger, conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	return terminal.New(logger, controller).Run(ctx)
}

func runWeb(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	restServer, err := rest.New(logger, conf.SocketPort)
	if err != nil {
		return fmt.Errorf("could not create HTTP server: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- restServer.Start(ctx, conf.HTTPPort)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, conf.BoardSize).Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
