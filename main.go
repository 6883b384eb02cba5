package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := &cli.Command{
		Name:  "tictactoe",
		Usage: "play two-player Tic-Tac-Toe in the console, the terminal or the browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file (default: ./config.yml when present)",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "front end: console, terminal or web",
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "board size",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug or info",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd)
	logger := initLogger(conf)

	return app.RunApp(ctx, logger, conf)
}

// initialize config, flags override file and environment values.
func initConfig(cmd *cli.Command) *config.Config {
	path := cmd.String("config")
	if path == "" {
		path = defaultConfigPath()
	}

	conf := config.MustLoad(path)

	if cmd.IsSet("mode") {
		conf.Mode = cmd.String("mode")
	}

	if cmd.IsSet("size") {
		conf.BoardSize = int(cmd.Int("size"))
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return conf
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	path := filepath.Join(baseDir, "./config.yml")
	if _, err = os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}

	return path
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(logOutput(conf), &slog.HandlerOptions{Level: level}))
}

// logOutput keeps logs away from the screen the front end draws on.
func logOutput(conf *config.Config) io.Writer {
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		return file
	}

	switch conf.Mode {
	case config.ModeConsole:
		return os.Stderr
	case config.ModeTerminal:
		return io.Discard
	default:
		return os.Stdout
	}
}
