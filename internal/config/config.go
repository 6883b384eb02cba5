package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole  = "console"
	ModeTerminal = "terminal"
	ModeWeb      = "web"
)

var (
	ErrUnknownMode      = errors.New("unknown mode")
	ErrInvalidBoardSize = errors.New("board size must be at least 1")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile    string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Mode       string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"console"`
	BoardSize  int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	HTTPPort   string `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"TICTACTOE_SOCKET_PORT" env-default:"8080"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, falling back to environment variables and defaults when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeConsole, ModeTerminal, ModeWeb:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.BoardSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBoardSize, that.BoardSize)
	}

	return nil
}
