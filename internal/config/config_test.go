package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, "log-level: debug\nmode: web\nboard-size: 5\nhttp-port: \"9191\"\nsocket-port: \"8181\"\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:   "debug",
			Mode:       ModeWeb,
			BoardSize:  5,
			HTTPPort:   "9191",
			SocketPort: "8181",
		}, conf)
	})

	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "mode: console\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the defaults are filled in
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "board-size: 3\n")
		t.Setenv("TICTACTOE_BOARD_SIZE", "4")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 4, conf.BoardSize)
	})

	t.Run("Reads only the environment without a path", func(t *testing.T) {
		t.Setenv("TICTACTOE_MODE", ModeTerminal)

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, ModeTerminal, conf.Mode)
		assert.Equal(t, 3, conf.BoardSize)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: gui\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Rejects a negative board size", func(t *testing.T) {
		path := writeConfig(t, "board-size: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("Missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}
