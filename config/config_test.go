package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/maze"
)

const sampleYAML = `
maze:
  width: 30
  height: 12
  algorithm: "g,newestrandom,75"
  seed: 9
server:
  cache_ttl: 90s
  redis_addr: localhost:6379
log_level: debug
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, maze.RecursiveBacktracking{}, cfg.Maze.Algorithm.Value)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Maze.Width)
	assert.Equal(t, 12, cfg.Maze.Height)
	assert.Equal(t, int64(9), cfg.Maze.Seed)
	assert.Equal(t, 1.0, cfg.Maze.Scale, "unset keys keep defaults")
	assert.Equal(t, maze.GrowingTree{Selection: maze.NewestRandom(75)}, cfg.Maze.Algorithm.Value)
	assert.Equal(t, 90*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Server.RedisAddr)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAZE_WIDTH", "44")
	t.Setenv("MAZE_ALGORITHM", "kr")
	t.Setenv("MAZE_CACHE_TTL", "1m")
	t.Setenv("MAZE_SCALE", " 2.5 ")

	cfg, err := config.Load(writeFile(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 44, cfg.Maze.Width)
	assert.Equal(t, 12, cfg.Maze.Height)
	assert.Equal(t, maze.Kruskal{}, cfg.Maze.Algorithm.Value)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, 2.5, cfg.Maze.Scale)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	})
	t.Run("bad algorithm in file", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "maze:\n  algorithm: zigzag\n"))
		assert.True(t, errors.Is(err, config.ErrUnknownAlgorithm), "got %v", err)
	})
	t.Run("bad env integer", func(t *testing.T) {
		t.Setenv("MAZE_HEIGHT", "tall")
		_, err := config.Load("")
		assert.Error(t, err)
	})
	t.Run("bad env algorithm", func(t *testing.T) {
		t.Setenv("MAZE_ALGORITHM", "g,newestoldest")
		_, err := config.Load("")
		assert.True(t, errors.Is(err, config.ErrPercent), "got %v", err)
	})
	t.Run("scale out of range", func(t *testing.T) {
		t.Setenv("MAZE_SCALE", "9")
		_, err := config.Load("")
		assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
	})
	t.Run("zero width", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "maze:\n  width: 0\n"))
		assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
	})
}

func TestAlgorithm_YAMLRoundTrip(t *testing.T) {
	in := config.Maze{
		Width:     3,
		Height:    4,
		Algorithm: config.Algorithm{Value: maze.Eller{Scan: maze.Vertical}},
		Scale:     1,
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EllersAlgorithm,Vertical")

	var out config.Maze
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
