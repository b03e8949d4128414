package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/maze"
)

// EnvPrefix prefixes every environment override, e.g. MAZE_WIDTH.
const EnvPrefix = "MAZE_"

// Algorithm holds a maze.Algorithm read from YAML, flags or the environment
// in its text form.
type Algorithm struct {
	Value maze.Algorithm
}

// UnmarshalYAML decodes a scalar such as "GrowingTree,NewestRandom,75".
func (a *Algorithm) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("config: algorithm at line %d: %w", node.Line, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalYAML encodes the canonical text form.
func (a Algorithm) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (and so flag.TextVar).
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	a.Value = alg
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a Algorithm) String() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.String()
}

// Maze holds the generation parameters shared by the CLI and the defaults of
// the HTTP API.
type Maze struct {
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Algorithm Algorithm `yaml:"algorithm"`
	// Seed 0 means "pick one": the CLI draws a random seed and prints it.
	Seed  int64   `yaml:"seed"`
	Scale float64 `yaml:"scale"`
}

// Server holds the settings of the HTTP daemon.
type Server struct {
	Addr          string        `yaml:"addr"`
	GinMode       string        `yaml:"gin_mode"`
	MaxDimension  int           `yaml:"max_dimension"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	CacheSize     int           `yaml:"cache_size"`
}

// Config is the complete configuration of both binaries.
type Config struct {
	Maze     Maze   `yaml:"maze"`
	Server   Server `yaml:"server"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Maze: Maze{
			Width:     20,
			Height:    20,
			Algorithm: Algorithm{Value: maze.RecursiveBacktracking{}},
			Scale:     1,
		},
		Server: Server{
			Addr:         ":8080",
			GinMode:      "release",
			MaxDimension: 200,
			CacheTTL:     10 * time.Minute,
			CacheSize:    256,
		},
		LogLevel: "info",
	}
}

// Load builds a Config from, in increasing priority: Default, the YAML file
// at path (skipped when path is empty), a .env file in the working directory
// if present, and MAZE_* environment variables.
//
// Errors: file read/parse errors and malformed environment values, wrapped;
// ErrInvalidConfig when the result fails Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that the binaries rely on.
func (c Config) Validate() error {
	switch {
	case c.Maze.Width < 1 || c.Maze.Height < 1:
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalidConfig, c.Maze.Width, c.Maze.Height)
	case c.Maze.Algorithm.Value == nil:
		return fmt.Errorf("%w: no algorithm", ErrInvalidConfig)
	case c.Maze.Scale <= 0 || c.Maze.Scale > 8:
		return fmt.Errorf("%w: scale %g outside (0,8]", ErrInvalidConfig, c.Maze.Scale)
	case c.Server.MaxDimension < 1:
		return fmt.Errorf("%w: max_dimension %d", ErrInvalidConfig, c.Server.MaxDimension)
	case c.Server.CacheSize < 0:
		return fmt.Errorf("%w: cache_size %d", ErrInvalidConfig, c.Server.CacheSize)
	}
	return nil
}

// applyEnv overrides fields from MAZE_* variables that are set.
func (c *Config) applyEnv() error {
	return errors.Join(
		envInt("WIDTH", &c.Maze.Width),
		envInt("HEIGHT", &c.Maze.Height),
		envText("ALGORITHM", &c.Maze.Algorithm),
		envInt64("SEED", &c.Maze.Seed),
		envFloat("SCALE", &c.Maze.Scale),
		envString("ADDR", &c.Server.Addr),
		envString("GIN_MODE", &c.Server.GinMode),
		envInt("MAX_DIMENSION", &c.Server.MaxDimension),
		envString("REDIS_ADDR", &c.Server.RedisAddr),
		envString("REDIS_PASSWORD", &c.Server.RedisPassword),
		envInt("REDIS_DB", &c.Server.RedisDB),
		envDuration("CACHE_TTL", &c.Server.CacheTTL),
		envInt("CACHE_SIZE", &c.Server.CacheSize),
		envString("LOG_LEVEL", &c.LogLevel),
	)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	return strings.TrimSpace(v), ok
}

func envString(key string, dst *string) error {
	if v, ok := lookup(key); ok {
		*dst = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s%s must be a number: %w", EnvPrefix, key, err)
	}
	*dst = f
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s must be a duration: %w", EnvPrefix, key, err)
	}
	*dst = d
	return nil
}

func envText(key string, dst *Algorithm) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	if err := dst.UnmarshalText([]byte(v)); err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return nil
}
