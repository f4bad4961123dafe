// Package config loads ndarray runtime settings from YAML.
//
// Example file:
//
//	seed: 42
//	dtype: d
//	parallel:
//	  enabled: true
//	  workers: 4
//	  min_chunk_size: 1024
//	log:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Seed     int64    `yaml:"seed"`  // Negative picks a random seed
	DType    string   `yaml:"dtype"` // Single-character dtype tag
	Parallel Parallel `yaml:"parallel"`
	Log      Log      `yaml:"log"`
}

// Parallel mirrors parallel.Config.
type Parallel struct {
	Enabled      bool `yaml:"enabled"`
	Workers      int  `yaml:"workers"`        // 0 means runtime.NumCPU()
	MinChunkSize int  `yaml:"min_chunk_size"` // 0 means the package default
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:  -1,
		DType: string(array.Float64),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	//nolint:gosec // G304: config path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.ArrayDType(); err != nil {
		return err
	}
	if c.Parallel.Workers < 0 {
		return fmt.Errorf("%w: parallel.workers must be >= 0, got %d", ErrInvalid, c.Parallel.Workers)
	}
	if c.Parallel.MinChunkSize < 0 {
		return fmt.Errorf("%w: parallel.min_chunk_size must be >= 0, got %d", ErrInvalid, c.Parallel.MinChunkSize)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ArrayDType returns the configured element type. Only numeric dtypes are
// accepted since the demo program computes with it.
func (c Config) ArrayDType() (array.DType, error) {
	dt, err := array.ParseDType(c.DType)
	if err != nil {
		return 0, fmt.Errorf("%w: dtype: %w", ErrInvalid, err)
	}
	switch dt {
	case array.Float64, array.Float32, array.Uint64:
		return dt, nil
	default:
		return 0, fmt.Errorf("%w: dtype %s is not numeric", ErrInvalid, dt)
	}
}

// ParallelConfig converts the parallel section for the CPU backend.
func (c Config) ParallelConfig() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = c.Parallel.Enabled
	if c.Parallel.Workers > 0 {
		cfg.NumWorkers = c.Parallel.Workers
	}
	if c.Parallel.MinChunkSize > 0 {
		cfg.MinChunkSize = c.Parallel.MinChunkSize
	}
	return cfg
}

// Logger builds a slog.Logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Log.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (l Log) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %q", ErrInvalid, l.Level)
	}
	return level, nil
}
