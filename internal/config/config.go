// Package config resolves runtime settings from defaults, an optional .env
// file and FOODVERSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvData          = "FOODVERSE_DATA"
	EnvLog           = "FOODVERSE_LOG"
	EnvDebug         = "FOODVERSE_DEBUG"
	EnvRingRadius    = "FOODVERSE_RING_RADIUS"
	EnvAdvanceDelay  = "FOODVERSE_ADVANCE_DELAY"
	EnvMinWidth      = "FOODVERSE_MIN_WIDTH"
	EnvCellWidth     = "FOODVERSE_CELL_WIDTH"
	defaultEnvFile   = ".env"
	defaultLogFolder = "foodverse"
)

// Config holds all runtime settings.
type Config struct {
	// DataPath points at a replacement dataset. Empty selects the
	// embedded one.
	DataPath string

	// LogPath is the log file. Empty selects DefaultLogPath.
	LogPath string
	Debug   bool

	RingRadius   float64       `validate:"gt=0"`
	AdvanceDelay time.Duration `validate:"gte=0"`

	// MinViewportWidth is in logical units; CellWidth converts terminal
	// columns to logical units.
	MinViewportWidth int `validate:"gt=0"`
	CellWidth        int `validate:"gt=0"`
}

var validate = validator.New()

// Default returns a Config with the built-in values.
func Default() Config {
	return Config{
		RingRadius:       5,
		AdvanceDelay:     2 * time.Second,
		MinViewportWidth: 768,
		CellWidth:        8,
	}
}

// Load reads envFile (".env" when empty) if it exists and then applies the
// environment on top of Default.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv(Default())
}

// FromEnv overrides fields of base with any FOODVERSE_* variables that are set.
func FromEnv(base Config) (Config, error) {
	cfg := base
	if v := os.Getenv(EnvData); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	if v := os.Getenv(EnvRingRadius); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRingRadius, err)
		}
		cfg.RingRadius = r
	}
	if v := os.Getenv(EnvAdvanceDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAdvanceDelay, err)
		}
		cfg.AdvanceDelay = d
	}
	if v := os.Getenv(EnvMinWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMinWidth, err)
		}
		cfg.MinViewportWidth = n
	}
	if v := os.Getenv(EnvCellWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvCellWidth, err)
		}
		cfg.CellWidth = n
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no component can work with. Every offending
// field is reported.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s must be %s %s, got %v",
			fe.Field(), comparison(fe.Tag()), fe.Param(), fe.Value()))
	}
	return errors.Join(errs...)
}

func comparison(tag string) string {
	switch tag {
	case "gt":
		return "greater than"
	case "gte":
		return "at least"
	}
	return tag
}

// MinColumns returns the terminal width needed for the visualization.
func (c Config) MinColumns() int {
	return (c.MinViewportWidth + c.CellWidth - 1) / c.CellWidth
}

// ResolveLogPath returns LogPath, or DefaultLogPath when it is empty, and
// makes sure the parent directory exists.
func (c Config) ResolveLogPath() (string, error) {
	if c.LogPath != "" {
		return c.LogPath, EnsureDir(c.LogPath)
	}
	return DefaultLogPath()
}

// DefaultLogPath returns $XDG_STATE_HOME/foodverse/foodverse.log, falling
// back to ~/.local/state.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, defaultLogFolder, "foodverse.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
