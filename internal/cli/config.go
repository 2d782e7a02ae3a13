package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcoot/connectn/internal/console"
	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/game"
)

// Config holds CLI configuration
type Config struct {
	Output   string
	Verbose  bool
	LogLevel string
	Pieces   string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   getEnvOrDefault("CONNECTN_OUTPUT", console.FormatText),
		Verbose:  false,
		LogLevel: getEnvOrDefault("CONNECTN_LOG_LEVEL", "warn"),
		Pieces:   getEnvOrDefault("CONNECTN_PIECES", string(model.DefaultPieces[:])),
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// environment. A missing file is fine.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks the output format
func (c *Config) Validate() error {
	if !console.IsValidFormat(c.Output) {
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, console.FormatText, console.FormatJSON)
	}
	return nil
}

// ParsePieces returns the two display markers for player one and two
func (c *Config) ParsePieces() ([2]rune, error) {
	runes := []rune(c.Pieces)
	if len(runes) != 2 {
		return [2]rune{}, fmt.Errorf("pieces %q: %w", c.Pieces, model.ErrInvalidPieces)
	}
	pieces := [2]rune{runes[0], runes[1]}
	if err := game.ValidatePieces(pieces); err != nil {
		return [2]rune{}, fmt.Errorf("pieces %q: %w", c.Pieces, err)
	}
	return pieces, nil
}

// Level returns the configured log level; verbose forces debug
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger creates the text logger used for diagnostics
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func defaultEnvFile() string {
	return getEnvOrDefault("CONNECTN_ENV_FILE", ".env")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
