package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectn/internal/console"
	"github.com/mcoot/connectn/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	envErr := LoadEnvFile(defaultEnvFile())
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connectn",
		Short: "Play Connect-N against a friend in the terminal",
		Long: `connectn is a two-player Connect-N game for the console.

The board size and the number of pieces in a row needed to win are asked for
interactively. Players then take turns choosing a column to drop a piece into.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, cfg)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: CONNECTN_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging on stderr")

	return rootCmd
}

func runGame(cmd *cobra.Command, cfg *Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	pieces, err := cfg.ParsePieces()
	if err != nil {
		return err
	}

	logger := NewLogger(cmd.ErrOrStderr(), level)
	app := factory.New(factory.Config{Logger: logger})
	var opts []console.Option
	if cfg.Output == console.FormatJSON {
		opts = append(opts, console.WithPromptWriter(cmd.ErrOrStderr()))
	}
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Output, opts...)

	summary, err := app.GameController.Run(cmd.Context(), con, pieces)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logger.Info("input closed before the game finished")
		return nil
	}
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	logger.Debug("session finished",
		slog.String("game_id", string(summary.ID)),
		slog.String("state", string(summary.State)),
	)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
