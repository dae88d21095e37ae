package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/detrace/internal/logging"
	"github.com/katalvlaran/detrace/internal/render"
	"github.com/spf13/cobra"
)

// Environment fallbacks for the persistent flags.
const (
	envLogLevel = "DETRACE_LOG_LEVEL"
	envOutput   = "DETRACE_OUTPUT"
	envColor    = "DETRACE_COLOR"
	envAddr     = "DETRACE_ADDR"
)

// app carries what the persistent flags resolve to.
type app struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	format render.Format
	color  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "detrace",
		Short: "detrace computes determinants and narrates every step",
		Long: `detrace computes the determinant of a small square matrix by Sarrus' rule,
Laplace expansion or Chiò's condensation and prints the worked steps.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", envOr(envLogLevel, "warn"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("output", "o", envOr(envOutput, "text"), "Output format: text, markdown, json")
	rootCmd.PersistentFlags().String("color", envOr(envColor, "auto"), "Colorize output: auto, always, never")

	rootCmd.AddCommand(
		newComputeCmd(a),
		newRandomCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

func (a *app) configure(cmd *cobra.Command) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = logging.NewWithWriter(a.errOut, level)

	formatName, _ := cmd.Flags().GetString("output")
	if a.format, err = render.ParseFormat(formatName); err != nil {
		return err
	}

	colorMode, _ := cmd.Flags().GetString("color")
	switch strings.ToLower(colorMode) {
	case "auto", "":
		a.color = render.IsTerminal(a.out)
	case "always":
		a.color = true
	case "never":
		a.color = false
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", colorMode)
	}

	return nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}
