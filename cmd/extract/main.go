// Command extract fits a ridge regression baseline model from gifsicle
// profiling data and saves the frozen coefficients as JSON.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/arstropica/gif-compressor/pkg/baseline"
)

type envSpec struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
}

// newLogger builds the run's logger from the LOG_LEVEL environment
// variable. Verbosity only changes what gets printed, never the numbers.
func newLogger() *slog.Logger {
	var env envSpec
	_ = envconfig.Process("", &env)
	level := slog.LevelInfo
	switch strings.ToUpper(env.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	var output string
	var plotPath string

	cmd := &cobra.Command{
		Use:          "extract <train_file>",
		Short:        "Extract a baseline model from training data",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			extractor, err := baseline.NewExtractor(args[0], logger)
			if err != nil {
				return err
			}
			artifact, err := extractor.Extract()
			if err != nil {
				return err
			}
			if err := artifact.Save(output); err != nil {
				return err
			}
			logger.Info("saved baseline model", slog.String("path", output))

			if plotPath != "" {
				if err := extractor.SaveResidualPlot(plotPath); err != nil {
					return err
				}
				logger.Info("saved diagnostic plot", slog.String("path", plotPath))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "baseline.json",
		"path to save the extracted baseline model")
	cmd.Flags().StringVar(&plotPath, "plot", "",
		"optional path for a cross-validated predicted-vs-actual plot")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
