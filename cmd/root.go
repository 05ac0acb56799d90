package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cameronp98/frothy/config"
	"github.com/cameronp98/frothy/frothy"
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootDebug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "frothy",
	Short: "A small postfix language",
	Long: `Frothy evaluates postfix programs.

	x 5 =
	square { x x * } fn =
	square call`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Log evaluation to stderr")
}

// loadConfig reads the file named by --config.  Without the flag every option
// is unset.
func loadConfig() (*config.File, error) {
	if rootConfigPath == "" {
		return &config.File{}, nil
	}
	return config.Load(rootConfigPath)
}

// interpreterConfigs returns the interpreter configuration for c writing
// program output to stdout and debug logs to stderr.
func interpreterConfigs(c *config.File, stdout, stderr io.Writer) ([]frothy.Config, error) {
	configs, err := c.Configs()
	if err != nil {
		return nil, err
	}
	configs = append([]frothy.Config{frothy.WithStdout(stdout)}, configs...)
	if rootDebug || c.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		configs = append(configs, frothy.WithLogger(logger))
	}
	return configs, nil
}
