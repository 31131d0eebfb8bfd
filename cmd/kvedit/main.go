package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/ruminaider/kvedit/internal/config"
	"github.com/ruminaider/kvedit/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath string
	logLevel   string

	// Loaded by the root command before any subcommand runs.
	cfg    = config.Default()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "kvedit",
	Short: "Edit nested key-value parameter files",
	Long: "kvedit edits JSON, YAML and TOML parameter files as a tree of typed " +
		"key-value nodes or as raw JSON, keeping both views consistent.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
		logger = setupLogger(os.Stderr, logLevel)
		applyColor(cfg.Color)
		logger.Debug("config loaded", "path", configPath, "indent", cfg.Indent, "mode", cfg.DefaultMode)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kvedit %s\n", version)
	},
}

func applyColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", paths.ConfigFile(), "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(editCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
