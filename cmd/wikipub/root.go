package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub/pkg/config"
)

var (
	verbose bool
	cfgPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wikipub",
	Short: "Publish markdown notes as replaceable wiki articles over nostr",
	Long: `wikipub reads a markdown note with optional YAML frontmatter, builds a
tagged wiki-article event (kind 30818), signs it with your private key and
broadcasts it to the configured relays. Republishing a page with the same
title replaces the prior version while keeping its original publish time.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file path (flag or per-user default) and
// loads it. A missing file silently yields the defaults; publishing with
// the placeholder key then fails at key decoding.
func loadConfig() (config.Config, string, error) {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, "", err
		}
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: user config dir)")
}
