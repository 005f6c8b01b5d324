// Package main is the entry point for the noteshub server and content
// tools. It wires configuration and logging into a cobra command tree;
// the actual work lives in the internal packages.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"noteshub/internal/config"
)

var version = "0.3.0"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "noteshub",
	Short: "Bilingual tech notes server and content tools",
	Long: `noteshub serves a bilingual markdown corpus as a website and JSON API,
and ships the content tooling that goes with it: table-of-contents
generation, snippet execution, and index inspection.

The corpus layout is docs/ for canonical English documents, i18n/<locale>/
for translations, and snippets/ for runnable code samples. Nothing is
persisted anywhere else; the filesystem is the database.`,
	Args: cobra.NoArgs,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default noteshub.yaml in . or $HOME/.config/noteshub)")
}

func initConfig() {
	// A missing .env is fine; values from a present one become
	// environment overrides before viper reads them.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
