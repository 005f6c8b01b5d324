package main

import (
	"strings"

	"github.com/spf13/cobra"

	"noteshub/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a code snippet in its language container",
	Long: `Runs a snippet file inside the docker compose service for its language,
selected by file extension.

Supported languages: ` + strings.Join(runner.Languages(), ", ") + `.
With --db, the matching database container is started first; sqlite is
embedded and starts nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnippet,
}

func init() {
	runCmd.Flags().String("db", "", "database service to start first ("+strings.Join(runner.Databases(), ", ")+")")
}

func runSnippet(cmd *cobra.Command, args []string) error {
	db, _ := cmd.Flags().GetString("db")
	return runner.New(nil).Run(cmd.Context(), args[0], db)
}
