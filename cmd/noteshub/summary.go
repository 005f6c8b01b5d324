package main

import (
	"github.com/spf13/cobra"

	"noteshub/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate the table of contents for the docs tree",
	Long: `Walks the docs tree, groups documents by their top-level directory, and
writes a markdown table of contents linking every document by its first
heading. Run it after adding or renaming documents.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringP("output", "o", "SUMMARY.md", "path of the generated table of contents")
}

func runSummary(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output")
	return summary.WriteFile(cfg.DocsRoot, out)
}
