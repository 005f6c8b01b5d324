package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"noteshub/internal/content"
	"noteshub/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the resolved post index",
	Long: `Resolves the post index for one locale the same way the server does:
localized copies shadow their canonical English originals, everything
else falls back. Useful for checking what a locale actually serves
without starting the server.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("locale", "l", "", "locale to resolve (defaults to the configured default locale)")
	listCmd.Flags().Bool("json", false, "emit the index as JSON instead of a table")
}

// indexRow is the listing view of a post: metadata only, no body.
type indexRow struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Language string `json:"language"`
	Date     string `json:"date"`
	Snippets int    `json:"snippets"`
}

func runList(cmd *cobra.Command, args []string) error {
	locale := cfg.Locale()
	if raw, _ := cmd.Flags().GetString("locale"); raw != "" {
		var ok bool
		if locale, ok = models.ParseLocale(raw); !ok {
			return fmt.Errorf("unsupported locale %q", raw)
		}
	}

	mapper := content.NewMapper(content.MapperConfig{
		DocsRoot:     cfg.DocsRoot,
		I18nRoot:     cfg.I18nRoot,
		SnippetsRoot: cfg.SnippetsRoot,
	})

	posts, err := mapper.Posts(locale)
	if err != nil {
		return fmt.Errorf("scan content: %w", err)
	}

	rows := make([]indexRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, indexRow{
			Slug:     p.Slug,
			Title:    p.Title,
			Category: p.Category.String(),
			Language: p.Language.String(),
			Date:     p.Date,
			Snippets: len(p.Snippets),
		})
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tCATEGORY\tLANG\tDATE\tSNIPPETS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			row.Slug, row.Title, row.Category, row.Language, row.Date, row.Snippets)
	}
	return tw.Flush()
}
