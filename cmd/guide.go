package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var guideCmd = &cobra.Command{
	Use:   "guide [category]",
	Short: "Read a topic study guide",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Load()
		if err != nil {
			return fmt.Errorf("load question catalog: %w", err)
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			fmt.Fprintln(out, theme.Title.Render("Available guides"))
			for _, g := range catalog.Guides() {
				fmt.Fprintf(out, "  %-20s %s\n", g.Category, g.Title)
			}
			fmt.Fprintln(out, theme.Hint.Render("Run 'quantprep guide <category>' to read one."))
			return nil
		}

		want := content.Category(args[0])
		for _, g := range catalog.Guides() {
			if g.Category != want {
				continue
			}
			fmt.Fprintln(out, theme.Title.Render(g.Title))
			fmt.Fprintln(out, theme.Body.Render(g.Overview))
			for _, sec := range g.Sections {
				fmt.Fprintf(out, "\n%s\n", theme.Label.Render(sec.Title))
				fmt.Fprintln(out, theme.Body.Render(sec.Content))
				for _, f := range sec.KeyFormulas {
					fmt.Fprintf(out, "  %s %s\n", theme.Highlight.Render("ƒ"), f)
				}
				for _, tip := range sec.Tips {
					fmt.Fprintf(out, "  %s %s\n", theme.Hint.Render("tip:"), tip)
				}
			}
			return nil
		}
		return fmt.Errorf("no guide for category %q", args[0])
	},
}
