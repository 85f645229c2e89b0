package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var weakCmd = &cobra.Command{
	Use:   "weak",
	Short: "Show your weakest topic tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		out := cmd.OutOrStdout()
		if !env.tracker.Entitlement().Active(civil.Today()) {
			fmt.Fprintln(out, theme.Hint.Render(
				"Tag analytics are a pro feature. Run 'quantprep pro trial' to unlock them."))
			return nil
		}

		weak := env.tracker.WeakTags(env.cfg.Quiz.WeakTagMinAttempts)
		if len(weak) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("Not enough attempts yet to rank tags."))
			return nil
		}

		fmt.Fprintln(out, theme.Title.Render("Weakest tags"))
		for _, w := range weak {
			fmt.Fprintf(out, "  %-24s %s\n", w.Tag,
				theme.Incorrect.Render(fmt.Sprintf("%d%%", w.AccuracyPercent)))
		}

		practised := 0
		for _, b := range env.tracker.GetProgress().Tags {
			if b.Attempted > 0 {
				practised++
			}
		}
		fmt.Fprintln(out, theme.Hint.Render(
			fmt.Sprintf("Practised %d of %d catalog tags.", practised, len(env.catalog.Tags()))))
		return nil
	},
}
