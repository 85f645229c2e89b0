package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List questions due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		out := cmd.OutOrStdout()
		today := civil.Today()
		if !env.tracker.Entitlement().Active(today) {
			fmt.Fprintln(out, theme.Hint.Render(
				"The review queue is a pro feature. Run 'quantprep pro trial' to unlock it."))
			return nil
		}

		ids := env.tracker.DueQuestions()
		if len(ids) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("Nothing due. Come back tomorrow."))
			return nil
		}

		snap := env.tracker.GetProgress()
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%d question(s) due", len(ids))))
		for _, id := range ids {
			card := snap.SRData[id]
			label := id
			if q, ok := env.catalog.Lookup(id); ok {
				label = fmt.Sprintf("%s (%s)", q.Title, q.Category)
			}
			record := fmt.Sprintf("%.0f%% over %d attempt(s)", 100*card.Accuracy(), card.TotalAttempts)
			overdue := card.OverdueDays(today)
			if overdue > 0 {
				fmt.Fprintf(out, "  %s — %s, %s\n", label,
					theme.Subtitle.Render(record),
					theme.Incorrect.Render(fmt.Sprintf("%dd overdue", overdue)))
			} else {
				fmt.Fprintf(out, "  %s — %s\n", label, theme.Subtitle.Render(record))
			}
		}
		fmt.Fprintln(out, theme.Hint.Render("Run 'quantprep quiz' to review them."))
		return nil
	},
}
