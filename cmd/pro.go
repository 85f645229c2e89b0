package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/entitlement"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var proCmd = &cobra.Command{
	Use:   "pro",
	Short: "Show subscription status",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		out := cmd.OutOrStdout()
		ent := env.tracker.Entitlement()
		today := civil.Today()

		switch {
		case ent.Tier == entitlement.TierPro:
			fmt.Fprintln(out, theme.Highlight.Render("Pro"), "— full question bank, unlimited drills.")
		case ent.Active(today):
			fmt.Fprintf(out, "%s trial until %s.\n", theme.Highlight.Render("Pro"), ent.TrialEndDate)
		default:
			fmt.Fprintln(out, theme.Subtitle.Render("Free tier"),
				fmt.Sprintf("— %d questions per category, %d drill sessions.",
					entitlement.FreeQuestionsPerCategory, entitlement.FreeDrillSessions))
		}
		return nil
	},
}

var proTrialCmd = &cobra.Command{
	Use:   "trial",
	Short: "Start the 7-day pro trial",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.tracker.StartTrial(cmd.Context()); err != nil {
			return fmt.Errorf("start trial: %w", err)
		}
		ent := env.tracker.Entitlement()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Trial active until %s.\n",
			theme.Correct.Render("✓"), ent.TrialEndDate)
		return nil
	},
}

var proUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Switch to the pro tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.tracker.Upgrade(cmd.Context()); err != nil {
			return fmt.Errorf("upgrade: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Correct.Render("✓"), "Pro unlocked.")
		return nil
	},
}

func init() {
	proCmd.AddCommand(proTrialCmd)
	proCmd.AddCommand(proUpgradeCmd)
}
