package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress data",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(out, theme.Incorrect.Render("This erases all quiz and drill progress.")+" Type 'yes' to continue: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
				fmt.Fprintln(out, theme.Hint.Render("Aborted."))
				return nil
			}
		}

		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.tracker.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(out, theme.Correct.Render("Progress reset."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
