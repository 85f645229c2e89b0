package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/drill"
	"github.com/quantprep/quantprep/internal/tracker"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run a mental math drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.tracker.CanDrill(); err != nil {
			if errors.Is(err, tracker.ErrDrillQuota) {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render(
					"Free drill sessions used up. Run 'quantprep pro trial' to keep going."))
				return nil
			}
			return err
		}

		difficulty, _ := cmd.Flags().GetString("difficulty")
		opsFlag, _ := cmd.Flags().GetString("ops")
		count, _ := cmd.Flags().GetInt("count")

		diff := content.Difficulty(difficulty)
		if diff != content.DifficultyEasy && diff != content.DifficultyMedium && diff != content.DifficultyHard {
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}
		ops, err := parseOps(opsFlag)
		if err != nil {
			return err
		}

		return runDrill(cmd, env, diff, ops, count)
	},
}

func init() {
	drillCmd.Flags().String("difficulty", "easy", "easy, medium, or hard")
	drillCmd.Flags().String("ops", "", "Comma-separated operations: add,subtract,multiply,divide (default all)")
	drillCmd.Flags().Int("count", 10, "Number of problems")
}

func parseOps(flag string) ([]drill.Operation, error) {
	if flag == "" {
		return drill.AllOperations(), nil
	}
	var ops []drill.Operation
	for _, name := range strings.Split(flag, ",") {
		op := drill.Operation(strings.TrimSpace(name))
		switch op {
		case drill.OpAdd, drill.OpSubtract, drill.OpMultiply, drill.OpDivide:
			ops = append(ops, op)
		default:
			return nil, fmt.Errorf("unknown operation %q", name)
		}
	}
	return ops, nil
}

func runDrill(cmd *cobra.Command, env *appEnv, diff content.Difficulty, ops []drill.Operation, count int) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	limit := time.Duration(env.cfg.Drill.SessionSeconds) * time.Second
	start := time.Now()

	attempted, correct := 0, 0
	for i := 0; i < count; i++ {
		if time.Since(start) >= limit {
			fmt.Fprintln(out, theme.Hint.Render("Time's up."))
			break
		}
		p := drill.Generate(rng, ops, diff)
		fmt.Fprintf(out, "%s %s = ", theme.Label.Render(fmt.Sprintf("[%d/%d]", i+1, count)), p)

		if !scanner.Scan() {
			break
		}
		attempted++
		answer, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && answer == p.Answer {
			correct++
			fmt.Fprintln(out, theme.Correct.Render("✓"))
		} else {
			fmt.Fprintln(out, theme.Incorrect.Render(fmt.Sprintf("✗ (%d)", p.Answer)))
		}
	}

	res := drill.Result{
		Difficulty:      diff,
		Operations:      ops,
		Attempted:       attempted,
		Correct:         correct,
		DurationSeconds: int(time.Since(start).Seconds()),
	}
	earned, err := env.tracker.RecordDrill(cmd.Context(), res)
	if err != nil {
		fmt.Fprintln(out, theme.Hint.Render("Warning: drill could not be saved to disk."))
	}

	fmt.Fprintf(out, "\n%s %d/%d in %ds\n",
		theme.Highlight.Render("Drill done:"), correct, attempted, res.DurationSeconds)
	best := env.tracker.DrillStats().BestScore[diff]
	fmt.Fprintf(out, "%s %d\n", theme.Subtitle.Render("Best at this difficulty:"), best)
	printAchievements(out, earned)
	return nil
}
