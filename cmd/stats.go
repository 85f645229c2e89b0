package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/achievements"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		out := cmd.OutOrStdout()
		snap := env.tracker.GetProgress()
		events := env.store.Events()

		var b strings.Builder
		fmt.Fprintln(&b, theme.Title.Render("QuantPrep Progress"))
		fmt.Fprintf(&b, "%s %d attempted, %d correct (%.0f%%)\n",
			theme.Label.Render("Overall:"),
			snap.TotalAttempted, snap.TotalCorrect, 100*accuracy(snap.TotalCorrect, snap.TotalAttempted))
		fmt.Fprintf(&b, "%s %d day(s), longest %d\n",
			theme.Label.Render("Streak:"), snap.Streak.Current, snap.Streak.Longest)
		fmt.Fprintf(&b, "%s %d question(s) in rotation, %d due today\n",
			theme.Label.Render("Reviews:"), len(snap.SRData), len(env.tracker.DueQuestions()))

		sessions, err := events.CountByCategory()
		if err != nil {
			env.log.Warn("session counts unavailable")
			sessions = nil
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, theme.Subtitle.Render("By category"))
		for _, cat := range content.AllCategories() {
			bucket := snap.Categories[cat]
			if bucket.Attempted == 0 {
				fmt.Fprintf(&b, "  %-20s %s\n", cat, theme.Hint.Render("not started"))
				continue
			}
			fmt.Fprintf(&b, "  %-20s %3d/%3d (%.0f%%), %d session(s)\n",
				cat, bucket.Correct, bucket.Attempted, 100*bucket.Accuracy(), sessions[cat])
		}

		fmt.Fprintln(&b)
		fmt.Fprintln(&b, theme.Subtitle.Render("By difficulty"))
		for _, diff := range content.AllDifficulties() {
			bucket := snap.Difficulties[diff]
			fmt.Fprintf(&b, "  %-8s %3d/%3d\n", diff, bucket.Correct, bucket.Attempted)
		}

		if recent, err := events.RecentQuizzes(5); err == nil && len(recent) > 0 {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, theme.Subtitle.Render("Recent quizzes"))
			for _, ev := range recent {
				fmt.Fprintf(&b, "  %s %-20s %d/%d\n",
					eventDay(ev.CreatedAt), ev.Category, ev.CorrectAnswers, ev.TotalQuestions)
			}
		}

		ds := env.tracker.DrillStats()
		if ds.TotalSessions > 0 {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, theme.Subtitle.Render("Mental math"))
			fmt.Fprintf(&b, "  %d session(s), %d/%d correct\n",
				ds.TotalSessions, ds.TotalCorrect, ds.TotalAttempted)
			if recent, err := events.RecentDrills(3); err == nil {
				for _, ev := range recent {
					fmt.Fprintf(&b, "  %s %-8s %d/%d in %ds\n",
						eventDay(ev.CreatedAt), ev.Difficulty, ev.Correct, ev.Attempted, ev.DurationSec)
				}
			}
		}

		if len(snap.Achievements) > 0 {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, theme.Subtitle.Render("Achievements"))
			for _, id := range snap.Achievements {
				if def, ok := achievements.Lookup(id); ok {
					fmt.Fprintf(&b, "  %s %s\n", theme.Highlight.Render("★"), def.Name)
				}
			}
		}

		fmt.Fprintln(out, theme.Card.Render(b.String()))
		return nil
	},
}

func accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted)
}

// eventDay trims an RFC3339 timestamp to its date part.
func eventDay(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
