package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantprep/quantprep/internal/achievements"
	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/entitlement"
	"github.com/quantprep/quantprep/internal/progress"
	"github.com/quantprep/quantprep/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		questions, err := selectQuestions(env, category, difficulty, count)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render("No questions match those filters."))
			return nil
		}

		return runQuiz(cmd, env, content.Category(category), difficulty, questions)
	},
}

func init() {
	quizCmd.Flags().String("category", "all", "Category to practice (or 'all' for a mixed session)")
	quizCmd.Flags().String("difficulty", "", "Limit to easy, medium, or hard")
	quizCmd.Flags().Int("count", 5, "Number of questions")
}

// selectQuestions picks the session's questions: due reviews first,
// then the rest in catalog order, after tier filtering.
func selectQuestions(env *appEnv, category, difficulty string, count int) ([]content.Question, error) {
	cat := content.Category(category)
	if cat != content.CategoryAll && !cat.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	diff := content.Difficulty(difficulty)
	if difficulty != "" && !diff.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	var pool []content.Question
	add := func(q content.Question) {
		if difficulty == "" || q.Difficulty == diff {
			pool = append(pool, q)
		}
	}
	if cat == content.CategoryAll {
		for _, q := range env.catalog.Questions() {
			add(q)
		}
	} else {
		for _, q := range env.catalog.ByCategory(cat) {
			add(*q)
		}
	}

	pool = entitlement.Visible(pool, env.tracker.Entitlement(), civil.Today())

	due := make(map[string]bool)
	for _, id := range env.tracker.DueQuestions() {
		due[id] = true
	}
	var picked []content.Question
	for _, q := range pool {
		if due[q.ID] {
			picked = append(picked, q)
		}
	}
	for _, q := range pool {
		if !due[q.ID] {
			picked = append(picked, q)
		}
	}
	if len(picked) > count {
		picked = picked[:count]
	}
	return picked, nil
}

func runQuiz(cmd *cobra.Command, env *appEnv, category content.Category, difficulty string, questions []content.Question) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	start := time.Now()

	results := make([]progress.QuestionResult, 0, len(questions))
	correct := 0

	for i, q := range questions {
		fmt.Fprintf(out, "\n%s\n", theme.Title.Render(fmt.Sprintf("Q%d/%d · %s · %s", i+1, len(questions), q.Category, q.Difficulty)))
		fmt.Fprintln(out, theme.Body.Render(q.Title))
		if q.Body != "" {
			fmt.Fprintln(out, theme.Body.Render(q.Body))
		}
		for j, choice := range q.Choices {
			fmt.Fprintf(out, "  %s %s\n", theme.Label.Render(fmt.Sprintf("%d.", j+1)), choice)
		}

		qStart := time.Now()
		answer := readChoice(out, scanner, len(q.Choices))
		ok := answer == q.CorrectIndex
		if ok {
			correct++
			fmt.Fprintln(out, theme.Correct.Render("Correct."))
		} else {
			fmt.Fprintf(out, "%s The answer was %d. %s\n",
				theme.Incorrect.Render("Incorrect."), q.CorrectIndex+1, q.Choices[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Fprintln(out, theme.Hint.Render(q.Explanation))
		}

		results = append(results, progress.QuestionResult{
			QuestionID:    q.ID,
			Correct:       ok,
			SelectedIndex: answer,
			TimeMs:        time.Since(qStart).Milliseconds(),
		})
	}

	if difficulty == "" {
		difficulty = "mixed"
	}
	res := progress.QuizResult{
		Category:        category,
		Difficulty:      difficulty,
		TotalQuestions:  len(questions),
		CorrectAnswers:  correct,
		TimeTakenMs:     time.Since(start).Milliseconds(),
		QuestionResults: results,
	}
	earned, err := env.tracker.RecordResult(cmd.Context(), res)
	if err != nil {
		fmt.Fprintln(out, theme.Hint.Render("Warning: progress could not be saved to disk."))
	}

	fmt.Fprintf(out, "\n%s %d/%d\n", theme.Highlight.Render("Score:"), correct, len(questions))
	printAchievements(out, earned)
	return nil
}

// readChoice reads a 1-based choice number, reprompting until valid.
// EOF counts as a wrong answer rather than aborting the session.
func readChoice(out io.Writer, scanner *bufio.Scanner, n int) int {
	for {
		fmt.Fprintf(out, "Your answer (1-%d): ", n)
		if !scanner.Scan() {
			return -1
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && v >= 1 && v <= n {
			return v - 1
		}
		fmt.Fprintln(out, theme.Hint.Render("Enter a choice number."))
	}
}

func printAchievements(out io.Writer, ids []string) {
	for _, id := range ids {
		if def, ok := achievements.Lookup(id); ok {
			fmt.Fprintf(out, "%s %s — %s\n",
				theme.Highlight.Render("Achievement unlocked:"), def.Name, def.Description)
		}
	}
}
