package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes one command against the database selected by
// QUANTPREP_DB, feeding in as stdin, and returns the combined output.
func runCLI(t *testing.T, in string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return buf.String()
}

func TestDue_FreeTierGated(t *testing.T) {
	t.Setenv("QUANTPREP_DB", filepath.Join(t.TempDir(), "test.db"))

	out := runCLI(t, "", "due")
	if !strings.Contains(out, "pro feature") {
		t.Errorf("due on free tier should point at pro, got:\n%s", out)
	}
	if strings.Contains(out, "Nothing due") || strings.Contains(out, "question(s) due") {
		t.Errorf("due on free tier must not show the review queue, got:\n%s", out)
	}
}

func TestWeak_FreeTierGated(t *testing.T) {
	t.Setenv("QUANTPREP_DB", filepath.Join(t.TempDir(), "test.db"))

	out := runCLI(t, "", "weak")
	if !strings.Contains(out, "pro feature") {
		t.Errorf("weak on free tier should point at pro, got:\n%s", out)
	}
	if strings.Contains(out, "Weakest tags") {
		t.Errorf("weak on free tier must not show tag analytics, got:\n%s", out)
	}
}

func TestDueAndWeak_ProUnlocked(t *testing.T) {
	t.Setenv("QUANTPREP_DB", filepath.Join(t.TempDir(), "test.db"))

	runCLI(t, "", "pro", "upgrade")
	// answer 1 is wrong for the first probability question, so its card
	// comes back due today
	runCLI(t, "1\n", "quiz", "--category", "probability", "--count", "1")

	out := runCLI(t, "", "due")
	if strings.Contains(out, "pro feature") {
		t.Fatalf("due must not be gated for pro, got:\n%s", out)
	}
	if !strings.Contains(out, "1 question(s) due") {
		t.Errorf("missed question should be due today, got:\n%s", out)
	}
	if !strings.Contains(out, "attempt(s)") {
		t.Errorf("due listing should show the card's record, got:\n%s", out)
	}

	out = runCLI(t, "", "weak")
	if strings.Contains(out, "pro feature") {
		t.Fatalf("weak must not be gated for pro, got:\n%s", out)
	}
	if !strings.Contains(out, "Not enough attempts") {
		t.Errorf("one attempt is below the weak-tag floor, got:\n%s", out)
	}
}

func TestStats_ShowsRecentSessions(t *testing.T) {
	t.Setenv("QUANTPREP_DB", filepath.Join(t.TempDir(), "test.db"))

	runCLI(t, "1\n", "quiz", "--category", "probability", "--count", "1")
	runCLI(t, "0\n0\n", "drill", "--count", "2", "--difficulty", "easy")

	out := runCLI(t, "", "stats")
	if !strings.Contains(out, "Recent quizzes") {
		t.Errorf("stats should list recent quiz sessions, got:\n%s", out)
	}
	if !strings.Contains(out, "Mental math") {
		t.Errorf("stats should list the drill record, got:\n%s", out)
	}
	if !strings.Contains(out, "1 session(s)") {
		t.Errorf("stats should count sessions per category, got:\n%s", out)
	}
}
