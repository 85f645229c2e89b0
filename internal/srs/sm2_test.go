package srs

import (
	"testing"

	"github.com/quantprep/quantprep/internal/civil"
)

var day1 = civil.MustParse("2024-01-01")

func TestReview_FirstCorrect(t *testing.T) {
	got := Review(nil, "q1", true, day1)

	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}
	if got.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", got.IntervalDays)
	}
	if got.EaseFactor != InitialEase {
		t.Errorf("EaseFactor = %v, want %v", got.EaseFactor, InitialEase)
	}
	if got.NextReview != civil.MustParse("2024-01-02") {
		t.Errorf("NextReview = %v, want 2024-01-02", got.NextReview)
	}
	if got.TotalAttempts != 1 || got.TotalCorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1", got.TotalCorrect, got.TotalAttempts)
	}
	if got.LastAttempt != day1 {
		t.Errorf("LastAttempt = %v, want %v", got.LastAttempt, day1)
	}
}

func TestReview_FirstIncorrect(t *testing.T) {
	got := Review(nil, "q1", false, day1)

	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", got.Repetitions)
	}
	if got.IntervalDays != 0 {
		t.Errorf("IntervalDays = %d, want 0", got.IntervalDays)
	}
	if got.NextReview != day1 {
		t.Errorf("NextReview = %v, want today (immediately due)", got.NextReview)
	}
	if got.TotalAttempts != 1 || got.TotalCorrect != 0 {
		t.Errorf("counters = %d/%d, want 0/1", got.TotalCorrect, got.TotalAttempts)
	}
}

func TestReview_SecondCorrect(t *testing.T) {
	first := Review(nil, "q1", true, day1)
	got := Review(&first, "q1", true, civil.MustParse("2024-01-02"))

	if got.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", got.Repetitions)
	}
	if got.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", got.IntervalDays)
	}
	if got.EaseFactor != 2.6 {
		t.Errorf("EaseFactor = %v, want 2.6", got.EaseFactor)
	}
	if got.NextReview != civil.MustParse("2024-01-08") {
		t.Errorf("NextReview = %v, want 2024-01-08", got.NextReview)
	}
}

func TestReview_ThirdCorrect_GrowsByEase(t *testing.T) {
	prev := Card{
		QuestionID:    "q1",
		EaseFactor:    2.6,
		IntervalDays:  6,
		Repetitions:   2,
		TotalAttempts: 2,
		TotalCorrect:  2,
	}
	got := Review(&prev, "q1", true, day1)

	// round(6 × 2.6) = 16
	if got.IntervalDays != 16 {
		t.Errorf("IntervalDays = %d, want 16", got.IntervalDays)
	}
	if got.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", got.Repetitions)
	}
	if got.NextReview != day1.AddDays(16) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, day1.AddDays(16))
	}
}

func TestReview_FailureAfterRun(t *testing.T) {
	prev := Card{
		QuestionID:    "q1",
		EaseFactor:    2.6,
		IntervalDays:  6,
		Repetitions:   2,
		TotalAttempts: 2,
		TotalCorrect:  2,
	}
	got := Review(&prev, "q1", false, day1)

	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", got.Repetitions)
	}
	if got.IntervalDays != 0 {
		t.Errorf("IntervalDays = %d, want 0", got.IntervalDays)
	}
	if got.EaseFactor != 2.4 {
		t.Errorf("EaseFactor = %v, want prev−0.2 = 2.4", got.EaseFactor)
	}
	if got.NextReview != day1 {
		t.Errorf("NextReview = %v, want today", got.NextReview)
	}
	if got.TotalAttempts != 3 || got.TotalCorrect != 2 {
		t.Errorf("counters = %d/%d, want 2/3", got.TotalCorrect, got.TotalAttempts)
	}
}

func TestReview_EaseFloor(t *testing.T) {
	card := Review(nil, "q1", false, day1)
	today := day1
	for i := 0; i < 20; i++ {
		today = today.AddDays(1)
		card = Review(&card, "q1", false, today)
		if card.EaseFactor < MinEase {
			t.Fatalf("ease %v fell below floor %v after %d misses", card.EaseFactor, MinEase, i+1)
		}
	}
	if card.EaseFactor != MinEase {
		t.Errorf("EaseFactor = %v, want floor %v after repeated misses", card.EaseFactor, MinEase)
	}
}

func TestReview_Monotonicity(t *testing.T) {
	card := Review(nil, "q1", true, day1)
	today := day1
	for i := 0; i < 10; i++ {
		today = today.AddDays(card.IntervalDays)
		next := Review(&card, "q1", true, today)
		if next.EaseFactor < card.EaseFactor {
			t.Fatalf("correct answer decreased ease: %v -> %v", card.EaseFactor, next.EaseFactor)
		}
		if next.Repetitions <= card.Repetitions {
			t.Fatalf("correct answer did not grow repetitions: %d -> %d", card.Repetitions, next.Repetitions)
		}
		if next.TotalAttempts != card.TotalAttempts+1 {
			t.Fatalf("TotalAttempts not incremented")
		}
		card = next
	}
}

func TestDue_FilterAndOrder(t *testing.T) {
	today := civil.MustParse("2024-02-10")
	cards := map[string]Card{
		"future":  {QuestionID: "future", NextReview: civil.MustParse("2024-02-11")},
		"today":   {QuestionID: "today", NextReview: today},
		"overdue": {QuestionID: "overdue", NextReview: civil.MustParse("2024-02-01")},
		"older":   {QuestionID: "older", NextReview: civil.MustParse("2024-01-20")},
	}

	got := Due(cards, today)
	want := []string{"older", "overdue", "today"}
	if len(got) != len(want) {
		t.Fatalf("Due() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Due()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDue_TieBreakByID(t *testing.T) {
	today := civil.MustParse("2024-02-10")
	sameDay := civil.MustParse("2024-02-01")
	cards := map[string]Card{
		"b": {QuestionID: "b", NextReview: sameDay},
		"a": {QuestionID: "a", NextReview: sameDay},
		"c": {QuestionID: "c", NextReview: sameDay},
	}

	got := Due(cards, today)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Due() = %v, want %v", got, want)
		}
	}
}

func TestDue_Empty(t *testing.T) {
	if got := Due(nil, day1); len(got) != 0 {
		t.Errorf("Due(nil) = %v, want empty", got)
	}
}
