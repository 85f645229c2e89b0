package progress

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/srs"
)

func TestNewSnapshot_FixedKeysPresent(t *testing.T) {
	s := NewSnapshot()
	if len(s.Categories) != len(content.AllCategories()) {
		t.Errorf("got %d category buckets, want %d", len(s.Categories), len(content.AllCategories()))
	}
	if len(s.Difficulties) != 3 {
		t.Errorf("got %d difficulty buckets, want 3", len(s.Difficulties))
	}
	if s.History == nil || s.SRData == nil {
		t.Error("history and srData must be non-nil")
	}
}

func TestPushHistory_NewestFirstAndCapped(t *testing.T) {
	s := NewSnapshot()
	for i := 0; i < HistoryCap+10; i++ {
		s.PushHistory(QuizResult{ID: fmt.Sprintf("r%d", i)})
	}

	if len(s.History) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(s.History), HistoryCap)
	}
	if s.History[0].ID != fmt.Sprintf("r%d", HistoryCap+9) {
		t.Errorf("history[0] = %s, want most recent", s.History[0].ID)
	}
}

func TestBackfill_OldBlobGainsNewKeys(t *testing.T) {
	// Simulate a blob persisted before some categories existed.
	raw := `{
		"totalAttempted": 10,
		"totalCorrect": 7,
		"categoryStats": {"probability": {"attempted": 10, "correct": 7}},
		"history": [{"category": "probability", "difficulty": "easy", "totalQuestions": 10, "correctAnswers": 7, "timeTakenMs": 60000, "date": "2024-01-05"}]
	}`
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Backfill()

	for _, cat := range content.AllCategories() {
		if _, ok := s.Categories[cat]; !ok {
			t.Errorf("category %s missing after backfill", cat)
		}
	}
	if s.SRData == nil {
		t.Error("srData still nil after backfill")
	}
	if s.Categories[content.CategoryProbability].Correct != 7 {
		t.Error("backfill clobbered persisted bucket")
	}
	if s.History[0].Date != civil.MustParse("2024-01-05") {
		t.Errorf("history date = %v, want 2024-01-05", s.History[0].Date)
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewSnapshot()
	s.SRData["q1"] = srs.Card{QuestionID: "q1", EaseFactor: 2.5}
	s.Achievements = []string{"first-quiz"}

	c := s.Clone()
	c.SRData["q2"] = srs.Card{QuestionID: "q2"}
	c.Achievements = append(c.Achievements, "streak-3")
	c.TotalAttempted = 99

	if _, leaked := s.SRData["q2"]; leaked {
		t.Error("clone shares srData map")
	}
	if len(s.Achievements) != 1 {
		t.Error("clone shares achievements slice backing array")
	}
	if s.TotalAttempted != 0 {
		t.Error("clone shares tally")
	}
}

func TestPerfect(t *testing.T) {
	if (QuizResult{TotalQuestions: 0, CorrectAnswers: 0}).Perfect() {
		t.Error("empty session must not be perfect")
	}
	if !(QuizResult{TotalQuestions: 5, CorrectAnswers: 5}).Perfect() {
		t.Error("5/5 should be perfect")
	}
	if (QuizResult{TotalQuestions: 5, CorrectAnswers: 4}).Perfect() {
		t.Error("4/5 must not be perfect")
	}
}

func TestSnapshot_JSONShape(t *testing.T) {
	s := NewSnapshot()
	s.TotalAttempted = 3
	s.TotalCorrect = 2
	s.Streak.Current = 1

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"totalAttempted", "totalCorrect", "categoryStats", "tagStats", "difficultyStats", "history", "srData", "streak", "achievements"} {
		if _, ok := m[key]; !ok {
			t.Errorf("persisted blob missing key %q", key)
		}
	}
}
