// Package progress defines the unified progress record: the single
// source of truth aggregating quiz history, accuracy counters, spaced
// repetition state, the practice streak, and earned achievements. The
// snapshot is owned by the tracker and persisted as one JSON blob whose
// shape this package pins down.
package progress

import (
	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/srs"
	"github.com/quantprep/quantprep/internal/stats"
	"github.com/quantprep/quantprep/internal/streak"
)

// HistoryCap bounds the stored quiz history; older results are dropped.
const HistoryCap = 50

// QuestionResult is the outcome of one question within a quiz session.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	SelectedIndex int    `json:"selectedChoiceIndex"`
	TimeMs        int64  `json:"timeMs"`
}

// QuizResult summarizes one completed quiz session. Category is a concrete
// category for single-category sessions or content.CategoryAll for mixed
// ones. Difficulty is the session's filter label ("easy", "medium", "hard",
// or "mixed").
type QuizResult struct {
	ID              string           `json:"id,omitempty"`
	Category        content.Category `json:"category"`
	Difficulty      string           `json:"difficulty"`
	TotalQuestions  int              `json:"totalQuestions"`
	CorrectAnswers  int              `json:"correctAnswers"`
	TimeTakenMs     int64            `json:"timeTakenMs"`
	Date            civil.Date       `json:"date"`
	QuestionResults []QuestionResult `json:"questionResults,omitempty"`
}

// Perfect reports whether every question in the session was answered
// correctly (empty sessions don't count).
func (r QuizResult) Perfect() bool {
	return r.TotalQuestions > 0 && r.CorrectAnswers == r.TotalQuestions
}

// Snapshot is the full UserProgress record.
type Snapshot struct {
	stats.Tally

	History      []QuizResult        `json:"history"`
	SRData       map[string]srs.Card `json:"srData"`
	Streak       streak.Streak       `json:"streak"`
	Achievements []string            `json:"achievements"`
}

// NewSnapshot returns the zero-value progress record with all fixed stat
// keys present.
func NewSnapshot() Snapshot {
	return Snapshot{
		Tally:   stats.NewTally(),
		History: []QuizResult{},
		SRData:  make(map[string]srs.Card),
	}
}

// Backfill repairs a snapshot loaded from an older persisted blob: nil maps
// are replaced and stat keys added after that blob was written get
// zero-valued entries, so downstream code can assume all fixed keys exist.
func (s *Snapshot) Backfill() {
	s.Tally.Backfill()
	if s.History == nil {
		s.History = []QuizResult{}
	}
	if s.SRData == nil {
		s.SRData = make(map[string]srs.Card)
	}
}

// Earned reports whether the achievement ID has already been earned.
func (s *Snapshot) Earned(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Tally = s.Tally.Clone()
	out.History = make([]QuizResult, len(s.History))
	copy(out.History, s.History)
	out.SRData = make(map[string]srs.Card, len(s.SRData))
	for k, v := range s.SRData {
		out.SRData[k] = v
	}
	out.Achievements = make([]string, len(s.Achievements))
	copy(out.Achievements, s.Achievements)
	return out
}

// PushHistory prepends result and truncates to HistoryCap entries, newest
// first.
func (s *Snapshot) PushHistory(result QuizResult) {
	s.History = append([]QuizResult{result}, s.History...)
	if len(s.History) > HistoryCap {
		s.History = s.History[:HistoryCap]
	}
}
