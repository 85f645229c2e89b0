// Package srs implements the spaced-repetition scheduler: an SM-2 variant
// tracking per-question review state. All functions are pure; the progress
// store owns persistence.
package srs

import "github.com/quantprep/quantprep/internal/civil"

// Tuning constants for the SM-2 variant. The ease factor never drops below
// MinEase, which caps how quickly intervals can collapse for persistently
// missed questions.
const (
	InitialEase = 2.5
	MinEase     = 1.3
	EaseReward  = 0.1
	EasePenalty = 0.2

	// The canonical SM-2 bootstrap intervals before exponential growth.
	FirstIntervalDays  = 1
	SecondIntervalDays = 6
)

// Card is the scheduling state for one question. A card is created on the
// first attempt and updated on every attempt after that; it is only ever
// removed by a full progress reset.
type Card struct {
	QuestionID    string     `json:"questionId"`
	EaseFactor    float64    `json:"easeFactor"`
	IntervalDays  int        `json:"interval"`
	Repetitions   int        `json:"repetitions"`
	NextReview    civil.Date `json:"nextReviewDate"`
	LastAttempt   civil.Date `json:"lastAttemptDate"`
	TotalAttempts int        `json:"totalAttempts"`
	TotalCorrect  int        `json:"totalCorrect"`
}

// IsDue reports whether the card is due on the given date.
func (c Card) IsDue(today civil.Date) bool {
	return !c.NextReview.After(today)
}

// OverdueDays returns how many days past due the card is, 0 if not yet due.
func (c Card) OverdueDays(today civil.Date) int {
	if !c.IsDue(today) {
		return 0
	}
	return today.DaysSince(c.NextReview)
}

// Accuracy returns the lifetime fraction of correct attempts, 0 for a card
// with no attempts.
func (c Card) Accuracy() float64 {
	if c.TotalAttempts == 0 {
		return 0
	}
	return float64(c.TotalCorrect) / float64(c.TotalAttempts)
}
