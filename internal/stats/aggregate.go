package stats

import "github.com/quantprep/quantprep/internal/content"

// QuestionSource resolves question metadata for attribution. Satisfied by
// *content.Catalog.
type QuestionSource interface {
	Lookup(id string) (*content.Question, bool)
	KnownTag(tag string) bool
}

// Outcome is one per-question result from a completed quiz.
type Outcome struct {
	QuestionID string
	Correct    bool
}

// Apply folds one completed quiz into the tally and returns the updated
// copy; the input is not mutated.
//
// The category bucket is only credited for single-category sessions:
// a mixed session (the "all" sentinel) would misattribute correctness to
// one category, so it counts toward global totals only. Per-question
// outcomes attribute difficulty and tag buckets via the question source;
// outcomes whose question ID is unknown are skipped for attribution but
// remain in the raw totals.
func Apply(t Tally, category content.Category, totalQuestions, correctAnswers int, outcomes []Outcome, source QuestionSource) Tally {
	next := t.Clone()

	next.TotalAttempted += totalQuestions
	next.TotalCorrect += correctAnswers

	if category.Valid() {
		b := next.Categories[category]
		b.Attempted += totalQuestions
		b.Correct += correctAnswers
		next.Categories[category] = b
	}

	for _, out := range outcomes {
		q, ok := source.Lookup(out.QuestionID)
		if !ok {
			continue
		}
		next.Difficulties[q.Difficulty] = next.Difficulties[q.Difficulty].add(out.Correct)
		for _, tag := range q.Tags {
			if !source.KnownTag(tag) {
				continue
			}
			next.Tags[tag] = next.Tags[tag].add(out.Correct)
		}
	}

	return next
}
