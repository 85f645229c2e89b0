// Package stats maintains the accuracy counters rolled up from quiz
// outcomes: global totals plus per-category, per-difficulty, and per-tag
// buckets. All operations are pure value transformations.
package stats

import "github.com/quantprep/quantprep/internal/content"

// Bucket is an attempted/correct counter pair. The aggregator never
// produces correct > attempted.
type Bucket struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// Accuracy returns correct/attempted, 0 for an empty bucket.
func (b Bucket) Accuracy() float64 {
	if b.Attempted == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Attempted)
}

func (b Bucket) add(correct bool) Bucket {
	b.Attempted++
	if correct {
		b.Correct++
	}
	return b
}

// Tally is the full set of accuracy counters.
type Tally struct {
	TotalAttempted int                           `json:"totalAttempted"`
	TotalCorrect   int                           `json:"totalCorrect"`
	Categories     map[content.Category]Bucket   `json:"categoryStats"`
	Difficulties   map[content.Difficulty]Bucket `json:"difficultyStats"`
	Tags           map[string]Bucket             `json:"tagStats"`
}

// NewTally returns a tally with every fixed key (all categories, all
// difficulties) present at zero. Tag buckets are created lazily.
func NewTally() Tally {
	t := Tally{
		Categories:   make(map[content.Category]Bucket, len(content.AllCategories())),
		Difficulties: make(map[content.Difficulty]Bucket, len(content.AllDifficulties())),
		Tags:         make(map[string]Bucket),
	}
	for _, c := range content.AllCategories() {
		t.Categories[c] = Bucket{}
	}
	for _, d := range content.AllDifficulties() {
		t.Difficulties[d] = Bucket{}
	}
	return t
}

// Backfill ensures every fixed key exists, filling in zero buckets for
// categories or difficulties missing from an older persisted tally, and
// replaces nil maps. Used by the progress store after load.
func (t *Tally) Backfill() {
	if t.Categories == nil {
		t.Categories = make(map[content.Category]Bucket)
	}
	if t.Difficulties == nil {
		t.Difficulties = make(map[content.Difficulty]Bucket)
	}
	if t.Tags == nil {
		t.Tags = make(map[string]Bucket)
	}
	for _, c := range content.AllCategories() {
		if _, ok := t.Categories[c]; !ok {
			t.Categories[c] = Bucket{}
		}
	}
	for _, d := range content.AllDifficulties() {
		if _, ok := t.Difficulties[d]; !ok {
			t.Difficulties[d] = Bucket{}
		}
	}
}

// Clone returns a deep copy, so folds never mutate a shared snapshot.
func (t Tally) Clone() Tally {
	out := Tally{
		TotalAttempted: t.TotalAttempted,
		TotalCorrect:   t.TotalCorrect,
		Categories:     make(map[content.Category]Bucket, len(t.Categories)),
		Difficulties:   make(map[content.Difficulty]Bucket, len(t.Difficulties)),
		Tags:           make(map[string]Bucket, len(t.Tags)),
	}
	for k, v := range t.Categories {
		out.Categories[k] = v
	}
	for k, v := range t.Difficulties {
		out.Difficulties[k] = v
	}
	for k, v := range t.Tags {
		out.Tags[k] = v
	}
	return out
}
