// Package achievements evaluates achievement conditions over a progress
// snapshot. Definitions are a fixed ordered catalog of pure predicates;
// earned IDs are append-only and never revoked, even when the underlying
// condition later stops holding (a broken streak keeps its badge).
package achievements

import (
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/progress"
)

// Input is the state achievements are judged against: the progress
// snapshot plus the drill session count kept outside it.
type Input struct {
	Progress      *progress.Snapshot
	DrillSessions int
}

// Definition is one achievement: an ID, display metadata, and a stateless
// predicate over the input state. Predicates must not depend on
// evaluation order or on other achievements.
type Definition struct {
	ID          string
	Name        string
	Description string
	Qualifies   func(Input) bool
}

// Catalog returns the fixed achievement catalog in display order.
func Catalog() []Definition {
	return catalog
}

var catalog = []Definition{
	{
		ID:          "first-quiz",
		Name:        "Getting Started",
		Description: "Complete your first quiz",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return len(s.History) >= 1
		},
	},
	{
		ID:          "perfect-quiz",
		Name:        "Flawless",
		Description: "Score 100% on a quiz",
		Qualifies: func(in Input) bool {
			s := in.Progress
			for _, r := range s.History {
				if r.Perfect() {
					return true
				}
			}
			return false
		},
	},
	{
		ID:          "streak-3",
		Name:        "Warming Up",
		Description: "Practice 3 days in a row",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return s.Streak.Current >= 3
		},
	},
	{
		ID:          "streak-7",
		Name:        "Committed",
		Description: "Practice 7 days in a row",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return s.Streak.Current >= 7
		},
	},
	{
		ID:          "all-categories",
		Name:        "Well Rounded",
		Description: "Attempt questions in every category",
		Qualifies: func(in Input) bool {
			s := in.Progress
			for _, cat := range content.AllCategories() {
				if s.Categories[cat].Attempted == 0 {
					return false
				}
			}
			return true
		},
	},
	{
		ID:          "hard-hitter",
		Name:        "Hard Hitter",
		Description: "80% accuracy across 10+ hard questions",
		Qualifies: func(in Input) bool {
			s := in.Progress
			hard := s.Difficulties[content.DifficultyHard]
			return hard.Attempted >= 10 && hard.Accuracy() >= 0.8
		},
	},
	{
		ID:          "century",
		Name:        "Century Club",
		Description: "Attempt 100 questions",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return s.TotalAttempted >= 100
		},
	},
	{
		ID:          "reviewer",
		Name:        "Dedicated Reviewer",
		Description: "Have 25 questions in the review rotation",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return len(s.SRData) >= 25
		},
	},
	{
		ID:          "drill-sergeant",
		Name:        "Drill Sergeant",
		Description: "Complete 10 mental math drills",
		Qualifies: func(in Input) bool {
			return in.DrillSessions >= 10
		},
	},
	{
		ID:          "streak-30",
		Name:        "Iron Discipline",
		Description: "Reach a 30-day practice streak",
		Qualifies: func(in Input) bool {
			s := in.Progress
			return s.Streak.Longest >= 30
		},
	},
}

// Evaluate returns the IDs of achievements that now qualify and have not
// been earned yet, in catalog order. The caller merges them into the
// snapshot's achievement list.
func Evaluate(in Input) []string {
	var earned []string
	for _, def := range catalog {
		if in.Progress.Earned(def.ID) {
			continue
		}
		if def.Qualifies(in) {
			earned = append(earned, def.ID)
		}
	}
	return earned
}

// Lookup returns the definition for an achievement ID.
func Lookup(id string) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
