// Package entitlement models the free/pro tier and its limits. Filtering
// happens only at the question-selection boundary: scheduling, streaks,
// and statistics never consult the tier, so a free user's practice is
// counted identically to a pro user's.
package entitlement

import (
	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
)

// Tier is the subscription level.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// TrialDays is the length of the pro trial window.
const TrialDays = 7

// Free-tier limits.
const (
	FreeQuestionsPerCategory = 3
	FreeDrillSessions        = 3
)

// State is the persisted entitlement record.
type State struct {
	Tier              Tier       `json:"tier"`
	TrialActive       bool       `json:"trialActive"`
	TrialEndDate      civil.Date `json:"trialEndDate"`
	DrillSessionsUsed int        `json:"drillSessionsUsed"`
}

// NewState returns the default free-tier state.
func NewState() State {
	return State{Tier: TierFree}
}

// Active reports whether pro features are available today. An expired
// trial falls back to the free tier.
func (s State) Active(today civil.Date) bool {
	if s.Tier == TierPro {
		return true
	}
	return s.TrialActive && !today.After(s.TrialEndDate)
}

// StartTrial begins a TrialDays pro trial ending on today+TrialDays.
func (s State) StartTrial(today civil.Date) State {
	s.TrialActive = true
	s.TrialEndDate = today.AddDays(TrialDays)
	return s
}

// Upgrade marks the subscription as pro.
func (s State) Upgrade() State {
	s.Tier = TierPro
	return s
}

// CanDrill reports whether another drill session is allowed today.
func (s State) CanDrill(today civil.Date) bool {
	if s.Active(today) {
		return true
	}
	return s.DrillSessionsUsed < FreeDrillSessions
}

// ConsumeDrill records one drill session against the free quota. Pro
// sessions are not counted.
func (s State) ConsumeDrill(today civil.Date) State {
	if !s.Active(today) {
		s.DrillSessionsUsed++
	}
	return s
}

// Visible returns the questions the user may be served. The free tier
// sees the first FreeQuestionsPerCategory questions of each category in
// stable catalog order; pro and active trials see everything.
func Visible(questions []content.Question, s State, today civil.Date) []content.Question {
	if s.Active(today) {
		return questions
	}

	perCategory := make(map[content.Category]int)
	out := make([]content.Question, 0, len(questions))
	for _, q := range questions {
		if perCategory[q.Category] >= FreeQuestionsPerCategory {
			continue
		}
		perCategory[q.Category]++
		out = append(out, q)
	}
	return out
}
