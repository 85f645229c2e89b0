// Package streak tracks consecutive calendar days with at least one
// recorded practice session.
package streak

import "github.com/quantprep/quantprep/internal/civil"

// Streak is the daily practice streak state.
type Streak struct {
	Current      int        `json:"current"`
	Longest      int        `json:"longest"`
	LastPractice civil.Date `json:"lastPracticeDate"`
}

// Update folds one practice day into the streak. Multiple sessions on the
// same day are a no-op, so recording is idempotent per day. A gap of exactly
// one day extends the streak; anything longer (or no prior practice) starts
// a fresh streak of 1.
func Update(prev Streak, today civil.Date) Streak {
	if prev.LastPractice == today {
		return prev
	}

	next := Streak{LastPractice: today}
	if !prev.LastPractice.IsZero() && prev.LastPractice.AddDays(1) == today {
		next.Current = prev.Current + 1
	} else {
		next.Current = 1
	}

	next.Longest = prev.Longest
	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	return next
}
