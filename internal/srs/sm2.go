package srs

import (
	"math"

	"github.com/quantprep/quantprep/internal/civil"
)

// Review computes the next schedule state for a question. prev is nil on the
// first attempt. The returned card always has LastAttempt = today and
// incremented attempt counters; the ease factor never drops below MinEase.
func Review(prev *Card, questionID string, correct bool, today civil.Date) Card {
	if prev == nil {
		return firstReview(questionID, correct, today)
	}

	next := *prev
	next.LastAttempt = today
	next.TotalAttempts++

	if correct {
		next.TotalCorrect++
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.IntervalDays = FirstIntervalDays
		case 2:
			next.IntervalDays = SecondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(prev.IntervalDays) * prev.EaseFactor))
		}
		next.EaseFactor = clampEase(prev.EaseFactor + EaseReward)
		next.NextReview = today.AddDays(next.IntervalDays)
		return next
	}

	// A miss resets the repetition run and makes the card immediately due.
	next.Repetitions = 0
	next.IntervalDays = 0
	next.EaseFactor = clampEase(prev.EaseFactor - EasePenalty)
	next.NextReview = today
	return next
}

func firstReview(questionID string, correct bool, today civil.Date) Card {
	c := Card{
		QuestionID:    questionID,
		EaseFactor:    InitialEase,
		LastAttempt:   today,
		TotalAttempts: 1,
	}
	if correct {
		c.TotalCorrect = 1
		c.Repetitions = 1
		c.IntervalDays = FirstIntervalDays
		c.NextReview = today.AddDays(FirstIntervalDays)
	} else {
		c.NextReview = today
	}
	return c
}

func clampEase(ease float64) float64 {
	if ease < MinEase {
		return MinEase
	}
	return ease
}
