package srs

import (
	"sort"

	"github.com/quantprep/quantprep/internal/civil"
)

// Due returns the IDs of all cards with a review date at or before today,
// most overdue first. Ties on the review date are broken by question ID so
// the queue is deterministic regardless of map iteration order.
func Due(cards map[string]Card, today civil.Date) []string {
	due := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.IsDue(today) {
			due = append(due, c)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].NextReview != due[j].NextReview {
			return due[i].NextReview.Before(due[j].NextReview)
		}
		return due[i].QuestionID < due[j].QuestionID
	})

	ids := make([]string, len(due))
	for i, c := range due {
		ids[i] = c.QuestionID
	}
	return ids
}
