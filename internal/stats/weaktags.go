package stats

import (
	"math"
	"sort"
)

// DefaultMinAttempts is the attempt floor below which a tag is considered
// statistically unreliable and excluded from weak-spot call-outs.
const DefaultMinAttempts = 3

// maxWeakTags caps how many weak tags are surfaced.
const maxWeakTags = 5

// TagAccuracy is one weak-tag entry.
type TagAccuracy struct {
	Tag             string `json:"tag"`
	AccuracyPercent int    `json:"accuracyPercent"`
}

// WeakTags returns up to five tags with at least minAttempts attempts,
// weakest first. Ties on accuracy are broken by tag name for determinism.
// minAttempts ≤ 0 falls back to DefaultMinAttempts.
func WeakTags(tags map[string]Bucket, minAttempts int) []TagAccuracy {
	if minAttempts <= 0 {
		minAttempts = DefaultMinAttempts
	}

	out := make([]TagAccuracy, 0, len(tags))
	for tag, b := range tags {
		if b.Attempted < minAttempts {
			continue
		}
		out = append(out, TagAccuracy{
			Tag:             tag,
			AccuracyPercent: int(math.Round(100 * b.Accuracy())),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AccuracyPercent != out[j].AccuracyPercent {
			return out[i].AccuracyPercent < out[j].AccuracyPercent
		}
		return out[i].Tag < out[j].Tag
	})

	if len(out) > maxWeakTags {
		out = out[:maxWeakTags]
	}
	return out
}
