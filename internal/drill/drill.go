// Package drill implements timed mental-math drills: random arithmetic
// problem generation and the running drill statistics.
package drill

import (
	"fmt"
	"math/rand"

	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
)

// Operation is one of the four arithmetic drill operations.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// AllOperations returns the operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol returns the operator glyph for display.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Problem is a single generated arithmetic problem.
type Problem struct {
	A      int
	B      int
	Op     Operation
	Answer int
}

// String renders the problem without its answer, e.g. "47 × 12".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op.Symbol(), p.B)
}

type span struct{ min, max int }

func (s span) pick(rng *rand.Rand) int {
	return rng.Intn(s.max-s.min+1) + s.min
}

// Operand ranges per difficulty band. Multiplication and division use
// tighter ranges so answers stay mentally tractable.
var (
	addSpans = map[content.Difficulty]span{
		content.DifficultyEasy:   {1, 20},
		content.DifficultyMedium: {2, 99},
		content.DifficultyHard:   {2, 999},
	}
	mulSpans = map[content.Difficulty]span{
		content.DifficultyEasy:   {2, 12},
		content.DifficultyMedium: {2, 25},
		content.DifficultyHard:   {2, 50},
	}
	divSpans = map[content.Difficulty]span{
		content.DifficultyEasy:   {1, 12},
		content.DifficultyMedium: {2, 20},
		content.DifficultyHard:   {2, 30},
	}
)

// Generate produces a random problem using one of ops at the given
// difficulty. Subtraction never goes negative; division is always exact
// (the dividend is built from the divisor and quotient).
func Generate(rng *rand.Rand, ops []Operation, diff content.Difficulty) Problem {
	if len(ops) == 0 {
		ops = AllOperations()
	}
	op := ops[rng.Intn(len(ops))]

	switch op {
	case OpSubtract:
		s := addSpans[diff]
		a, b := s.pick(rng), s.pick(rng)
		if a < b {
			a, b = b, a
		}
		return Problem{A: a, B: b, Op: op, Answer: a - b}
	case OpMultiply:
		s := mulSpans[diff]
		a, b := s.pick(rng), s.pick(rng)
		return Problem{A: a, B: b, Op: op, Answer: a * b}
	case OpDivide:
		s := divSpans[diff]
		b, quotient := s.pick(rng), s.pick(rng)
		return Problem{A: b * quotient, B: b, Op: op, Answer: quotient}
	default:
		s := addSpans[diff]
		a, b := s.pick(rng), s.pick(rng)
		return Problem{A: a, B: b, Op: OpAdd, Answer: a + b}
	}
}

// historyCap bounds the stored drill history.
const historyCap = 20

// Result summarizes one completed drill session.
type Result struct {
	ID              string             `json:"id,omitempty"`
	Difficulty      content.Difficulty `json:"difficulty"`
	Operations      []Operation        `json:"operations"`
	Attempted       int                `json:"attempted"`
	Correct         int                `json:"correct"`
	DurationSeconds int                `json:"durationSeconds"`
	Date            civil.Date         `json:"date"`
}

// Stats is the running mental-math record.
type Stats struct {
	TotalSessions  int                        `json:"totalSessions"`
	TotalAttempted int                        `json:"totalAttempted"`
	TotalCorrect   int                        `json:"totalCorrect"`
	BestScore      map[content.Difficulty]int `json:"bestScore"`
	History        []Result                   `json:"history"`
}

// NewStats returns zeroed drill stats with all difficulty keys present.
func NewStats() Stats {
	s := Stats{
		BestScore: make(map[content.Difficulty]int, 3),
		History:   []Result{},
	}
	for _, d := range content.AllDifficulties() {
		s.BestScore[d] = 0
	}
	return s
}

// Backfill repairs stats loaded from an older blob.
func (s *Stats) Backfill() {
	if s.BestScore == nil {
		s.BestScore = make(map[content.Difficulty]int)
	}
	for _, d := range content.AllDifficulties() {
		if _, ok := s.BestScore[d]; !ok {
			s.BestScore[d] = 0
		}
	}
	if s.History == nil {
		s.History = []Result{}
	}
}

// Clone returns an independent copy of the stats.
func (s Stats) Clone() Stats {
	out := s
	out.BestScore = make(map[content.Difficulty]int, len(s.BestScore))
	for k, v := range s.BestScore {
		out.BestScore[k] = v
	}
	out.History = append([]Result(nil), s.History...)
	return out
}

// Apply folds one completed drill into the stats and returns the updated
// copy. The best score per difficulty only ever increases.
func Apply(s Stats, result Result) Stats {
	next := Stats{
		TotalSessions:  s.TotalSessions + 1,
		TotalAttempted: s.TotalAttempted + result.Attempted,
		TotalCorrect:   s.TotalCorrect + result.Correct,
		BestScore:      make(map[content.Difficulty]int, len(s.BestScore)),
	}
	for k, v := range s.BestScore {
		next.BestScore[k] = v
	}
	if result.Correct > next.BestScore[result.Difficulty] {
		next.BestScore[result.Difficulty] = result.Correct
	}

	next.History = append([]Result{result}, s.History...)
	if len(next.History) > historyCap {
		next.History = next.History[:historyCap]
	}
	return next
}
