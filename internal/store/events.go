package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/drill"
	"github.com/quantprep/quantprep/internal/progress"
)

// seqMu serializes sequence allocation across repositories sharing a
// connection.
var seqMu sync.Mutex

// nextSequence returns a monotonically increasing counter shared by all
// event and snapshot rows, so interleaved writes keep a total order.
func nextSequence(db *sqlx.DB) (int64, error) {
	seqMu.Lock()
	defer seqMu.Unlock()

	var seq int64
	err := db.Get(&seq,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	if err != nil {
		return 0, fmt.Errorf("allocate sequence: %w", err)
	}
	return seq, nil
}

// QuizEvent is one recorded quiz session row.
type QuizEvent struct {
	ID             int64  `db:"id"`
	Sequence       int64  `db:"sequence"`
	CreatedAt      string `db:"created_at"`
	QuizID         string `db:"quiz_id"`
	Category       string `db:"category"`
	Difficulty     string `db:"difficulty"`
	TotalQuestions int    `db:"total_questions"`
	CorrectAnswers int    `db:"correct_answers"`
	TimeTakenMs    int    `db:"time_taken_ms"`
}

// DrillEvent is one recorded mental-math drill row.
type DrillEvent struct {
	ID          int64  `db:"id"`
	Sequence    int64  `db:"sequence"`
	CreatedAt   string `db:"created_at"`
	Difficulty  string `db:"difficulty"`
	Operations  string `db:"operations"`
	Attempted   int    `db:"attempted"`
	Correct     int    `db:"correct"`
	DurationSec int    `db:"duration_sec"`
}

// EventRepo appends and reads session events. Rows are append-only; the
// snapshot blob remains the source of truth for derived state.
type EventRepo struct {
	db *sqlx.DB
}

// AppendQuiz records a completed quiz session.
func (r *EventRepo) AppendQuiz(res progress.QuizResult) error {
	seq, err := nextSequence(r.db)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO quiz_events
			(sequence, created_at, quiz_id, category, difficulty,
			 total_questions, correct_answers, time_taken_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC().Format(time.RFC3339),
		res.ID, string(res.Category), string(res.Difficulty),
		res.TotalQuestions, res.CorrectAnswers, res.TimeTakenMs,
	)
	if err != nil {
		return fmt.Errorf("insert quiz event: %w", err)
	}
	return nil
}

// AppendDrill records a completed drill session.
func (r *EventRepo) AppendDrill(res drill.Result) error {
	seq, err := nextSequence(r.db)
	if err != nil {
		return err
	}
	names := make([]string, len(res.Operations))
	for i, op := range res.Operations {
		names[i] = string(op)
	}
	_, err = r.db.Exec(
		`INSERT INTO drill_events
			(sequence, created_at, difficulty, operations,
			 attempted, correct, duration_sec)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC().Format(time.RFC3339),
		string(res.Difficulty), strings.Join(names, ","),
		res.Attempted, res.Correct, res.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert drill event: %w", err)
	}
	return nil
}

// RecentQuizzes returns up to limit quiz events, newest first.
func (r *EventRepo) RecentQuizzes(limit int) ([]QuizEvent, error) {
	var out []QuizEvent
	err := r.db.Select(&out,
		`SELECT * FROM quiz_events ORDER BY sequence DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load quiz events: %w", err)
	}
	return out, nil
}

// RecentDrills returns up to limit drill events, newest first.
func (r *EventRepo) RecentDrills(limit int) ([]DrillEvent, error) {
	var out []DrillEvent
	err := r.db.Select(&out,
		`SELECT * FROM drill_events ORDER BY sequence DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load drill events: %w", err)
	}
	return out, nil
}

// CountByCategory returns total quiz sessions per category.
func (r *EventRepo) CountByCategory() (map[content.Category]int, error) {
	rows, err := r.db.Query(
		`SELECT category, COUNT(*) FROM quiz_events GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count quiz events: %w", err)
	}
	defer rows.Close()

	out := make(map[content.Category]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scan quiz count: %w", err)
		}
		out[content.Category(cat)] = n
	}
	return out, rows.Err()
}
