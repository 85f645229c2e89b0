// Package tracker coordinates the progress pipeline: it folds completed
// sessions into the srs, stats, streak, and achievement state, keeps the
// authoritative in-memory snapshot, and persists it through the store.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quantprep/quantprep/internal/achievements"
	"github.com/quantprep/quantprep/internal/civil"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/drill"
	"github.com/quantprep/quantprep/internal/entitlement"
	"github.com/quantprep/quantprep/internal/progress"
	"github.com/quantprep/quantprep/internal/srs"
	"github.com/quantprep/quantprep/internal/stats"
	"github.com/quantprep/quantprep/internal/streak"
	"github.com/quantprep/quantprep/internal/store"
)

// ErrPersist wraps storage failures that happen after the in-memory
// state has already been updated. Callers may treat it as a warning:
// the recorded session is not lost until the process exits.
var ErrPersist = errors.New("tracker: persist failed")

// ErrDrillQuota is returned when a free-tier user has used up their
// drill sessions.
var ErrDrillQuota = errors.New("tracker: drill quota exhausted")

// defaultKeepSnapshots bounds the snapshot history retained in the store.
const defaultKeepSnapshots = 20

// Tracker is the single writer for all progress state. Every
// read-modify-write cycle holds mu, so concurrent RecordResult calls
// serialize rather than interleave.
type Tracker struct {
	mu  sync.Mutex
	log *zap.Logger

	catalog   *content.Catalog
	snapshots *store.SnapshotRepo
	events    *store.EventRepo

	prog  progress.Snapshot
	drill drill.Stats
	ent   entitlement.State

	keep  int
	today func() civil.Date
}

// New loads the latest persisted state and returns a ready tracker.
// An empty or unreadable store yields a fresh zero state.
func New(st *store.Store, catalog *content.Catalog, log *zap.Logger) (*Tracker, error) {
	t := &Tracker{
		log:       log,
		catalog:   catalog,
		snapshots: st.Snapshots(),
		events:    st.Events(),
		keep:      defaultKeepSnapshots,
		today:     civil.Today,
	}
	t.load()
	return t, nil
}

// load pulls the newest snapshot, falling back to the zero value when
// the store is empty or the blob cannot be decoded. Older blobs may
// predate categories or difficulties, so fixed keys are back-filled.
func (t *Tracker) load() {
	data, err := t.snapshots.Latest()
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		t.resetState()
		return
	case err != nil:
		t.log.Warn("snapshot unreadable, starting fresh", zap.Error(err))
		t.resetState()
		return
	}
	t.prog = data.Progress
	t.prog.Backfill()
	t.drill = data.Drill
	t.drill.Backfill()
	t.ent = data.Entitlement
	if t.ent.Tier == "" {
		t.ent = entitlement.NewState()
	}
}

func (t *Tracker) resetState() {
	t.prog = progress.NewSnapshot()
	t.drill = drill.NewStats()
	t.ent = entitlement.NewState()
}

// RecordResult folds a completed quiz into all progress state and
// returns any newly earned achievement IDs. The in-memory update always
// commits; a storage failure is reported as an ErrPersist-wrapped soft
// error after the fact.
func (t *Tracker) RecordResult(ctx context.Context, res progress.QuizResult) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Date.IsZero() {
		res.Date = today
	}

	next := t.prog.Clone()

	for _, qr := range res.QuestionResults {
		prev, ok := next.SRData[qr.QuestionID]
		var card srs.Card
		if ok {
			card = srs.Review(&prev, qr.QuestionID, qr.Correct, today)
		} else {
			card = srs.Review(nil, qr.QuestionID, qr.Correct, today)
		}
		next.SRData[qr.QuestionID] = card
	}

	outcomes := make([]stats.Outcome, len(res.QuestionResults))
	for i, qr := range res.QuestionResults {
		outcomes[i] = stats.Outcome{QuestionID: qr.QuestionID, Correct: qr.Correct}
	}
	next.Tally = stats.Apply(next.Tally, res.Category,
		res.TotalQuestions, res.CorrectAnswers, outcomes, t.catalog)

	next.PushHistory(res)
	next.Streak = streak.Update(next.Streak, today)

	newIDs := achievements.Evaluate(achievements.Input{
		Progress:      &next,
		DrillSessions: t.drill.TotalSessions,
	})
	next.Achievements = append(next.Achievements, newIDs...)

	t.prog = next

	if err := t.persist(); err != nil {
		return newIDs, err
	}
	if err := t.events.AppendQuiz(res); err != nil {
		t.log.Warn("quiz event not recorded", zap.Error(err))
	}
	t.log.Info("quiz recorded",
		zap.String("quiz", res.ID),
		zap.String("category", string(res.Category)),
		zap.Int("correct", res.CorrectAnswers),
		zap.Int("total", res.TotalQuestions),
		zap.Strings("achievements", newIDs))
	return newIDs, nil
}

// RecordDrill folds a completed mental-math drill. Drills count toward
// the streak and toward drill achievements, and consume the free-tier
// session quota.
func (t *Tracker) RecordDrill(ctx context.Context, res drill.Result) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Date.IsZero() {
		res.Date = today
	}

	t.drill = drill.Apply(t.drill, res)
	t.ent = t.ent.ConsumeDrill(today)

	next := t.prog.Clone()
	next.Streak = streak.Update(next.Streak, today)
	newIDs := achievements.Evaluate(achievements.Input{
		Progress:      &next,
		DrillSessions: t.drill.TotalSessions,
	})
	next.Achievements = append(next.Achievements, newIDs...)
	t.prog = next

	if err := t.persist(); err != nil {
		return newIDs, err
	}
	if err := t.events.AppendDrill(res); err != nil {
		t.log.Warn("drill event not recorded", zap.Error(err))
	}
	return newIDs, nil
}

// persist writes the full state blob and prunes old snapshots. Must be
// called with mu held.
func (t *Tracker) persist() error {
	data := &store.SnapshotData{
		Progress:    t.prog,
		Drill:       t.drill,
		Entitlement: t.ent,
	}
	if err := t.snapshots.Save(data); err != nil {
		t.log.Warn("progress not persisted", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := t.snapshots.Prune(t.keep); err != nil {
		t.log.Warn("snapshot prune failed", zap.Error(err))
	}
	return nil
}

// KeepSnapshots overrides how many snapshot rows survive pruning.
func (t *Tracker) KeepSnapshots(n int) {
	if n > 0 {
		t.mu.Lock()
		t.keep = n
		t.mu.Unlock()
	}
}

// GetProgress returns an independent copy of the current snapshot.
func (t *Tracker) GetProgress() progress.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prog.Clone()
}

// DrillStats returns a copy of the mental-math record.
func (t *Tracker) DrillStats() drill.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drill.Clone()
}

// Entitlement returns the current tier state.
func (t *Tracker) Entitlement() entitlement.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ent
}

// CanDrill reports whether a new drill session may start under the
// current tier, returning ErrDrillQuota when the free quota is spent.
func (t *Tracker) CanDrill() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ent.CanDrill(t.today()) {
		return ErrDrillQuota
	}
	return nil
}

// StartTrial begins the pro trial window and persists.
func (t *Tracker) StartTrial(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ent = t.ent.StartTrial(t.today())
	return t.persist()
}

// Upgrade switches to the pro tier and persists.
func (t *Tracker) Upgrade(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ent = t.ent.Upgrade()
	return t.persist()
}

// DueQuestions returns the IDs scheduled for review today, soonest
// first.
func (t *Tracker) DueQuestions() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return srs.Due(t.prog.SRData, t.today())
}

// WeakTags returns the lowest-accuracy tags with enough attempts.
func (t *Tracker) WeakTags(minAttempts int) []stats.TagAccuracy {
	t.mu.Lock()
	defer t.mu.Unlock()
	return stats.WeakTags(t.prog.Tags, minAttempts)
}

// Reset discards all quiz and drill progress, keeping the entitlement
// tier, and persists the fresh state.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ent := t.ent
	t.resetState()
	t.ent = ent

	if err := t.snapshots.DeleteAll(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return t.persist()
}
