package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quantprep/quantprep/internal/drill"
	"github.com/quantprep/quantprep/internal/entitlement"
	"github.com/quantprep/quantprep/internal/progress"
)

// SnapshotVersion tags the serialized blob so future schema changes can
// migrate old rows on load.
const SnapshotVersion = 1

// SnapshotData is the full persisted state: one JSON blob per row.
type SnapshotData struct {
	Version     int               `json:"version"`
	Progress    progress.Snapshot `json:"progress"`
	Drill       drill.Stats       `json:"drill"`
	Entitlement entitlement.State `json:"entitlement"`
}

// ErrNoSnapshot is returned by Latest when the store holds no rows yet.
var ErrNoSnapshot = errors.New("store: no snapshot")

// SnapshotRepo stores and retrieves full-state snapshots.
type SnapshotRepo struct {
	db *sqlx.DB
}

// Save serializes data and appends it as the newest snapshot.
func (r *SnapshotRepo) Save(data *SnapshotData) error {
	data.Version = SnapshotVersion
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	seq, err := nextSequence(r.db)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO snapshots (sequence, created_at, data) VALUES (?, ?, ?)`,
		seq, time.Now().UTC().Format(time.RFC3339), string(blob),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recently saved snapshot, or ErrNoSnapshot.
func (r *SnapshotRepo) Latest() (*SnapshotData, error) {
	var raw string
	err := r.db.Get(&raw,
		`SELECT data FROM snapshots ORDER BY sequence DESC, id DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &data, nil
}

// Prune deletes all but the newest keep snapshots.
func (r *SnapshotRepo) Prune(keep int) error {
	if keep < 1 {
		keep = 1
	}
	_, err := r.db.Exec(
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY sequence DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// DeleteAll removes every snapshot row. Used by reset.
func (r *SnapshotRepo) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
