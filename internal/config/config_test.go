package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Quiz.WeakTagMinAttempts != 3 {
		t.Errorf("WeakTagMinAttempts = %d, want 3", cfg.Quiz.WeakTagMinAttempts)
	}
	if cfg.Quiz.SnapshotsKept != 20 {
		t.Errorf("SnapshotsKept = %d, want 20", cfg.Quiz.SnapshotsKept)
	}
	if cfg.Drill.SessionSeconds != 60 {
		t.Errorf("SessionSeconds = %d, want 60", cfg.Drill.SessionSeconds)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("QUANTPREP_ENV", "production")
	t.Setenv("QUANTPREP_DB", "/tmp/prep.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.DBPath != "/tmp/prep.db" {
		t.Errorf("DBPath = %q, want override", cfg.DBPath)
	}
}
