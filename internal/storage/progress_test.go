package storage

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "td_hud_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestProgressStoreMemoryOnly(t *testing.T) {
	s := NewProgressStore(nil)

	if err := s.RecordLevelFinished(150); err != nil {
		t.Fatalf("RecordLevelFinished: %v", err)
	}
	if err := s.RecordLevelFinished(90); err != nil {
		t.Fatalf("RecordLevelFinished: %v", err)
	}

	p := s.Progress()
	if p.LastScore != 90 || p.BestScore != 150 || p.LevelsFinished != 2 {
		t.Errorf("progress: got %+v", p)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load in memory-only mode: %v", err)
	}
}

func TestProgressStoreRoundTrip(t *testing.T) {
	m := openTestManager(t)

	s := NewProgressStore(m)
	if p := s.Progress(); p != (Progress{}) {
		t.Fatalf("fresh store not empty: %+v", p)
	}
	if err := s.RecordLevelFinished(320); err != nil {
		t.Fatalf("RecordLevelFinished: %v", err)
	}

	reopened := NewProgressStore(m)
	p := reopened.Progress()
	if p.LastScore != 320 || p.BestScore != 320 || p.LevelsFinished != 1 {
		t.Errorf("reloaded progress: got %+v", p)
	}
}

func TestProgressStoreCorruptData(t *testing.T) {
	m := openTestManager(t)
	if err := m.SaveObjectProp(progressObject, progressProperty, []byte("lastScore: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	s := &ProgressStore{gdataManager: m}
	if err := s.Load(); err == nil {
		t.Error("expected error for corrupt progress")
	}

	// the constructor logs and starts fresh
	if p := NewProgressStore(m).Progress(); p != (Progress{}) {
		t.Errorf("progress after corrupt load: %+v", p)
	}
}
