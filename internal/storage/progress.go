// internal/storage/progress.go
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "player"
)

// Progress is what survives between game sessions.
type Progress struct {
	LastScore      uint32 `yaml:"lastScore"`
	BestScore      uint32 `yaml:"bestScore"`
	LevelsFinished int    `yaml:"levelsFinished"`
}

// ProgressStore keeps Progress in memory and mirrors it to gdata.
// A nil manager gives a memory-only store.
type ProgressStore struct {
	gdataManager *gdata.Manager
	progress     Progress
}

// OpenProgressStore opens the platform data directory for appName.
// If that fails the store falls back to memory only and the error is
// returned alongside it.
func OpenProgressStore(appName string) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewProgressStore(nil), fmt.Errorf("failed to open game data: %w", err)
	}
	return NewProgressStore(m), nil
}

// NewProgressStore creates the store and loads saved progress, if any.
func NewProgressStore(gdataManager *gdata.Manager) *ProgressStore {
	s := &ProgressStore{gdataManager: gdataManager}
	if err := s.Load(); err != nil {
		log.Printf("WARNING: failed to load progress: %v (starting fresh)", err)
	}
	return s
}

// Load replaces the in-memory progress with the saved copy.
func (s *ProgressStore) Load() error {
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		s.progress = Progress{}
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	s.progress = p
	return nil
}

// Save writes the in-memory progress.
func (s *ProgressStore) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	log.Printf("Progress saved: last %d, best %d, levels %d", s.progress.LastScore, s.progress.BestScore, s.progress.LevelsFinished)
	return nil
}

// Progress returns a copy of the current progress.
func (s *ProgressStore) Progress() Progress {
	return s.progress
}

// RecordLevelFinished stores the final score of a level and saves.
func (s *ProgressStore) RecordLevelFinished(score uint32) error {
	s.progress.LastScore = score
	if score > s.progress.BestScore {
		s.progress.BestScore = score
	}
	s.progress.LevelsFinished++
	return s.Save()
}
