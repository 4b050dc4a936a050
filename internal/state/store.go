package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/certcheck/internal/dataset"
)

// Status is the lifecycle of the session's dataset.
type Status int

const (
	StatusPending Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// ErrAlreadyLoaded is returned when a dataset has already been published.
var ErrAlreadyLoaded = errors.New("dataset already loaded")

// Snapshot represents the dataset state visible to the UI.
type Snapshot struct {
	Status    Status
	Dataset   *dataset.Dataset
	Source    string
	LoadedAt  time.Time
	LastError error
	Attempts  int
}

// Ready reports whether lookups may run.
func (s Snapshot) Ready() bool {
	return s.Status == StatusReady && s.Dataset != nil
}

// Records returns the number of loaded rows.
func (s Snapshot) Records() int {
	return s.Dataset.Len()
}

// Store coordinates the loader goroutine with the UI loop.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginLoad marks a load attempt as in flight.
func (s *Store) BeginLoad(source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.snapshot.Status {
	case StatusReady:
		return ErrAlreadyLoaded
	case StatusLoading:
		return fmt.Errorf("load of %s already in progress", s.snapshot.Source)
	}
	s.snapshot.Status = StatusLoading
	s.snapshot.Source = source
	s.snapshot.Attempts++
	return nil
}

// Publish records the outcome of a load attempt. When err is non-nil the
// store moves to failed and keeps no rows. A published dataset is final.
func (s *Store) Publish(ds *dataset.Dataset, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Status == StatusReady {
		return ErrAlreadyLoaded
	}
	if err != nil {
		s.snapshot.Status = StatusFailed
		s.snapshot.Dataset = nil
		s.snapshot.LastError = err
		return nil
	}
	if ds == nil {
		ds = dataset.New(nil)
	}
	s.snapshot.Status = StatusReady
	s.snapshot.Dataset = ds
	s.snapshot.LastError = nil
	s.snapshot.LoadedAt = time.Now()
	return nil
}

// Snapshot returns a copy of the current state. The dataset pointer is shared
// since datasets are immutable.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
