package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/five82/certcheck/internal/dataset"
	"github.com/five82/certcheck/internal/state"
)

// Phase is where the certificate form is in its lookup cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseValid
	PhaseNotFound
	PhaseDatasetError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseValid:
		return "valid"
	case PhaseNotFound:
		return "not_found"
	case PhaseDatasetError:
		return "dataset_error"
	default:
		return "idle"
	}
}

// form holds the outcome of the most recent validation. At most one of
// record and err is meaningful at a time.
type form struct {
	phase       Phase
	query       string
	record      dataset.Record
	validatedAt time.Time
	err         error
}

// submit starts a lookup for raw. A blank query leaves the form idle with
// an error instead. Submissions while a lookup is pending are ignored.
func (f *form) submit(raw string) bool {
	if f.phase == PhaseLoading {
		return false
	}
	f.clear()
	if strings.TrimSpace(raw) == "" {
		f.err = dataset.ErrEmptyQuery
		return false
	}
	f.query = raw
	f.phase = PhaseLoading
	return true
}

// resolve finishes the pending lookup against snap.
func (f *form) resolve(snap state.Snapshot, now time.Time) {
	if f.phase != PhaseLoading {
		return
	}
	if !snap.Ready() {
		f.phase = PhaseDatasetError
		f.err = dataset.ErrNotLoaded
		return
	}

	row, err := snap.Dataset.Find(f.query)
	var notFound *dataset.NotFoundError
	switch {
	case err == nil:
		f.phase = PhaseValid
		f.record = row.Record()
		f.validatedAt = now
	case errors.As(err, &notFound):
		f.phase = PhaseNotFound
		f.err = err
	case errors.Is(err, dataset.ErrEmptyQuery):
		f.phase = PhaseIdle
		f.err = err
	default:
		f.phase = PhaseDatasetError
		f.err = err
	}
}

// reset returns the form to idle. It refuses while a lookup is pending.
func (f *form) reset() bool {
	if f.phase == PhaseLoading {
		return false
	}
	*f = form{}
	return true
}

func (f *form) clear() {
	f.phase = PhaseIdle
	f.query = ""
	f.record = dataset.Record{}
	f.validatedAt = time.Time{}
	f.err = nil
}

func (f form) pending() bool { return f.phase == PhaseLoading }

func (f form) valid() bool { return f.phase == PhaseValid }
