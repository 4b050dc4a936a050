package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/certcheck/internal/state"
)

// datasetMsg carries the store state after a load attempt.
type datasetMsg struct {
	snapshot state.Snapshot
}

// lookupDueMsg fires once the lookup delay for submission seq has elapsed.
type lookupDueMsg struct {
	seq int
}

// loadDatasetCmd runs the loader off the event loop. The loader records its
// outcome in the store and logs it, so only the snapshot is reported back.
func loadDatasetCmd(ctx context.Context, loader Loader, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		_ = loader.Load(ctx)
		return datasetMsg{snapshot: store.Snapshot()}
	}
}

func lookupAfter(delay time.Duration, seq int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return lookupDueMsg{seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return lookupDueMsg{seq: seq}
	})
}
