package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/five82/certcheck/internal/dataset"
	"github.com/five82/certcheck/internal/state"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoader_PublishesDataset(t *testing.T) {
	path := writeDataset(t, "CERT-001,Welding,Jane Doe,R-22,6 months,ABC College\nCERT-002,Plumbing\n")
	store := &state.Store{}
	loader := NewLoader(&dataset.FileSource{Path: path}, dataset.FormatCSV, "", store, zaptest.NewLogger(t))

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	snap := store.Snapshot()
	if !snap.Ready() || snap.Records() != 2 {
		t.Fatalf("snapshot = %#v, want ready with 2 records", snap)
	}
	if snap.Source != path {
		t.Fatalf("Source = %q, want %q", snap.Source, path)
	}
	if _, err := snap.Dataset.Find(" cert-001 "); err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
}

func TestLoader_FailureIsUnavailableAndRetryable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	store := &state.Store{}
	loader := NewLoader(&dataset.FileSource{Path: path}, dataset.FormatCSV, "", store, zaptest.NewLogger(t))

	err := loader.Load(context.Background())
	if !errors.Is(err, dataset.ErrUnavailable) {
		t.Fatalf("Load error = %v, want ErrUnavailable", err)
	}
	snap := store.Snapshot()
	if snap.Status != state.StatusFailed || !errors.Is(snap.LastError, dataset.ErrUnavailable) {
		t.Fatalf("snapshot = %#v, want failed with ErrUnavailable", snap)
	}

	if err := os.WriteFile(path, []byte("A-1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("retry Load returned error: %v", err)
	}
	if snap := store.Snapshot(); !snap.Ready() || snap.Attempts != 2 {
		t.Fatalf("snapshot after retry = %#v, want ready after 2 attempts", snap)
	}
}

func TestLoader_RefusesSecondLoad(t *testing.T) {
	path := writeDataset(t, "A-1\n")
	store := &state.Store{}
	loader := NewLoader(&dataset.FileSource{Path: path}, dataset.FormatCSV, "", store, nil)

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	first := store.Snapshot().Dataset

	if err := os.WriteFile(path, []byte("B-1\nB-2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := loader.Load(context.Background()); !errors.Is(err, state.ErrAlreadyLoaded) {
		t.Fatalf("second Load error = %v, want ErrAlreadyLoaded", err)
	}
	if store.Snapshot().Dataset != first {
		t.Fatalf("dataset replaced after second Load")
	}
}

type blockingSource struct{}

func (blockingSource) Fetch(ctx context.Context) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingSource) String() string { return "blocking" }

func TestLoader_ContextCancelsFetch(t *testing.T) {
	store := &state.Store{}
	loader := NewLoader(blockingSource{}, dataset.FormatCSV, "", store, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loader.Load(ctx)
	if !errors.Is(err, context.DeadlineExceeded) || !errors.Is(err, dataset.ErrUnavailable) {
		t.Fatalf("Load error = %v, want deadline exceeded wrapped in ErrUnavailable", err)
	}
}

func TestLoader_ParseFailure(t *testing.T) {
	path := writeDataset(t, "definitely not a workbook")
	store := &state.Store{}
	loader := NewLoader(&dataset.FileSource{Path: path}, dataset.FormatXLSX, "", store, nil)

	if err := loader.Load(context.Background()); !errors.Is(err, dataset.ErrUnavailable) {
		t.Fatalf("Load error = %v, want ErrUnavailable", err)
	}
}
