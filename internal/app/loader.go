package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/certcheck/internal/dataset"
	"github.com/five82/certcheck/internal/state"
)

// Loader fetches and parses the dataset once, publishing the result to the
// session store.
type Loader struct {
	source dataset.Source
	format dataset.Format
	sheet  string
	store  *state.Store
	logger *zap.Logger
}

// NewLoader wires a Loader. A nil logger disables logging.
func NewLoader(source dataset.Source, format dataset.Format, sheet string, store *state.Store, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source: source,
		format: format,
		sheet:  sheet,
		store:  store,
		logger: logger,
	}
}

// Load runs one load attempt. It returns state.ErrAlreadyLoaded when the
// dataset is already in place and an error wrapping dataset.ErrUnavailable
// when the resource could not be fetched or parsed. Either way the outcome
// is visible through the store.
func (l *Loader) Load(ctx context.Context) error {
	if err := l.store.BeginLoad(l.source.String()); err != nil {
		return err
	}

	start := time.Now()
	log := l.logger.With(zap.String("source", l.source.String()), zap.String("format", string(l.format)))
	log.Debug("loading dataset")

	ds, err := l.fetch(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", dataset.ErrUnavailable, err)
		log.Warn("dataset load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		if pubErr := l.store.Publish(nil, err); pubErr != nil {
			return errors.Join(err, pubErr)
		}
		return err
	}

	if err := l.store.Publish(ds, nil); err != nil {
		return err
	}
	log.Info("dataset loaded", zap.Int("rows", ds.Len()), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (l *Loader) fetch(ctx context.Context) (*dataset.Dataset, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Parse(data, l.format, l.sheet)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.format, err)
	}
	return ds, nil
}
