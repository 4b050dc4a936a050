package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/certcheck/internal/config"
	"github.com/five82/certcheck/internal/dataset"
	"github.com/five82/certcheck/internal/logging"
	"github.com/five82/certcheck/internal/prefs"
	"github.com/five82/certcheck/internal/state"
	"github.com/five82/certcheck/internal/ui"
)

// Options configure the certcheck application. Zero values defer to the
// config file, environment and built-in defaults.
type Options struct {
	ConfigPath  string
	EnvFile     string // empty uses ./.env
	PrefsPath   string // empty uses ~/.config/certcheck/prefs.toml
	Dataset     string // overrides the configured dataset location
	Theme       string // overrides the stored theme preference
	LookupDelay *time.Duration
	Verbose     bool
}

// Run boots the certcheck TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Path:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	source, err := dataset.NewSource(cfg.Dataset, cfg.FetchTimeout)
	if err != nil {
		return fmt.Errorf("init dataset source: %w", err)
	}

	store := &state.Store{}
	loader := NewLoader(source, cfg.DatasetFormat(), cfg.Sheet, store, logger)

	themeName := strings.TrimSpace(opts.Theme)
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}

	logger.Info("starting",
		zap.String("dataset", source.String()),
		zap.Duration("lookup_delay", cfg.LookupDelay),
		zap.String("theme", themeName))

	return ui.Run(ui.Options{
		Context:     ctx,
		Loader:      loader,
		Store:       store,
		Logger:      logger,
		LookupDelay: cfg.LookupDelay,
		ThemeName:   themeName,
		PrefsPath:   opts.PrefsPath,
	})
}

func loadConfig(opts Options) (config.Config, error) {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if location := strings.TrimSpace(opts.Dataset); location != "" {
		resolved, err := config.ResolveDataset(location)
		if err != nil {
			return config.Config{}, fmt.Errorf("dataset flag: %w", err)
		}
		cfg.Dataset = resolved
	}
	if opts.LookupDelay != nil {
		if *opts.LookupDelay < 0 {
			return config.Config{}, fmt.Errorf("lookup delay must not be negative")
		}
		cfg.LookupDelay = *opts.LookupDelay
	}
	return cfg, nil
}
