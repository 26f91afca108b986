package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/nasaimager/internal/cache"
	"github.com/five82/nasaimager/internal/config"
	"github.com/five82/nasaimager/internal/logging"
	"github.com/five82/nasaimager/internal/nasa"
	"github.com/five82/nasaimager/internal/ui"
)

// Options configure the nasaimager application.
type Options struct {
	ConfigPath string
	UserAgent  string

	// Dark overrides ui.dark from the config when non-nil.
	Dark *bool
	// LogLevel overrides log.level from the config when non-empty.
	LogLevel string
}

// Env is the set of long-lived dependencies shared by the TUI and the
// one-shot commands.
type Env struct {
	Config *config.Config
	Logger *log.Logger
	Client *nasa.Client
	Disk   *cache.Disk // nil when the disk cache is disabled

	closers []func() error
}

// Open loads configuration and builds the logger, cache tiers and client.
// Callers must Close the returned Env.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Dark != nil {
		cfg.UI.Dark = *opts.Dark
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(opts.LogLevel))
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	env := &Env{Config: cfg, Logger: logger, closers: []func() error{closeLog}}

	var tiers cache.Tiered
	if cfg.Cache.Memory {
		tiers = append(tiers, cache.NewMemory(cfg.CacheTTL()))
	}
	if cfg.Cache.Path != "" {
		disk, err := cache.OpenDisk(cfg.Cache.Path, cfg.CacheTTL(), logger.WithPrefix("cache"))
		if err != nil {
			// The network still works without the disk tier.
			logger.Warn("disk cache disabled", "path", cfg.Cache.Path, "error", err)
		} else {
			env.Disk = disk
			env.closers = append(env.closers, disk.Close)
			tiers = append(tiers, disk)
		}
	}

	clientOpts := nasa.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		UserAgent:         opts.UserAgent,
		Logger:            logger,
	}
	if len(tiers) > 0 {
		clientOpts.Cache = tiers
	}
	client, err := nasa.NewClient(clientOpts)
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("init nasa client: %w", err)
	}
	env.Client = client

	logger.Debug("environment ready",
		"base_url", cfg.API.BaseURL,
		"memory_cache", cfg.Cache.Memory,
		"disk_cache", env.Disk != nil,
	)
	return env, nil
}

// Close releases the cache database and the log file, newest first.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	env.Logger.Info("nasaimager started", "dark", env.Config.UI.Dark)
	defer env.Logger.Info("nasaimager stopped")

	if env.Disk != nil {
		StartJanitor(ctx, env.Disk, defaultSweepInterval, env.Logger)
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Fetcher: env.Client,
		Logger:  env.Logger,
		Dark:    env.Config.UI.Dark,
	})
}
