package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/sixcities/internal/config"
	"github.com/five82/sixcities/internal/logging"
	"github.com/five82/sixcities/internal/operations"
	"github.com/five82/sixcities/internal/prefs"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
	"github.com/five82/sixcities/internal/token"
	"github.com/five82/sixcities/internal/ui"
)

// Options configure the sixcities application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses ~/.config/sixcities/prefs.toml
	RefreshEvery time.Duration // zero uses the configured refresh_interval
}

const bootstrapTimeout = 10 * time.Second

// Run boots the client and blocks in the TUI until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	logger := logging.New(logging.Options{
		Writer: logFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	tokens := token.NewFileStore(cfg.TokenPath)
	client, err := sixcities.NewClient(cfg.APIURL, cfg.Timeout, tokens, sixcities.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := state.NewStore(initialState(userPrefs))
	ops := operations.New(client, store, tokens, logger)

	logger.Info("starting", "api_url", cfg.APIURL, "city", userPrefs.StartCity().Name)
	bootstrap(ctx, ops, logger)

	interval := cfg.RefreshInterval
	if opts.RefreshEvery > 0 {
		interval = opts.RefreshEvery
	}
	StartRefresher(ctx, ops, interval, logger)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Ops:       ops,
		Logger:    logger,
		LogPath:   cfg.LogFile,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

func initialState(p prefs.Prefs) state.State {
	s := state.Initial()
	s.City.City = p.StartCity()
	s.Listing.Sort = p.StartSort()
	return s
}

type bootstrapper interface {
	CheckAuth(ctx context.Context) error
	FetchOffers(ctx context.Context) error
}

// bootstrap populates the store before the UI starts. Failures are logged;
// the UI renders whatever loading status they left behind.
func bootstrap(ctx context.Context, ops bootstrapper, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error { return ops.CheckAuth(ctx) })
	g.Go(func() error { return ops.FetchOffers(ctx) })
	if err := g.Wait(); err != nil {
		logger.Warn("initial load failed", "error", err)
	}
}
