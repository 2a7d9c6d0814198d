package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/domain"
	"github.com/ecosystem-ai/footer/internal/logger"
	"github.com/ecosystem-ai/footer/internal/metrics"
	"github.com/ecosystem-ai/footer/internal/sources/menufile"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
)

// MenuReloader keeps the catalog in sync with the configured menu source.
// Without a menu file the built-in table is the only source.
type MenuReloader struct {
	loader        *menufile.Loader // nil => built-in table
	mapper        *menufile.Mapper
	brand         string
	store         *redisstore.Store // nil => no persistence
	catalog       *catalog.Catalog
	metrics       *metrics.Recorder
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewMenuReloader creates a reloader. menuFile may be empty.
func NewMenuReloader(
	menuFile string,
	brand string,
	store *redisstore.Store,
	cat *catalog.Catalog,
	rec *metrics.Recorder,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *MenuReloader {
	var loader *menufile.Loader
	if menuFile != "" {
		loader = menufile.NewLoader(menuFile)
	}
	return &MenuReloader{
		loader:        loader,
		mapper:        menufile.NewMapper(brand),
		brand:         brand,
		store:         store,
		catalog:       cat,
		metrics:       rec,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the menu once, then reloads on every tick and manual trigger.
// A failing first load falls back to the built-in table when nothing else
// is live, so the footer is always servable.
func (mr *MenuReloader) Start(ctx context.Context) error {
	if err := mr.Reload(ctx); err != nil {
		if mr.catalog.Loaded() {
			mr.logger.Warn("initial menu load failed, keeping restored snapshot",
				logger.String("source", string(mr.catalog.Source())),
				logger.Error(err))
		} else {
			mr.logger.Error("initial menu load failed, serving built-in menu",
				logger.Error(err))
			mr.install(ctx, domain.DefaultFooter(mr.brand), catalog.SourceBuiltin)
		}
	}

	var ticker *time.Ticker
	var tick <-chan time.Time
	if mr.interval > 0 {
		ticker = time.NewTicker(mr.interval)
		tick = ticker.C
	}

	go func() {
		if ticker != nil {
			defer ticker.Stop()
		}
		for {
			select {
			case <-tick:
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload menu", logger.Error(err))
				}
			case <-mr.manualTrigger:
				mr.logger.Info("manual reload triggered")
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload menu", logger.Error(err))
				}
			case <-mr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (mr *MenuReloader) Stop() {
	close(mr.stopCh)
}

// Reload reads the configured source and installs the result.
// On failure the live snapshot is left untouched.
func (mr *MenuReloader) Reload(ctx context.Context) error {
	if mr.loader == nil {
		mr.install(ctx, domain.DefaultFooter(mr.brand), catalog.SourceBuiltin)
		mr.metrics.IncReload(string(catalog.SourceBuiltin), nil)
		return nil
	}

	mr.logger.Info("reloading menu file", logger.String("file", mr.loader.Path()))

	footer, err := mr.loadFile()
	mr.metrics.IncReload(string(catalog.SourceFile), err)
	if err != nil {
		return err
	}

	mr.install(ctx, footer, catalog.SourceFile)
	return nil
}

func (mr *MenuReloader) loadFile() (*domain.Footer, error) {
	cfg, err := mr.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	footer, err := mr.mapper.MapFooter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to map menu: %w", err)
	}
	return footer, nil
}

// install swaps the snapshot in when its content changed and persists it.
func (mr *MenuReloader) install(ctx context.Context, footer *domain.Footer, source catalog.Source) {
	if mr.catalog.Loaded() && mr.catalog.Fingerprint() == footer.Fingerprint() {
		mr.logger.Debug("menu unchanged, keeping live snapshot",
			logger.String("fingerprint", footer.Fingerprint()))
		return
	}

	mr.catalog.Swap(footer, source)
	mr.metrics.SetSnapshot(len(footer.Sections), footer.ItemCount()+len(footer.Socials))

	mr.logger.Info("menu snapshot installed",
		logger.String("source", string(source)),
		logger.String("fingerprint", footer.Fingerprint()),
		logger.Int("sections", len(footer.Sections)),
		logger.Int("items", footer.ItemCount()),
		logger.Int("socials", len(footer.Socials)))

	if mr.store != nil {
		if err := mr.store.SaveSnapshot(ctx, footer); err != nil {
			mr.logger.Warn("failed to save snapshot to redis", logger.Error(err))
		} else {
			mr.logger.Debug("snapshot saved to redis")
		}
	}
}
