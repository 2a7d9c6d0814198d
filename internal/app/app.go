package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/config"
	"github.com/ecosystem-ai/footer/internal/httpserver"
	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
	"github.com/ecosystem-ai/footer/internal/logger"
	"github.com/ecosystem-ai/footer/internal/metrics"
	"github.com/ecosystem-ai/footer/internal/redis"
	"github.com/ecosystem-ai/footer/internal/render"
	"github.com/ecosystem-ai/footer/internal/scheduler"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
	"github.com/ecosystem-ai/footer/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Catalog
	reloader    *scheduler.MenuReloader
	watcher     *scheduler.FileWatcher
	pruner      *scheduler.CachePruner
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	recorder := metrics.NewRecorder()
	cat := catalog.New()

	// Redis is optional: without it the footer is rendered on every request.
	var redisClient *goredis.Client
	var store *redisstore.Store
	if cfg.RedisEnabled() {
		redisClient, store = connectRedis(cfg, loggerClient)
	} else {
		loggerClient.Info("redis not configured, fragment cache disabled")
	}

	// Restore the last snapshot so the footer is servable before the menu loads.
	if store != nil {
		syncer := scheduler.NewRedisSyncer(store, cat, loggerClient.Named("redis-sync"))
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to restore snapshot from redis, will load menu",
				logger.Error(err))
		}
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewMenuReloader(
		cfg.MenuFile,
		cfg.Brand,
		store,
		cat,
		recorder,
		loggerClient.Named("menu"),
		cfg.ReloadInterval,
		reloadTrigger,
	)

	var watcher *scheduler.FileWatcher
	if cfg.MenuFile != "" && cfg.WatchMenuFile {
		w, err := scheduler.NewFileWatcher(cfg.MenuFile, reloadTrigger, scheduler.DefaultDebounce, loggerClient.Named("watcher"))
		if err != nil {
			loggerClient.Warn("menu file watcher disabled", logger.Error(err))
		} else {
			watcher = w
		}
	}

	var pruner *scheduler.CachePruner
	if store != nil {
		pruner = scheduler.NewCachePruner(store, cat, loggerClient.Named("pruner"), cfg.PruneInterval, time.Now)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		CORSOrigins:   cfg.CORSOrigins,
		RateBurst:     cfg.RateBurst,
		RatePerMinute: cfg.RatePerMinute,
		MenuFile:      cfg.MenuFile,
		Catalog:       cat,
		Renderer:      render.New(render.WithMinify(cfg.Minify)),
		Store:         store,
		RedisClient:   redisClient,
		CacheTTL:      cfg.CacheTTL,
		Metrics:       recorder,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     cat,
		reloader:    reloader,
		watcher:     watcher,
		pruner:      pruner,
	}
}

// connectRedis dials Redis with retries. A Redis that stays unreachable
// degrades the service to render-per-request instead of stopping it.
func connectRedis(cfg *config.Config, log logger.Logger) (*goredis.Client, *redisstore.Store) {
	log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	client, err := redis.New(context.Background(), redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, log.Named("redis"))
	if err != nil {
		log.Error("failed to connect to redis, running without fragment cache",
			logger.Error(err))
		return nil, nil
	}

	log.Info("Redis initialized successfully")
	return client, redisstore.NewStore(client)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting footer v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("footer %s", version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start menu reloader (loads the menu and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start menu reloader: %w", err)
	}
	a.logger.Info("menu reloader started",
		logger.String("source", string(a.catalog.Source())),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			a.logger.Warn("failed to start menu file watcher", logger.Error(err))
			a.watcher.Stop()
			a.watcher = nil
		}
	}

	if a.pruner != nil {
		if err := a.pruner.Start(ctx); err != nil {
			return fmt.Errorf("failed to start cache pruner: %w", err)
		}
		a.logger.Info("cache pruner started",
			logger.Duration("interval", a.cfg.PruneInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.pruner != nil {
		a.pruner.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ footer stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
