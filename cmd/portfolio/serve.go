package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"art-portfolio/config"
	"art-portfolio/database"
	contactapi "art-portfolio/internal/api/contact"
	prefsapi "art-portfolio/internal/api/prefs"
	siteapi "art-portfolio/internal/api/site"
	routes "art-portfolio/internal/app/http"
	"art-portfolio/internal/app/http/middleware"
	"art-portfolio/internal/content"
	"art-portfolio/internal/format"
	"art-portfolio/internal/logger"
	"art-portfolio/internal/ratelimit"
	"art-portfolio/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var release bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if release {
				gin.SetMode(gin.ReleaseMode)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, config.LoadEnv())
		},
	}

	cmd.Flags().BoolVar(&release, "release", false, "Run gin in release mode")

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: cfg.LogHuman})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	provider, err := openProvider(cfg, log)
	if err != nil {
		return err
	}
	store := storage.New(provider, log.WithFields(map[string]any{"component": "storage"}))

	catalog, err := content.NewCatalog(cfg.ContentPath, log.WithFields(map[string]any{"component": "content"}))
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	go func() {
		if err := catalog.Watch(ctx, cfg.ReloadDebounce, nil); err != nil {
			log.Error(err, "content watcher stopped")
		}
	}()

	dates := format.NewFormatter(cfg.DateLocale)
	views := siteapi.NewViewCounter(ctx, store, cfg.ViewFlushInterval, nil)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(corsConfig(cfg.CORSOrigin)))

	routes.RegisterRoutes(r, routes.Handlers{
		Site:    siteapi.NewHandler(catalog, store, dates, views, cfg.PublicURL),
		Contact: contactapi.NewHandler(store, dates, log),
		Prefs:   prefsapi.NewHandler(store),
		Writes:  ratelimit.NewKeyedThrottler(cfg.WriteCooldown, nil),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": srv.Addr}).Info("portfolio api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "graceful shutdown failed")
	}
	if err := views.Flush(shutdownCtx); err != nil && !errors.Is(err, storage.ErrUnavailable) {
		log.Error(err, "failed to save view count")
	}
	return nil
}

// openProvider picks Postgres when DB_URL is set and memory otherwise.
func openProvider(cfg config.Config, log *logger.Logger) (storage.Provider, error) {
	if cfg.DBURL == "" {
		log.Warn("DB_URL not set, preferences are kept in memory")
		return storage.NewBoundedMemoryProvider(cfg.MemoryMaxKeys), nil
	}
	db, err := database.InitDB(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database")
	return storage.NewGormProvider(db), nil
}

func corsConfig(origins string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins == "" || origins == "*" {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.AllowOrigins = append(c.AllowOrigins, o)
		}
	}
	c.AllowCredentials = true
	return c
}
