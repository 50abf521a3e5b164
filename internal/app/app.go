package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/feed"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/follow"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/member"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/reaction"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/tagmapper"
	"github.com/heartmarshall/doblock-backend/internal/auth"
	"github.com/heartmarshall/doblock-backend/internal/config"
	"github.com/heartmarshall/doblock-backend/internal/service/search"
	"github.com/heartmarshall/doblock-backend/internal/transport/middleware"
	"github.com/heartmarshall/doblock-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, err := NewHandler(cfg, logger, pool, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the full HTTP handler: repositories, search service,
// REST routes and the middleware chain. Collectors are registered on reg.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) (http.Handler, error) {
	schema, err := postgres.NewMigrationProvider(pool)
	if err != nil {
		return nil, err
	}

	svc := search.NewService(logger, search.Repos{
		Members:    member.New(pool),
		Follows:    follow.New(pool),
		Feeds:      feed.New(pool),
		Reactions:  reaction.New(pool),
		Comments:   comment.New(pool),
		Tags:       tag.New(pool),
		TagMappers: tagmapper.New(pool),
	}, postgres.NewTxManager(pool), search.Limits{
		PostsPerPage:    cfg.Feed.PostsPerPage,
		RecommendPerTag: cfg.Feed.RecommendPerTag,
		RecentReactions: cfg.Feed.RecentReactions,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var (
		metricsMW      middleware.Middleware
		metricsHandler http.Handler
	)
	if cfg.Server.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			newPoolCollector(pool),
		)
		metricsMW = middleware.NewMetrics(reg).Middleware()
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	router := rest.NewRouter(
		rest.NewFeedHandler(svc, logger),
		rest.NewHealthHandler(pool, schema, BuildVersion()),
		metricsHandler,
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		metricsMW,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(router), nil
}

// serve runs srv until ctx ends, then drains in-flight requests within the
// configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
