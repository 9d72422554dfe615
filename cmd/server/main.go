package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"personnel/internal/auth/revocation"
	"personnel/internal/jwttoken"
	personnelhandler "personnel/internal/personnel/handler"
	personnelmetrics "personnel/internal/personnel/metrics"
	personnelservice "personnel/internal/personnel/service"
	personnelstore "personnel/internal/personnel/store"
	"personnel/internal/platform/config"
	"personnel/internal/platform/httpserver"
	"personnel/internal/platform/logger"
	"personnel/internal/platform/metrics"
	"personnel/internal/platform/middleware"
	"personnel/internal/platform/postgres"
	"personnel/internal/platform/redis"
	"personnel/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/personnel.
func main() {
	if err := run(); err != nil {
		slog.Error("personnel server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := personnelstore.ApplySchema(ctx, db); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var revocations middleware.TokenRevocationChecker
	if redisClient != nil {
		defer redisClient.Close()
		revocations = revocation.NewRedisTRL(redisClient.Client)
	} else {
		log.Warn("REDIS_URL not set; token revocation is disabled")
	}

	reg := prometheus.DefaultRegisterer
	httpMetrics := metrics.New(reg)

	service := personnelservice.New(
		personnelstore.NewPostgresTx(db, cfg.Database.TxTimeout),
		personnelservice.Stores{
			Persons:        personnelstore.NewPersonStore(db),
			Units:          personnelstore.NewUnitStore(db),
			Cities:         personnelstore.NewCityStore(db),
			Assignments:    personnelstore.NewAssignmentStore(db),
			PermanentStaff: personnelstore.NewPermanentStaffStore(db),
			TemporaryStaff: personnelstore.NewTemporaryStaffStore(db),
		},
		personnelservice.WithLogger(log),
		personnelservice.WithMetrics(personnelmetrics.NewWithRegistry(reg)),
	)

	validator := jwttoken.NewJWTServiceAdapter(
		jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience),
	)

	health := func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("database unavailable: %w", err)
		}
		if redisClient != nil {
			if err := redisClient.Health(ctx); err != nil {
				return fmt.Errorf("redis unavailable: %w", err)
			}
		}
		return nil
	}

	router := newRouter(routerDeps{
		service:        service,
		validator:      validator,
		revocations:    revocations,
		metrics:        httpMetrics,
		health:         health,
		logger:         log,
		requestTimeout: cfg.Server.RequestTimeout,
	})

	srv := httpserver.New(cfg.Server.Addr, otelhttp.NewHandler(router, "personnel"), cfg.Server.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting personnel registry", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down personnel registry")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type routerDeps struct {
	service        personnelhandler.Service
	validator      middleware.JWTValidator
	revocations    middleware.TokenRevocationChecker
	metrics        *metrics.Metrics
	health         func(ctx context.Context) error
	logger         *slog.Logger
	requestTimeout time.Duration
}

// newRouter mounts the personnel API behind bearer auth. /healthz and
// /metrics stay open.
func newRouter(d routerDeps) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(d.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(d.logger))
	router.Use(middleware.LatencyMiddleware(d.metrics))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := d.health(r.Context()); err != nil {
			d.logger.WarnContext(r.Context(), "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(d.requestTimeout))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(d.validator, d.revocations, d.metrics, d.logger))
		personnelhandler.New(d.service, d.logger).Register(r)
	})
	return router
}
