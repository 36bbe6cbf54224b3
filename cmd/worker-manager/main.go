// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-workers/internal/common/camunda"
	"career-workers/internal/common/config"
	"career-workers/internal/common/database"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/profile"
	"career-workers/internal/recommendation"
	"career-workers/pkg/registry"

	gr "career-workers/internal/workers/career/generate-recommendations"
	rcr "career-workers/internal/workers/career/resolve-course-route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog, _ := zap.NewProduction()
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		bootLog, _ := zap.NewProduction()
		bootLog.Fatal("logger init failed", zap.Error(err))
	}
	zapLog = zapLog.With(zap.String("service", cfg.App.Name), zap.String("version", cfg.App.Version))
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("Starting worker manager...", zap.String("environment", cfg.App.Environment))

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.App.Name,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
	})
	if err != nil {
		zapLog.Warn("observability degraded", zap.Error(err))
	}
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			zapLog.Warn("observability shutdown failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}
	if problems := reg.Validate(); len(problems) > 0 {
		for _, p := range problems {
			zapLog.Error("activity registry problem", zap.Error(p))
		}
		zapLog.Fatal("activity registry invalid", zap.Int("problems", len(problems)))
	}

	zeebe, err := camunda.NewClient(ctx, camunda.ClientConfigFrom(cfg.Camunda), log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()
	zapLog.Info("Zeebe client connected successfully")

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres open failed", zap.Error(err))
	}
	defer pg.Close()
	if err := database.WaitFor(ctx, "PostgreSQL", pg, 15, 2*time.Second, log); err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}

	rdb := database.NewRedis(cfg.Database.Redis)
	defer rdb.Close()
	if err := database.WaitFor(ctx, "Redis", rdb, 10, 2*time.Second, log); err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}

	engine := recommendation.NewEngine(recommendation.DefaultRules())
	profiles := profile.NewCachedStore(
		profile.NewPGRepository(pg.DB, config.GetDuration(cfg.Database.Postgres.QueryTimeout)),
		rdb.Client,
		cfg.Recommendations.ProfileCacheTTL,
		log,
	)

	group := camunda.NewWorkerGroup(zeebe.GetClient(), log)

	if wcfg := config.GetWorkerConfig(cfg, gr.TaskType); wcfg.Enabled {
		schema, err := reg.InputSchema(gr.TaskType)
		if err != nil {
			zapLog.Fatal("input schema compile failed", zap.String("taskType", gr.TaskType), zap.Error(err))
		}
		handler := gr.NewHandler(gr.ConfigFrom(wcfg, cfg.Recommendations), engine, profiles, schema, obs, log)
		group.Start(gr.TaskType, wcfg, handler)
	}

	if wcfg := config.GetWorkerConfig(cfg, rcr.TaskType); wcfg.Enabled {
		schema, err := reg.InputSchema(rcr.TaskType)
		if err != nil {
			zapLog.Fatal("input schema compile failed", zap.String("taskType", rcr.TaskType), zap.Error(err))
		}
		handler := rcr.NewHandler(rcr.ConfigFrom(wcfg), engine, schema, log)
		group.Start(rcr.TaskType, wcfg, handler)
	}

	zapLog.Info("Workers registered", zap.Strings("taskTypes", group.TaskTypes()))

	srv := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           newHealthMux(zeebe, pg, rdb, group),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	group.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

func newHealthMux(zeebe healthChecker, pg, rdb database.Pinger, group *camunda.WorkerGroup) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]string{}
		status := http.StatusOK
		record := func(name string, err error) {
			if err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				return
			}
			checks[name] = "ok"
		}
		record("zeebe", zeebe.HealthCheck(ctx))
		record("postgres", pg.Ping(ctx))
		record("redis", rdb.Ping(ctx))

		state := "ready"
		if status != http.StatusOK {
			state = "not_ready"
		}
		writeJSON(w, status, map[string]interface{}{
			"status":  state,
			"checks":  checks,
			"workers": group.TaskTypes(),
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
