package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"bouncepro-reminder/config"
	"bouncepro-reminder/infras/postgres"
	"bouncepro-reminder/internal/scheduler"
	"bouncepro-reminder/shared"
	"bouncepro-reminder/shared/cache"
	"bouncepro-reminder/shared/constant"
	"bouncepro-reminder/shared/timezone"
)

const readyCheckTimeout = 2 * time.Second

// HTTP is the operational surface of the reminder service: liveness,
// readiness, and the stats of the last completed run. There is no CRUD
// surface here; bookings are owned elsewhere.
type HTTP struct {
	cfg    *config.Config
	sched  *scheduler.Scheduler
	db     *postgres.Connection
	redis  *goRedis.Client
	cache  cache.RedisCache
	server *http.Server
}

func New(cfg *config.Config, sched *scheduler.Scheduler, db *postgres.Connection, redis *goRedis.Client, c cache.RedisCache) *HTTP {
	return &HTTP{
		cfg:   cfg,
		sched: sched,
		db:    db,
		redis: redis,
		cache: c,
	}
}

// Serve blocks on the listener until Shutdown is called.
func (h *HTTP) Serve() {
	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.cfg.Server.Host, h.cfg.Server.Port),
		Handler:           h.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("port", h.cfg.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Shutdown drains open connections within the configured grace period.
func (h *HTTP) Shutdown() {
	if h.server == nil {
		return
	}

	grace := time.Duration(h.cfg.Server.Shutdown.GracePeriodSeconds) * time.Second
	if grace <= 0 {
		grace = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

func (h *HTTP) routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.handleHealth)
	router.Get("/readyz", h.handleReady)
	router.Get("/stats", h.handleStats)
	router.Delete("/cache/timezones", h.handleFlushTimezones)

	return router
}

func (h *HTTP) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTP) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
	defer cancel()

	if err := h.db.Read.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("readiness check: database unreachable")
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unreachable"})

		return
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("readiness check: redis unreachable")
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "redis unreachable"})

		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HTTP) handleStats(w http.ResponseWriter, _ *http.Request) {
	state := "stopped"
	if h.sched.State() == scheduler.StateRunning {
		state = "running"
	}

	body := map[string]any{
		"scheduler":   state,
		"server_time": timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if stats, ok := h.sched.LastRun(); ok {
		body["last_run"] = stats
		body["last_run_at"] = timezone.Format(stats.FinishedAt, constant.DateFormat)
	}

	respondJSON(w, http.StatusOK, body)
}

// handleFlushTimezones drops every cached address-to-timezone resolution,
// for when a tenant reports reminders rendered in the wrong zone.
func (h *HTTP) handleFlushTimezones(w http.ResponseWriter, r *http.Request) {
	shared.InvalidateCaches(r.Context(), h.cache, constant.CacheTimezonePrefix)

	respondJSON(w, http.StatusOK, map[string]string{"status": "flushed"})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
