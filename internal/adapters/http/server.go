// Package http exposes the ordering machine over a small JSON API for the
// delivery channel: one interact endpoint, a health check and prometheus
// metrics.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/munteanooo/telegram-restaurant-bot/internal/bot"
	"github.com/munteanooo/telegram-restaurant-bot/internal/logging"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// InteractRequest is the inbound (user, action) pair from the delivery
// channel.
type InteractRequest struct {
	UserID string `json:"user_id"`
	Action string `json:"action"`
}

const textRequestFailed = "A apărut o eroare. Vă rugăm să încercați din nou."

// Server wires the machine to HTTP.
type Server struct {
	machine *bot.Machine
	logger  *slog.Logger

	interactions *prometheus.CounterVec
	duration     prometheus.Histogram
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the machine. Metrics register on
// the given registry; pass a fresh prometheus.NewRegistry() per server.
func NewHandler(machine *bot.Machine, registry *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{
		machine: machine,
		logger:  logging.NewNop(),
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restobot_interactions_total",
			Help: "Handled user actions by action kind and outcome.",
		}, []string{"action", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "restobot_interaction_duration_seconds",
			Help:    "Latency of the interact endpoint.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	registry.MustRegister(s.interactions, s.duration)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/v1/interact", s.interact)

	return r
}

// interact handles one user action and replies with text plus the next
// available actions.
func (s *Server) interact(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.duration.Observe(time.Since(start).Seconds())
	}()

	var body InteractRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.UserID == "" || body.Action == "" {
		http.Error(w, "user_id and action are required", http.StatusBadRequest)
		return
	}

	kind := bot.ActionKind(body.Action)

	reply, err := s.machine.Handle(r.Context(), body.UserID, body.Action)
	if err != nil {
		// Fatal to this request (store or catalog failure): generic reply,
		// nothing was persisted.
		s.logger.Error("interact failed", "user_id", body.UserID, "action", body.Action, "err", err)
		s.interactions.WithLabelValues(kind, "error").Inc()
		s.writeReply(w, http.StatusInternalServerError, &domain.Reply{
			Text:    textRequestFailed,
			Buttons: nil,
		})
		return
	}

	s.interactions.WithLabelValues(kind, "ok").Inc()
	s.writeReply(w, http.StatusOK, reply)
}

func (s *Server) writeReply(w http.ResponseWriter, status int, reply *domain.Reply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		s.logger.Error("failed to encode reply", "err", err)
	}
}
