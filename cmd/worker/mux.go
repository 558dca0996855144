package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	broker  BrokerStatus
	ai      AIStatus
	started time.Time
}

func NewHandler(
	broker BrokerStatus,
	ai AIStatus,
) *Handler {
	return &Handler{
		broker:  broker,
		ai:      ai,
		started: time.Now(),
	}
}

func NewRouter(h *Handler, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/status", h.Status).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"redis":     h.broker.Status(),
		"aiService": h.ai.Status(),
	})
}

// Health checks the AI service directly, so it reflects the dependency rather than the breaker.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	res, err := h.ai.Health(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"error":  err.Error(),
		})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"aiService": res,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}
