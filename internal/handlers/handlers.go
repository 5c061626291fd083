// Package handlers is the thin HTTP façade over the scan engine. It does
// routing and encoding only; every decision lives in the pipeline.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/grandrichlife727-design/edgebet-backend/internal/repository"
	"github.com/grandrichlife727-design/edgebet-backend/internal/scanner"
)

// Handler serves the pick and arbitrage endpoints.
type Handler struct {
	scanner *scanner.Scanner
	store   repository.PickStore
	logger  zerolog.Logger
}

// NewHandler builds a handler.
func NewHandler(scan *scanner.Scanner, store repository.PickStore, logger zerolog.Logger) *Handler {
	return &Handler{
		scanner: scan,
		store:   store,
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

// Router assembles the chi router with the standard middleware stack.
func Router(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", h.RunScan)
		r.Get("/scan", h.LatestScan)
		r.Get("/picks", h.GetPicks)
		r.Get("/arbitrage", h.GetArbitrage)
	})

	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RunScan triggers a fresh pipeline pass.
func (h *Handler) RunScan(w http.ResponseWriter, r *http.Request) {
	result, err := h.scanner.Scan(r.Context())
	if err != nil {
		h.respondScanError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// LatestScan serves the cached scan, running a fresh one on a cold cache.
func (h *Handler) LatestScan(w http.ResponseWriter, r *http.Request) {
	result, err := h.scanner.Latest(r.Context())
	if err != nil {
		h.respondScanError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetPicks serves pick history, optionally filtered by sport.
func (h *Handler) GetPicks(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 25)
	if limit > 200 {
		limit = 200
	}

	var err error
	var picks interface{}
	if sport := r.URL.Query().Get("sport"); sport != "" {
		picks, err = h.store.PicksBySport(r.Context(), sport, limit)
	} else {
		picks, err = h.store.LatestPicks(r.Context(), limit)
	}

	if err != nil {
		h.logger.Error().Err(err).Msg("loading pick history")
		respondError(w, http.StatusInternalServerError, "failed to load picks")
		return
	}

	respondJSON(w, http.StatusOK, picks)
}

// GetArbitrage serves the arbitrage list from the latest scan.
func (h *Handler) GetArbitrage(w http.ResponseWriter, r *http.Request) {
	result, err := h.scanner.Latest(r.Context())
	if err != nil {
		h.respondScanError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result.Arbitrage)
}

func (h *Handler) respondScanError(w http.ResponseWriter, err error) {
	if errors.Is(err, scanner.ErrNoData) {
		respondError(w, http.StatusServiceUnavailable, "no odds data available")
		return
	}

	h.logger.Error().Err(err).Msg("scan failed")
	respondError(w, http.StatusInternalServerError, "scan failed")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func parseIntParam(r *http.Request, name string, defaultValue int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}
