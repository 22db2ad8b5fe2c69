package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dannyrandall/moviecatalog/internal/movies"
	"github.com/dannyrandall/moviecatalog/internal/otel"
	"go.opentelemetry.io/otel/trace"
)

const storeTimeout = 10 * time.Second

// Movies serves the read-only catalog API. Every route names its projection
// explicitly; nothing here ever encodes a raw Movie record.
type Movies struct {
	Store movies.Store
}

// List handles GET /movies with the full projection.
func (h *Movies) List(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	ms, err := h.Store.FindAll(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, log, "find all movies: %s", err)
		return
	}

	log.Printf("Listing %d movies", len(ms))
	writeJSON(log, w, http.StatusOK, movies.FullAll(ms))
}

// ListSummaries handles GET /movie_summaries with the summary projection.
func (h *Movies) ListSummaries(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	ms, err := h.Store.FindAll(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, log, "find all movies: %s", err)
		return
	}

	log.Printf("Summarizing %d movies", len(ms))
	writeJSON(log, w, http.StatusOK, movies.SummarizeAll(ms))
}

// Get handles GET /movies/{id} and GET /movies/{id}/summary, choosing the
// projection by the path suffix.
func (h *Movies) Get(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/movies/"), "/")
	idStr, rest, _ := strings.Cut(path, "/")

	var project func(movies.Movie) any
	switch rest {
	case "":
		project = func(m movies.Movie) any { return movies.Full(m) }
	case "summary":
		project = func(m movies.Movie) any { return movies.Summarize(m) }
	default:
		http.NotFound(w, r)
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		// A malformed id can't name a movie, so it reads as absent.
		movieNotFound(log, w, idStr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	log.Printf("Getting movie %q", idStr)

	m, err := h.Store.FindByID(ctx, id)
	switch {
	case errors.Is(err, movies.ErrNotFound):
		movieNotFound(log, w, idStr)
		return
	case err != nil:
		httpError(w, http.StatusInternalServerError, log, "find movie %d: %s", id, err)
		return
	}

	log.Printf("Got movie %d", m.ID)
	writeJSON(log, w, http.StatusOK, project(m))
}

type errorResponse struct {
	Error string `json:"error"`
}

func movieNotFound(log *log.Logger, w http.ResponseWriter, id string) {
	log.Printf("no movie found with id %q", id)
	writeJSON(log, w, http.StatusNotFound, errorResponse{Error: "Movie not found"})
}

func writeJSON(log *log.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %s", err)
	}
}

func httpError(w http.ResponseWriter, code int, log *log.Logger, format string, a ...any) {
	log.Printf("returning error: %s", fmt.Sprintf(format, a...))
	http.Error(w, http.StatusText(code), code)
}

// requestLogger prefixes log lines with the request's trace id in X-Ray form
// so they can be joined with the trace in the console. Requests without a
// recording span share the default logger.
func requestLogger(r *http.Request) *log.Logger {
	span := trace.SpanFromContext(r.Context())
	if !span.SpanContext().HasTraceID() {
		return log.Default()
	}

	return log.New(os.Stderr, fmt.Sprintf("AWS-XRAY-TRACE-ID: %s - ", otel.XRayTraceID(span)), log.LstdFlags|log.Lmsgprefix)
}
