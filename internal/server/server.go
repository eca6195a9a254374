// Package server exposes the gloss renderer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/render        body: {"source":"...","options":{"key":"value"}}
//	GET  /api/abbreviations
//	GET  /api/healthz
package server

import (
	"encoding/json"
	"net/http"

	"interlinear/internal/cache"
	"interlinear/internal/gloss"
	"interlinear/internal/parser"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Server handles HTTP rendering requests against a base option set.
type Server struct {
	base  *gloss.Options
	cache *cache.RenderCache
}

// New creates a server. renderCache may be nil to disable caching.
func New(base *gloss.Options, renderCache *cache.RenderCache) *Server {
	if base == nil {
		base = gloss.DefaultOptions()
	}
	if renderCache == nil {
		renderCache = cache.New(nil)
	}
	return &Server{base: base, cache: renderCache}
}

// Handler returns the full HTTP handler, CORS included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/render", s.handleRender)
	mux.HandleFunc("GET /api/abbreviations", s.handleAbbreviations)
	mux.HandleFunc("GET /api/healthz", s.handleHealthz)
	return cors.Default().Handler(mux)
}

type renderRequest struct {
	Source  string            `json:"source"`
	Options map[string]string `json:"options,omitempty"`
}

type renderResponse struct {
	HTML   string `json:"html"`
	Cached bool   `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	opts := s.base.Apply(parser.BuildOverrides(req.Options))
	key := cache.Key(req.Source, opts.Fingerprint())

	if html, ok := s.cache.Get(r.Context(), key); ok {
		writeJSON(w, http.StatusOK, renderResponse{HTML: html, Cached: true})
		return
	}

	html := gloss.RenderHTML(req.Source, opts)
	if err := s.cache.Set(r.Context(), key, html); err != nil {
		log.Warn().Err(err).Msg("Failed to cache rendering")
	}

	writeJSON(w, http.StatusOK, renderResponse{HTML: html})
}

func (s *Server) handleAbbreviations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.base.Abbreviations)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
