// Package http serves read-only hierarchy queries over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/observability"
	"github.com/aretw0/lineage/pkg/render"
	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultCacheSize = 256

// Server answers hierarchy queries against the current hierarchy.
// The hierarchy can be swapped at runtime with SetHierarchy.
type Server struct {
	current  atomic.Pointer[hierarchy.Hierarchy]
	cache    *lru.Cache[string, string]
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	version  string
}

// Option configures a Server.
type Option func(*serverConfig)

type serverConfig struct {
	cacheSize int
	metrics   *observability.Metrics
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
	version   string
}

// WithCacheSize bounds the number of cached renders.
func WithCacheSize(n int) Option {
	return func(c *serverConfig) {
		c.cacheSize = n
	}
}

// WithMetrics records query metrics in m and exposes g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(c *serverConfig) {
		c.metrics = m
		c.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(c *serverConfig) {
		c.version = v
	}
}

// NewServer creates a Server for h.
func NewServer(h *hierarchy.Hierarchy, opts ...Option) (*Server, error) {
	cfg := serverConfig{cacheSize: defaultCacheSize, version: "dev"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	cache, err := lru.New[string, string](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	s := &Server{
		cache:    cache,
		metrics:  cfg.metrics,
		gatherer: cfg.gatherer,
		logger:   cfg.logger,
		version:  cfg.version,
	}
	s.current.Store(h)
	return s, nil
}

// SetHierarchy replaces the served hierarchy and drops cached renders.
func (s *Server) SetHierarchy(h *hierarchy.Hierarchy) {
	s.current.Store(h)
	s.cache.Purge()
	s.logger.Info("hierarchy swapped", "nodes", h.Len(), "fingerprint", h.Fingerprint())
}

// Hierarchy returns the hierarchy currently served.
func (s *Server) Hierarchy() *hierarchy.Hierarchy {
	return s.current.Load()
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/roots", s.getRoots)
	r.Get("/leaves", s.getLeaves)
	r.Route("/nodes/{name}", func(r chi.Router) {
		r.Get("/", s.getNode)
		r.Get("/ancestors", s.getAncestors)
		r.Get("/descendants", s.getDescendants)
		r.Get("/realizes", s.getRealizes)
	})
	r.Get("/render", s.getRender)
	if s.gatherer != nil {
		r.Handle("/metrics", observability.Handler(s.gatherer))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NodeView is the JSON shape of a single node.
type NodeView struct {
	Name     string   `json:"name"`
	Link     string   `json:"link,omitempty"`
	Parent   string   `json:"parent,omitempty"`
	Depth    int      `json:"depth"`
	Children []string `json:"children"`
	Realizes []string `json:"realizes"`
	Leaf     bool     `json:"leaf"`
}

// RealizationsView is the JSON shape of /nodes/{name}/realizes.
type RealizationsView struct {
	Name       string   `json:"name"`
	Realizes   []string `json:"realizes"`
	RealizedBy []string `json:"realized_by"`
}

// ErrorView is the JSON shape of every error response.
type ErrorView struct {
	Error       string   `json:"error"`
	Name        string   `json:"name,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":         "lineage-http",
		"version":     s.version,
		"nodes":       h.Len(),
		"roots":       len(h.Roots()),
		"fingerprint": h.Fingerprint(),
	})
}

func (s *Server) getRoots(w http.ResponseWriter, r *http.Request) {
	s.metrics.ObserveQuery("roots", nil)
	s.writeJSON(w, http.StatusOK, s.Hierarchy().Roots())
}

func (s *Server) getLeaves(w http.ResponseWriter, r *http.Request) {
	s.metrics.ObserveQuery("leaves", nil)
	s.writeJSON(w, http.StatusOK, s.Hierarchy().Leaves())
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	name := nameParam(r)

	view, err := nodeView(h, name)
	s.metrics.ObserveQuery("node", err)
	if err != nil {
		s.writeError(w, h, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) getAncestors(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	ancestors, err := h.AncestorsOf(nameParam(r))
	s.metrics.ObserveQuery("ancestors", err)
	if err != nil {
		s.writeError(w, h, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ancestors)
}

func (s *Server) getDescendants(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	descendants, err := h.Descendants(nameParam(r))
	s.metrics.ObserveQuery("descendants", err)
	if err != nil {
		s.writeError(w, h, err)
		return
	}
	s.writeJSON(w, http.StatusOK, descendants)
}

func (s *Server) getRealizes(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	name := nameParam(r)

	realizes, err := h.Realizes(name)
	var realizedBy []string
	if err == nil {
		realizedBy, err = h.RealizedBy(name)
	}
	s.metrics.ObserveQuery("realizes", err)
	if err != nil {
		s.writeError(w, h, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RealizationsView{Name: name, Realizes: realizes, RealizedBy: realizedBy})
}

func (s *Server) getRender(w http.ResponseWriter, r *http.Request) {
	h := s.Hierarchy()
	query := r.URL.Query()

	format, err := render.ParseFormat(query.Get("format"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorView{Error: err.Error()})
		return
	}
	focus := query.Get("focus")

	etag := fmt.Sprintf("%q", h.Fingerprint()+"-"+string(format)+"-"+url.QueryEscape(focus))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	key := h.Fingerprint() + "\x00" + string(format) + "\x00" + focus
	body, cached := s.cache.Get(key)
	if !cached {
		body, err = render.Render(h, format, focus)
		if err != nil {
			s.writeError(w, h, err)
			return
		}
		s.cache.Add(key, body)
	}
	s.metrics.ObserveRender(string(format), cached)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.Warn("render response write failed", "error", err)
	}
}

func nodeView(h *hierarchy.Hierarchy, name string) (NodeView, error) {
	depth, err := h.DepthOf(name)
	if err != nil {
		return NodeView{}, err
	}
	n, _ := h.Node(name)
	parent, _ := h.Parent(name)
	children, _ := h.ChildrenOf(name)
	realizes, _ := h.Realizes(name)
	return NodeView{
		Name:     name,
		Link:     n.Link,
		Parent:   parent,
		Depth:    depth,
		Children: children,
		Realizes: realizes,
		Leaf:     n.IsLeaf(),
	}, nil
}

func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func (s *Server) writeError(w http.ResponseWriter, h *hierarchy.Hierarchy, err error) {
	view := ErrorView{Error: err.Error()}
	if name, ok := domain.OffendingName(err); ok {
		view.Name = name
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownNode):
		status = http.StatusNotFound
		view.Suggestions = h.Suggest(view.Name, 3)
	case errors.Is(err, render.ErrUnknownFormat):
		status = http.StatusBadRequest
	default:
		s.logger.Error("query failed", "error", err)
	}
	s.writeJSON(w, status, view)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", "error", err)
	}
}
