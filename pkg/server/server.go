// Package server exposes the quick-search widget over HTTP. Every websocket
// connection drives its own widget session; a one-shot search endpoint and
// the Prometheus metrics share the same router.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/internal/metrics"
	"github.com/quickfind/quickfind-terminal/pkg/facets"
	"github.com/quickfind/quickfind-terminal/pkg/models"
	"github.com/quickfind/quickfind-terminal/pkg/search"
)

const shutdownTimeout = 5 * time.Second

// Option configures a Server
type Option func(*Server)

// WithLogger sets the server logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics shares a metrics instance, e.g. with the TUI
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithCatalogPath enables hot reload of the catalog file when the settings
// ask for it
func WithCatalogPath(path string) Option {
	return func(s *Server) { s.catalogPath = path }
}

// Server serves widget sessions over websocket
type Server struct {
	settings    *models.Settings
	logger      *zap.Logger
	metrics     *metrics.Metrics
	upgrader    websocket.Upgrader
	router      *mux.Router
	catalogPath string

	mu         sync.RWMutex
	engine     *search.Engine
	sessions   map[string]*Session
	httpServer *http.Server
}

// New creates a server over catalog
func New(settings *models.Settings, catalog []models.ResultItem, opts ...Option) *Server {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	s := &Server{
		settings: settings,
		engine:   search.NewEngine(catalog),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.New(false)
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     buildOriginChecker(settings.Server.AllowedOrigins),
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebSocket)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/sessions", s.handleSessions).Methods(http.MethodGet)

	return r
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is done
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.settings.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	if s.catalogPath != "" && s.settings.Server.WatchCatalog {
		stop, err := s.watchCatalog(ctx, s.catalogPath)
		if err != nil {
			s.logger.Warn("catalog hot reload disabled", zap.String("path", s.catalogPath), zap.Error(err))
		} else {
			defer stop()
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown closes every session and stops the HTTP server
func (s *Server) Shutdown() error {
	for _, session := range s.snapshotSessions() {
		session.Close()
	}

	s.mu.RLock()
	httpServer := s.httpServer
	s.mu.RUnlock()
	if httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// SetCatalog replaces the catalog used by new sessions and by /api/search.
// Open sessions keep the catalog they started with.
func (s *Server) SetCatalog(items []models.ResultItem) {
	engine := search.NewEngine(items)
	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
}

// Catalog returns a copy of the current catalog
func (s *Server) Catalog() []models.ResultItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Items()
}

// SessionCount returns the number of open websocket sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items := s.Catalog()
	entries := make([]models.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.EntryFor(item))
	}
	writeJSON(w, http.StatusOK, models.CatalogFile{Items: entries})
}

// searchResponse is the body of /api/search
type searchResponse struct {
	Query       string           `json:"query"`
	ActiveTab   models.Tab       `json:"active_tab"`
	Counts      models.Counts    `json:"counts"`
	Items       []ItemView       `json:"items"`
	OfferedTabs []models.TabChip `json:"offered_tabs"`
}

// handleSearch runs a query without debounce against the configured facets
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	tab := models.TabAll
	if raw := r.URL.Query().Get("tab"); raw != "" {
		parsed, ok := models.ParseTab(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid tab %q", raw))
			return
		}
		tab = parsed
	}

	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()

	store := facets.NewStoreFrom(s.settings.Facets.Map())
	view, chips := engine.Compute(query, tab, store)
	s.metrics.QuerySubmitted(query)
	s.metrics.ResultsComputed(view.Counts)

	writeJSON(w, http.StatusOK, searchResponse{
		Query:       view.Query,
		ActiveTab:   view.ActiveTab,
		Counts:      view.Counts,
		Items:       itemViews(view.Items, s.settings.Search.LinkOrigin),
		OfferedTabs: chips,
	})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	sessions := s.snapshotSessions()
	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(ids),
		"sessions": ids,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s.mu.RLock()
	catalog := s.engine.Items()
	s.mu.RUnlock()

	session := newSession(conn, s, catalog)
	s.addSession(session)
	defer s.removeSession(session)

	session.Serve()
}

func (s *Server) addSession(session *Session) {
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.metrics.SessionOpened()
	s.logger.Info("session opened", zap.String("session", session.ID))
}

func (s *Server) removeSession(session *Session) {
	s.mu.Lock()
	_, ok := s.sessions[session.ID]
	delete(s.sessions, session.ID)
	s.mu.Unlock()

	if ok {
		s.metrics.SessionClosed()
		s.logger.Info("session closed", zap.String("session", session.ID))
	}
}

func (s *Server) snapshotSessions() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// buildOriginChecker accepts any origin when none are configured
func buildOriginChecker(allowed []string) func(*http.Request) bool {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if normalized, ok := normalizeOrigin(origin); ok {
			allowedSet[normalized] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		normalized, ok := normalizeOrigin(r.Header.Get("Origin"))
		if !ok {
			return false
		}
		_, ok = allowedSet[normalized]
		return ok
	}
}

func normalizeOrigin(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", false
	}
	return strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host), true
}
