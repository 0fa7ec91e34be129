package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/viewer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// ViewPrefix is the URL prefix of server-rendered document pages.
const ViewPrefix = "/view/"

// Config holds the collaborators and settings of a Server.
type Config struct {
	Addr     string
	Trees    mdview.TreeService
	Contents mdview.ContentService
	Markdown mdview.MarkdownRenderer
	Math     mdview.MathRenderer

	// BaseURL is prefixed to the locations listed in the sitemap.
	BaseURL string

	// AllowAllOrigins disables the localhost-only CORS policy.
	AllowAllOrigins bool

	// RateLimit caps requests per second per client. Zero disables it.
	RateLimit float64
	RateBurst int

	Logger *slog.Logger
}

// Server serves the tree and content API and the rendered viewer pages.
type Server struct {
	cfg    Config
	logger *slog.Logger
	router chi.Router
	server *http.Server
	ln     net.Listener
}

// NewServer returns a new Server for cfg.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{cfg: cfg, logger: logger}
	s.router = s.buildRouter()
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.cfg.RateLimit > 0 {
		r.Use(NewClientLimiter(s.cfg.RateLimit, s.cfg.RateBurst).Middleware)
	}

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/tree", s.handleTree)
	r.Get("/content/*", s.handleContent)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/", s.handlePage)
	r.Get(ViewPrefix+"*", s.handlePage)
	r.Post("/theme", s.handleToggleTheme)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(viewer.Static)))

	return r
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on the configured address. Call Serve to accept
// connections.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// Serve accepts connections on the listener created by Open. It blocks
// until Close is called, which is not an error.
func (s *Server) Serve() error {
	if s.ln == nil {
		return mdview.Errorf(mdview.EINTERNAL, "server is not open")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the address the server listens on, or the configured
// address before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.cfg.Addr
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if s.ln != nil {
		_ = s.ln.Close()
	}
	return err
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.cfg.Trees.FetchTree(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if nodes == nil {
		nodes = []*mdview.TreeNode{}
	}
	writeJSON(w, http.StatusOK, nodes)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.cfg.Contents.FetchContent(r.Context(), path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64String(doc.Content), 16) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handlePage renders the viewer server-side. Under ViewPrefix the
// document named by the rest of the URL is opened.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	app, err := s.newApp(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := app.Start(ctx); err != nil {
		s.logger.Warn("page rendered without navigation", "err", err)
	}

	status := http.StatusOK
	path, err := wildcardPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if path != "" {
		if err := app.Open(ctx, path); err != nil {
			status = errorStatus(err)
		}
	}

	var buf bytes.Buffer
	if err := app.Render(&buf); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	app, err := s.newApp(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	app.Theme.Init(ctx)
	theme, err := app.Theme.Toggle(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("theme toggled", "theme", theme)
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

func (s *Server) newApp(w http.ResponseWriter, r *http.Request) (*viewer.App, error) {
	return viewer.NewPage(viewer.Config{
		Storage:    NewCookieStorage(w, r),
		Trees:      s.cfg.Trees,
		Contents:   s.cfg.Contents,
		Markdown:   s.cfg.Markdown,
		Math:       s.cfg.Math,
		LinkPrefix: ViewPrefix,
		Logger:     s.logger,
	})
}

// wildcardPath returns the decoded remainder of the URL matched by a
// trailing wildcard route. chi matches on the escaped path only when the
// request carries one, so only then is the parameter still escaped.
func wildcardPath(r *http.Request) (string, error) {
	path := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return path, nil
	}
	path, err := url.PathUnescape(path)
	if err != nil {
		return "", mdview.Errorf(mdview.EINVALID, "Invalid path")
	}
	return path, nil
}

// redirectTarget returns the same-host page the request came from, or "/".
func redirectTarget(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) || u.Path == "" {
		return "/"
	}
	target := u.EscapedPath()
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}

// errorResponse is the JSON body of an error response.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Detail: mdview.ErrorMessage(err)})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch mdview.ErrorCode(err) {
	case mdview.ENOTFOUND:
		return http.StatusNotFound
	case mdview.EFORBIDDEN:
		return http.StatusForbidden
	case mdview.EINVALID:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request through logger.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
