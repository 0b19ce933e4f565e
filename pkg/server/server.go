package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-ltixml/internal/logging"
	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
	"github.com/goliatone/go-ltixml/pkg/render"
	"github.com/goliatone/go-ltixml/pkg/renderers/page"
)

// Server serves the configuration form.
type Server struct {
	handler       *form.Handler
	registry      *render.Registry
	defaultFormat string
	form          *formspec.Form
	assets        fs.FS
	logger        *slog.Logger
	grace         time.Duration
	maxBody       int64
	requestID     func() string
	hiddenFields  func(*http.Request) []render.HiddenField
}

// New builds a Server. Without WithRegistry the html, xml and json renderers
// are registered with the bundled theme.
func New(options ...Option) (*Server, error) {
	s := &Server{
		defaultFormat: page.Name,
		grace:         defaultGrace,
		maxBody:       defaultMaxBody,
		requestID:     newRequestID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.form == nil {
		s.form = formspec.Default()
	}
	if s.handler == nil {
		s.handler = form.New(form.WithLogger(s.logger))
	}
	if s.assets == nil {
		s.assets = page.AssetsFS()
	}
	if s.registry == nil {
		registry, err := DefaultRegistry(page.WithFormSpec(s.form))
		if err != nil {
			return nil, err
		}
		s.registry = registry
	}
	if !s.registry.Has(s.defaultFormat) {
		return nil, fmt.Errorf("server: default format %q is not registered", s.defaultFormat)
	}
	return s, nil
}

// DefaultRegistry registers the page, XML and JSON renderers.
func DefaultRegistry(pageOptions ...page.Option) (*render.Registry, error) {
	html, err := page.New(pageOptions...)
	if err != nil {
		return nil, fmt.Errorf("server: page renderer: %w", err)
	}
	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{html, render.XML(), render.JSON()} {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
	}
	return registry, nil
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("/xml", s.handleXML)
	mux.HandleFunc("GET /openapi.yaml", s.handleDocument)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(s.assets)))
	return s.logRequests(mux)
}

// Serve listens on addr until ctx is cancelled, then drains in-flight
// requests for the configured grace period.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.ServeListener(ctx, listener)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", "addr", listener.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()

	s.logger.Info("shutting down", "grace", s.grace.String())
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.handler.Load(), s.defaultFormat)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	values, err := s.formValues(w, r)
	if err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}
	s.respond(w, r, s.handler.Submit(values), s.defaultFormat)
}

// handleXML answers with the document alone. GET evaluates query parameters
// when any form field is present and returns the initial document otherwise.
func (s *Server) handleXML(w http.ResponseWriter, r *http.Request) {
	var resp form.Response
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		query := r.URL.Query()
		query.Del("format")
		if len(query) == 0 {
			resp = s.handler.Load()
		} else {
			resp = s.handler.Submit(query)
		}
	case http.MethodPost:
		values, err := s.formValues(w, r)
		if err != nil {
			http.Error(w, "invalid form payload", http.StatusBadRequest)
			return
		}
		resp = s.handler.Submit(values)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.respond(w, r, resp, render.FormatXML)
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	if _, err := w.Write(s.form.Document()); err != nil {
		s.logger.Error("write form definition", "error", err)
	}
}

// respond renders resp with the requested format. Non page formats answer
// 422 when validation failed; the XML renderer then carries plain text.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, resp form.Response, fallback string) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = fallback
	}

	renderer, err := s.registry.Get(format)
	if err != nil {
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusNotFound)
		return
	}

	options := render.RenderOptions{Action: r.URL.Path}
	if s.hiddenFields != nil {
		options.HiddenFields = s.hiddenFields(r)
	}

	output, err := renderer.Render(r.Context(), resp, options)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render response", "format", format, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	contentType := renderer.ContentType()
	if resp.Failed() && format != page.Name {
		status = http.StatusUnprocessableEntity
		if format == render.FormatXML {
			contentType = "text/plain; charset=utf-8"
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(output); err != nil {
		s.logger.ErrorContext(r.Context(), "write response", "error", err)
	}
}

func (s *Server) formValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

	mediaType := r.Header.Get("Content-Type")
	if strings.HasPrefix(mediaType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxBody); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}
