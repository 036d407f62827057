// Package preview serves rendered fields over HTTP so presets and default
// values can be inspected in a browser.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/preset"
	"github.com/goliatone/go-formfield/pkg/widget"
)

const shutdownTimeout = 5 * time.Second

// Server renders fields of one form model.
type Server struct {
	logger     *slog.Logger
	presets    *preset.Registry
	form       model.FormModel
	translator model.Translator
	registry   *prometheus.Registry
	metrics    *metrics
	router     chi.Router
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithPresets(presets *preset.Registry) Option {
	return func(s *Server) {
		if presets != nil {
			s.presets = presets
		}
	}
}

func WithForm(form model.FormModel) Option {
	return func(s *Server) {
		s.form = form
	}
}

// WithTranslator enables the "locale" query parameter, which localizes the
// labels, hints and placeholders of a *model.Form.
func WithTranslator(t model.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

// WithMetricsRegistry registers the server metrics with registry and serves
// it on /metrics. A fresh registry is used by default.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// New builds a Server. Without WithPresets the built-in presets are served.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   slog.Default(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.presets == nil {
		s.presets = preset.NewDefaultRegistry()
	}
	s.metrics = newMetrics(s.registry)
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview: serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/fields/{control}/{attribute}", s.handleField)
	r.Get("/presets", s.handlePresets)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	control := chi.URLParam(r, "control")
	attribute := chi.URLParam(r, "attribute")

	start := time.Now()
	query := r.URL.Query()
	markup, err := s.renderField(control, attribute, query.Get("preset"), query.Get("locale"))
	s.metrics.observe(control, time.Since(start).Seconds(), err)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("render field", "control", control, "attribute", attribute, "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(markup))
}

func (s *Server) renderField(control, attribute, presetName, locale string) (string, error) {
	f := field.New()
	if presetName != "" {
		p, err := s.presets.Get(presetName)
		if err != nil {
			return "", err
		}
		if f, err = p.NewField(); err != nil {
			return "", err
		}
	}
	f, err := f.Widget(control, s.formFor(locale), attribute)
	if err != nil {
		return "", err
	}
	return f.Render()
}

func (s *Server) formFor(locale string) model.FormModel {
	form, ok := s.form.(*model.Form)
	if !ok || form == nil || locale == "" || s.translator == nil {
		return s.form
	}
	return model.LocalizeForm(form, locale, s.translator, nil)
}

type presetSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	names := s.presets.Names()
	out := make([]presetSummary, 0, len(names))
	for _, name := range names {
		p, err := s.presets.Get(name)
		if err != nil {
			continue
		}
		out = append(out, presetSummary{Name: p.Name, Description: p.Description})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Error("encode presets", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, field.ErrUnknownControl),
		errors.Is(err, model.ErrUnknownAttribute),
		errors.Is(err, preset.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, widget.ErrFormModelNotSet):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
