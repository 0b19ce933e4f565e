package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
	"github.com/goliatone/go-ltixml/pkg/render"
)

const (
	defaultGrace   = 5 * time.Second
	defaultMaxBody = 1 << 20
)

// Option configures a Server.
type Option func(*Server)

// WithHandler evaluates submissions through handler.
func WithHandler(handler *form.Handler) Option {
	return func(s *Server) {
		if handler != nil {
			s.handler = handler
		}
	}
}

// WithRegistry resolves ?format= against registry. The registry must contain
// the default format.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithDefaultFormat sets the renderer used by / when no format is requested.
func WithDefaultFormat(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.defaultFormat = name
		}
	}
}

// WithFormSpec serves spec at /openapi.yaml.
func WithFormSpec(spec *formspec.Form) Option {
	return func(s *Server) {
		if spec != nil {
			s.form = spec
		}
	}
}

// WithAssets serves files under /assets/.
func WithAssets(assets fs.FS) Option {
	return func(s *Server) {
		if assets != nil {
			s.assets = assets
		}
	}
}

// WithLogger sets the access and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownGrace bounds how long Serve waits for in-flight requests.
func WithShutdownGrace(grace time.Duration) Option {
	return func(s *Server) {
		if grace > 0 {
			s.grace = grace
		}
	}
}

// WithMaxBodyBytes limits the size of submitted forms.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithRequestID overrides the request id generator.
func WithRequestID(next func() string) Option {
	return func(s *Server) {
		if next != nil {
			s.requestID = next
		}
	}
}

// WithHiddenFields adds per-request hidden inputs to the HTML form, such as
// a CSRF token issued by the embedding application.
func WithHiddenFields(fields func(*http.Request) []render.HiddenField) Option {
	return func(s *Server) {
		if fields != nil {
			s.hiddenFields = fields
		}
	}
}
