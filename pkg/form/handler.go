package form

import (
	"log/slog"
	"net/url"

	"github.com/goliatone/go-ltixml/internal/logging"
	"github.com/goliatone/go-ltixml/pkg/cartridge"
	"github.com/goliatone/go-ltixml/pkg/model"
	"github.com/goliatone/go-ltixml/pkg/placements"
	"github.com/goliatone/go-ltixml/pkg/tracker"
	"github.com/goliatone/go-ltixml/pkg/validation"
)

// Response is the view model handed to every renderer.
type Response struct {
	// XML holds the generated document, or the tracker text when Errors
	// reports failures.
	XML        string                  `json:"xml"`
	Errors     tracker.Snapshot        `json:"errorTracker"`
	Placements []model.PlacementOption `json:"placements"`
	// Values echoes the form state so renderers can refill inputs.
	Values url.Values          `json:"values"`
	Config model.Configuration `json:"-"`
}

// Failed reports whether the response carries validation errors instead of a
// document.
func (r Response) Failed() bool {
	return r.Errors.HasErrors
}

// Option customises a Handler.
type Option func(*Handler)

// WithCatalog swaps the placement catalog offered by the form.
func WithCatalog(catalog *placements.Catalog) Option {
	return func(h *Handler) {
		if catalog != nil {
			h.catalog = catalog
		}
	}
}

// WithLogger sets the logger used for debug output about rejected
// submissions.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Handler produces Responses. It holds only read-only collaborators and is
// safe for concurrent use.
type Handler struct {
	catalog *placements.Catalog
	logger  *slog.Logger
}

// New constructs a Handler backed by the embedded placement catalog unless
// overridden.
func New(options ...Option) *Handler {
	h := &Handler{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.catalog == nil {
		h.catalog = placements.Default()
	}
	if h.logger == nil {
		h.logger = logging.Discard()
	}
	return h
}

// Load returns the initial, empty form: the document for the zero
// configuration, a fresh tracker, and the catalog's default placements.
func (h *Handler) Load() Response {
	return Response{
		XML:        cartridge.Build(model.Configuration{}),
		Errors:     tracker.New(model.FieldNames()...).Snapshot(),
		Placements: h.catalog.Defaults(),
		Values:     initialValues(),
	}
}

// Submit processes one form submission.
func (h *Handler) Submit(values url.Values) Response {
	cfg := model.FromValues(values)
	return h.respond(cfg)
}

// Evaluate processes a configuration that did not come from a form post, such
// as CLI flags or terminal prompts.
func (h *Handler) Evaluate(cfg model.Configuration) Response {
	return h.respond(model.FromValues(cfg.Values()))
}

func (h *Handler) respond(cfg model.Configuration) Response {
	results := validation.Configuration(cfg)
	errs := tracker.New(model.FieldNames()...).Fold(results...)

	resp := Response{
		Errors:     errs.Snapshot(),
		Placements: h.catalog.Select(cfg.PlacementKeys()),
		Values:     cfg.Values(),
		Config:     cfg,
	}
	if errs.HasErrors() {
		h.logger.Debug("form: submission rejected", "errors", errs.Text())
		resp.XML = errs.Text()
		return resp
	}
	resp.XML = cartridge.Build(cfg)
	return resp
}

func initialValues() url.Values {
	return model.Configuration{
		PrivacyLevel:    model.PrivacyPublic,
		Visibility:      model.VisibilityPublic,
		SelectionHeight: model.DefaultSelectionSize,
		SelectionWidth:  model.DefaultSelectionSize,
	}.Values()
}
