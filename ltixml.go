package ltixml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/goliatone/go-ltixml/pkg/cartridge"
	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/model"
	"github.com/goliatone/go-ltixml/pkg/placements"
	"github.com/goliatone/go-ltixml/pkg/render"
	"github.com/goliatone/go-ltixml/pkg/renderers/page"
)

// Configuration is the tool configuration collected by the form.
type Configuration = model.Configuration

// Placement is one Canvas placement offered by the form.
type Placement = model.Placement

// Response is the view model produced for the initial form and submissions.
type Response = form.Response

// PrivacyLevel controls which user data Canvas sends to the tool.
type PrivacyLevel = model.PrivacyLevel

// Visibility controls who sees the tool in Canvas.
type Visibility = model.Visibility

// Privacy levels and visibilities accepted by Canvas.
const (
	PrivacyPublic    = model.PrivacyPublic
	PrivacyNameOnly  = model.PrivacyNameOnly
	PrivacyAnonymous = model.PrivacyAnonymous

	VisibilityPublic  = model.VisibilityPublic
	VisibilityMembers = model.VisibilityMembers
	VisibilityAdmins  = model.VisibilityAdmins
)

// ErrInvalidConfiguration wraps the tracker text when BuildXML rejects a
// configuration.
var ErrInvalidConfiguration = errors.New("ltixml: invalid configuration")

// NewHandler exposes the form handler constructor from the top-level module.
func NewHandler(options ...form.Option) *form.Handler {
	return form.New(options...)
}

// BuildXML validates cfg and renders the descriptor. Validation failures are
// returned as ErrInvalidConfiguration carrying the tracker text.
func BuildXML(cfg Configuration) (string, error) {
	resp := form.New().Evaluate(cfg)
	if resp.Failed() {
		return "", fmt.Errorf("%w: %s", ErrInvalidConfiguration, resp.Errors.Text)
	}
	return resp.XML, nil
}

// MustBuildXML renders cfg without validation. Malformed custom field lines
// are skipped.
func MustBuildXML(cfg Configuration) string {
	return cartridge.Build(cfg)
}

// Submit evaluates submitted form values.
func Submit(values url.Values) Response {
	return form.New().Submit(values)
}

// Render evaluates values and renders the response with the named format
// ("html", "xml" or "json").
func Render(ctx context.Context, values url.Values, format string) ([]byte, error) {
	var renderer render.Renderer
	switch format {
	case render.FormatXML:
		renderer = render.XML()
	case render.FormatJSON:
		renderer = render.JSON()
	case page.Name:
		html, err := page.New()
		if err != nil {
			return nil, err
		}
		renderer = html
	default:
		return nil, fmt.Errorf("ltixml: unknown format %q", format)
	}
	return renderer.Render(ctx, Submit(values), render.RenderOptions{})
}

// Placements lists the bundled Canvas placements in display order.
func Placements() []Placement {
	return placements.Default().Placements()
}

// EmbeddedTemplates exposes the page templates so callers can reuse or
// extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// AssetsFS exposes the page stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(ltixml.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return page.AssetsFS()
}
