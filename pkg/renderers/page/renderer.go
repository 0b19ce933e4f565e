package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
	"github.com/goliatone/go-ltixml/pkg/render"
	rendertemplate "github.com/goliatone/go-ltixml/pkg/render/template"
	gotemplate "github.com/goliatone/go-ltixml/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	form             *formspec.Form
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithFormSpec replaces the embedded form definition.
func WithFormSpec(spec *formspec.Form) Option {
	return func(cfg *config) {
		if spec != nil {
			cfg.form = spec
		}
	}
}

// WithThemeSelector resolves themes through selector instead of the bundled
// manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
	}
}

// WithTheme picks the theme and variant resolved at construction.
func WithTheme(name, variant string) Option {
	return func(cfg *config) {
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer turns a form.Response into the configuration page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	form      *formspec.Form
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.form == nil {
		cfg.form = formspec.Default()
	}
	if cfg.selector == nil {
		selector, err := NewThemeSelector()
		if err != nil {
			return nil, err
		}
		cfg.selector = selector
	}

	name := strings.TrimSpace(cfg.themeName)
	if name == "" {
		name = ThemeName
	}
	selection, err := cfg.selector.Select(name, strings.TrimSpace(cfg.themeVariant))
	if err != nil {
		return nil, fmt.Errorf("page renderer: select theme: %w", err)
	}
	if err := checkVariant(selection); err != nil {
		return nil, err
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		form:      cfg.form,
		theme:     ResolveTheme(selection),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Theme returns the renderer configuration resolved at construction.
func (r *Renderer) Theme() *theme.RendererConfig {
	return r.theme
}

func (r *Renderer) Render(ctx context.Context, resp form.Response, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}

	themeCfg := r.theme
	if options.Theme != nil {
		themeCfg = options.Theme
	}
	name := themeCfg.Partials[PartialPage]
	if name == "" {
		name = defaultPartials()[PartialPage]
	}

	result, err := r.templates.RenderTemplate(name, buildView(r.form, resp, options, themeCfg))
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}
