package page_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/render"
	"github.com/goliatone/go-ltixml/pkg/renderers/page"
	"github.com/goliatone/go-ltixml/pkg/testsupport"
)

func renderPage(t *testing.T, renderer *page.Renderer, resp form.Response) string {
	t.Helper()
	out, err := renderer.Render(testsupport.Context(), resp, render.RenderOptions{Action: "/"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newRenderer(t *testing.T, options ...page.Option) *page.Renderer {
	t.Helper()
	renderer, err := page.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderer_InitialLoad(t *testing.T) {
	renderer := newRenderer(t)
	html := renderPage(t, renderer, form.New().Load())

	assertContains(t, html,
		`<title>LTI XML Builder</title>`,
		`<link rel="stylesheet" href="/assets/page.css">`,
		`--surface: #ffffff;`,
		`<form method="post" action="/">`,
		`<option value="public" selected>public</option>`,
		`<input id="selection_height" type="number" name="selection_height" value="500">`,
		`<input id="oauth_compliant" type="checkbox" name="oauth_compliant">`,
		`<textarea id="custom_fields" name="custom_fields" rows="3" cols="24"></textarea>`,
		`name="placements" value="course_navigation" checked>`,
		`Does not copy launch URL query parameters to POST body when true`,
		`href="https://canvas.instructure.com/doc/api/file.tools_xml.html"`,
		`<pre class="xml"><code>&lt;?xml version=`,
	)
	if strings.Contains(html, `role="alert"`) {
		t.Fatalf("initial load must not show errors")
	}
	if strings.Contains(html, `value="editor_button" checked`) {
		t.Fatalf("only course_navigation is active on first load")
	}
}

func TestRenderer_SubmissionErrorsAndEcho(t *testing.T) {
	renderer := newRenderer(t)
	resp := form.New().Submit(testsupport.Values(
		"tool_name", `<script>alert(1)</script>`,
		"privacy_level", "name_only",
		"oauth_compliant", "on",
		"custom_fields", "not-a-pair",
		"placements", "editor_button",
	))
	html := renderPage(t, renderer, resp)

	assertContains(t, html,
		`<div class="errors" role="alert"><p>Custom fields must be entered as key=value, one per line (line 1)</p></div>`,
		`<tr class="invalid">`,
		`<p class="field-error">Custom fields must be entered as key=value, one per line (line 1)</p>`,
		`value="&lt;script&gt;alert(1)&lt;/script&gt;"`,
		`<option value="name_only" selected>name_only</option>`,
		`<input id="oauth_compliant" type="checkbox" name="oauth_compliant" checked>`,
		`>not-a-pair</textarea>`,
		`name="placements" value="editor_button" checked>`,
		`<pre class="xml error">`,
	)
	if strings.Contains(html, "<script>") {
		t.Fatalf("user input leaked unescaped:\n%s", html)
	}
	if strings.Contains(html, `value="course_navigation" checked`) {
		t.Fatalf("submitted placements replace the defaults")
	}
}

func TestRenderer_HiddenFields(t *testing.T) {
	renderer := newRenderer(t)
	out, err := renderer.Render(testsupport.Context(), form.New().Load(), render.RenderOptions{
		HiddenFields: []render.HiddenField{
			render.CSRFToken("_csrf", `tok"en`),
			render.Hidden("", "dropped"),
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out), `<input type="hidden" name="_csrf" value="tok&quot;en">`)
	if strings.Contains(string(out), "dropped") {
		t.Fatalf("blank hidden field names should be skipped")
	}
}

func TestRenderer_DarkVariant(t *testing.T) {
	renderer := newRenderer(t, page.WithTheme(page.ThemeName, page.VariantDark))

	cfg := renderer.Theme()
	if cfg.Variant != page.VariantDark {
		t.Fatalf("variant: %q", cfg.Variant)
	}
	if cfg.CSSVars["--surface"] != "#111827" {
		t.Fatalf("variant tokens not applied: %v", cfg.CSSVars)
	}
	if cfg.CSSVars["--font-family"] != "system-ui, sans-serif" {
		t.Fatalf("base tokens should remain: %v", cfg.CSSVars)
	}

	html := renderPage(t, renderer, form.New().Load())
	assertContains(t, html, `data-variant="dark"`, `--surface: #111827;`)
}

func TestRenderer_UnknownThemeOrVariant(t *testing.T) {
	if _, err := page.New(page.WithTheme("missing", "")); !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := page.New(page.WithTheme("", "sepia")); !errors.Is(err, page.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRenderer_ThemeTemplateOverride(t *testing.T) {
	custom := &theme.Manifest{
		Name:    "minimal",
		Version: "0.1.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Templates: map[string]string{
			page.PartialPage: "minimal.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/static/minimal",
			Files:  map[string]string{page.AssetStylesheet: "minimal.css"},
		},
		Variants: map[string]theme.Variant{
			"loud": {Tokens: map[string]string{"brand": "#ff0000"}},
		},
	}
	selector, err := page.NewThemeSelector(custom)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	templates := fstest.MapFS{
		"minimal.tmpl": {Data: []byte(`{{ theme.name }}|{{ theme.stylesheet }}|{{ theme.css_vars }}`)},
	}
	renderer := newRenderer(t,
		page.WithTemplatesFS(templates),
		page.WithThemeSelector(selector),
		page.WithTheme("minimal", "loud"),
	)

	got := renderPage(t, renderer, form.New().Load())
	if want := "minimal|/static/minimal/minimal.css|--brand: #ff0000;"; got != want {
		t.Fatalf("override output\nwant: %q\n got: %q", want, got)
	}
}

func TestNewThemeSelector_ResolvesThroughRegistry(t *testing.T) {
	selector, err := page.NewThemeSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	selection, err := selector.Select(page.ThemeName, page.VariantDark)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg := page.ResolveTheme(selection)
	if got := cfg.AssetURL(page.AssetStylesheet); got != "/assets/page.css" {
		t.Fatalf("stylesheet url: %q", got)
	}
	if cfg.Partials[page.PartialPage] != "page.tmpl" {
		t.Fatalf("page partial: %v", cfg.Partials)
	}
	if cfg.Tokens["surface"] != "#111827" || cfg.CSSVars["--surface"] != "#111827" {
		t.Fatalf("dark tokens not merged: %v", cfg.Tokens)
	}

	if _, err := selector.Select("missing", ""); !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestNewThemeSelector_RejectsInvalidManifest(t *testing.T) {
	var invalid theme.ValidationError
	_, err := page.NewThemeSelector(&theme.Manifest{Name: "broken"})
	if !errors.As(err, &invalid) {
		t.Fatalf("expected manifest validation error, got %v", err)
	}
}

func TestResolveTheme_NilSelection(t *testing.T) {
	cfg := page.ResolveTheme(nil)
	if cfg.Partials[page.PartialPage] != "page.tmpl" {
		t.Fatalf("fallback partial missing: %v", cfg.Partials)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, form.New().Load(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAssetsFS_ServesStylesheet(t *testing.T) {
	file, err := page.AssetsFS().Open("page.css")
	if err != nil {
		t.Fatalf("open stylesheet: %v", err)
	}
	defer file.Close()
}
