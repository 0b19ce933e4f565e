package page

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Bundled theme identifiers.
const (
	ThemeName    = "ltixml"
	VariantDark  = "dark"
	AssetsPrefix = "/assets"
)

// Keys looked up in a theme's templates and asset files.
const (
	PartialPage     = "page"
	AssetStylesheet = "page.stylesheet"
)

// ErrUnknownVariant is returned when a manifest does not define a variant.
var ErrUnknownVariant = errors.New("page renderer: unknown theme variant")

func defaultPartials() map[string]string {
	return map[string]string{
		PartialPage: "page.tmpl",
	}
}

// DefaultManifest describes the bundled light theme and its dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-family":     "system-ui, sans-serif",
			"line-height":     "1.4",
			"surface":         "#ffffff",
			"text":            "#1f2933",
			"link":            "#0b5cad",
			"error-color":     "red",
			"code-background": "#f5f5f5",
		},
		Templates: defaultPartials(),
		Assets: theme.Assets{
			Prefix: AssetsPrefix,
			Files: map[string]string{
				AssetStylesheet: "page.css",
			},
		},
		Variants: map[string]theme.Variant{
			VariantDark: {
				Tokens: map[string]string{
					"surface":         "#111827",
					"text":            "#e5e7eb",
					"link":            "#93c5fd",
					"error-color":     "#f87171",
					"code-background": "#1f2937",
				},
			},
		},
	}
}

// NewThemeSelector registers the bundled manifest plus any extra manifests in
// a go-theme registry and returns a selector over it. Unknown theme names are
// reported as theme.ErrThemeNotFound rather than falling back.
func NewThemeSelector(manifests ...*theme.Manifest) (theme.ThemeSelector, error) {
	registry := theme.NewRegistry()
	all := append([]*theme.Manifest{DefaultManifest()}, manifests...)
	for _, manifest := range all {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("page renderer: register theme %q: %w", manifest.Name, err)
		}
	}
	return theme.Selector{Registry: registry}, nil
}

// ResolveTheme flattens a selection into renderer configuration with the
// bundled partials as template fallbacks.
func ResolveTheme(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return &theme.RendererConfig{Partials: defaultPartials()}
	}
	cfg := selection.RendererTheme(defaultPartials())
	return &cfg
}

// checkVariant rejects variants the selected manifest does not define.
func checkVariant(selection *theme.Selection) error {
	if selection == nil || selection.Manifest == nil || selection.Variant == "" {
		return nil
	}
	if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
		return fmt.Errorf("%w %q for theme %q", ErrUnknownVariant, selection.Variant, selection.Theme)
	}
	return nil
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key]+";")
	}
	return strings.Join(parts, " ")
}
