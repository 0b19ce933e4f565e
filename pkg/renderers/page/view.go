package page

import (
	"strconv"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
	"github.com/goliatone/go-ltixml/pkg/render"
)

func buildView(spec *formspec.Form, resp form.Response, options render.RenderOptions, cfg *theme.RendererConfig) map[string]any {
	return map[string]any{
		"title":      spec.Title,
		"intro":      sanitizeHelp(spec.Intro),
		"docs_url":   spec.DocsURL,
		"action":     options.Action,
		"hidden":     hiddenViews(options.HiddenFields),
		"theme":      themeView(cfg),
		"failed":     resp.Failed(),
		"error_text": resp.Errors.Text,
		"xml":        resp.XML,
		"fields":     fieldViews(spec, resp),
	}
}

func hiddenViews(fields []render.HiddenField) []map[string]any {
	sorted := render.SortedHiddenFields(fields...)
	out := make([]map[string]any, 0, len(sorted))
	for _, field := range sorted {
		out = append(out, map[string]any{"name": field.Name, "value": field.Value})
	}
	return out
}

func themeView(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	view := map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"css_vars": cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view["stylesheet"] = cfg.AssetURL(AssetStylesheet)
	}
	return view
}

func fieldViews(spec *formspec.Form, resp form.Response) []map[string]any {
	fields := spec.Fields()
	out := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		value := resp.Values.Get(field.Name)
		if _, submitted := resp.Values[field.Name]; !submitted {
			value = field.Default
		}

		view := map[string]any{
			"name":   field.Name,
			"label":  field.Label,
			"help":   sanitizeHelp(field.Help),
			"widget": string(field.Widget),
			"value":  value,
			"error":  resp.Errors.Message(field.Name),
		}
		if field.Rows > 0 {
			view["rows"] = strconv.Itoa(field.Rows)
		}
		if field.Cols > 0 {
			view["cols"] = strconv.Itoa(field.Cols)
		}

		switch field.Widget {
		case formspec.WidgetCheckbox:
			_, checked := resp.Values[field.Name]
			view["checked"] = checked
		case formspec.WidgetSelect:
			options := make([]map[string]any, 0, len(field.Options))
			for _, option := range field.Options {
				options = append(options, map[string]any{
					"value":    option,
					"selected": option == value,
				})
			}
			view["options"] = options
		case formspec.WidgetPlacements:
			placements := make([]map[string]any, 0, len(resp.Placements))
			for _, placement := range resp.Placements {
				placements = append(placements, map[string]any{
					"key":    placement.Key,
					"label":  placement.Label,
					"active": placement.Active,
				})
			}
			view["placements"] = placements
		}
		out = append(out, view)
	}
	return out
}
