package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the Response.
type RenderOptions struct {
	// Action is the URL the HTML form posts to. Empty means the current URL.
	Action string
	// HiddenFields are emitted as hidden inputs inside the HTML form.
	HiddenFields []HiddenField
	// Theme overrides the renderer's configured theme for one request.
	Theme *theme.RendererConfig
}
