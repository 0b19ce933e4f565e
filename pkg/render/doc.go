// Package render holds the renderer contract shared by every output format and
// a name-keyed registry. The xml and json renderers live here; the HTML page
// renderer lives in renderers/page.
package render
