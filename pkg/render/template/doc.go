// Package template defines the renderer-agnostic template seam used by the
// HTML page renderer. Implementations live in subpackages; gotemplate provides
// the pongo2-backed engine.
package template
