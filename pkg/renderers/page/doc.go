// Package page renders the configuration form as a single HTML page with
// pongo2 templates. Labels, help text, select options and defaults come from
// the formspec definition; values, inline errors and the XML (or error) panel
// come from the form.Response. Styling is driven by go-theme manifests whose
// tokens are exposed as CSS variables.
package page
