// Package formspec describes the configuration form as an OpenAPI document.
// The form-encoded request body of POST / lists one schema property per input;
// titles, descriptions, enums and defaults become labels, help text, select
// options and pre-filled values, and the x-ltixml extension carries ordering
// and widget hints. The HTML page, the terminal prompts and the HTTP server
// (which also publishes the document) all read the same definition.
package formspec
