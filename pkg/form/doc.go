// Package form is the request side of the configuration page. A Handler maps
// submitted field values onto a model.Configuration, runs the field validators,
// folds their results into a tracker, and returns one Response shape for both
// the initial page load and a submission. When the tracker holds errors the
// Response carries the tracker text in place of the XML document.
package form
