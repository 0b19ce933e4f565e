// Package tracker aggregates field validation failures for one request.
//
// A Tracker is built by folding validation results into an immutable value:
//
//	errs := tracker.New(model.FieldNames()...).Fold(validation.Configuration(cfg)...)
//	if errs.HasErrors() {
//		body = errs.Text()
//	}
//
// Snapshot exposes a structurally stable view (every seeded field present,
// nil when valid) so renderers never special-case the zero-error response.
package tracker
