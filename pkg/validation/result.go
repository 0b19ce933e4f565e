package validation

import "strings"

// Result is the outcome of validating one raw field value. The zero value is
// a failure without a message; use Pass and Fail to construct results.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Pass returns a successful result.
func Pass() Result {
	return Result{Valid: true}
}

// Fail returns a failed result carrying a human readable reason.
func Fail(message string) Result {
	return Result{Message: strings.TrimSpace(message)}
}

// Failed reports whether the result signals a validation failure.
func (r Result) Failed() bool {
	return !r.Valid
}

// FieldResult binds a Result to the form field it was computed for.
type FieldResult struct {
	Field string `json:"field"`
	Result
}

// For attaches a field name to a result.
func For(field string, result Result) FieldResult {
	return FieldResult{Field: strings.TrimSpace(field), Result: result}
}
