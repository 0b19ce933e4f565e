// Package model defines the values that flow through the configuration
// pipeline: the Configuration built from one form submission, the PrivacyLevel
// and Visibility enumerations with their defaults, and the Placement entries
// of the static catalog. Field name constants are the single source for the
// form input names used by the HTML page, the terminal prompts, the
// validators, and the error tracker.
package model
