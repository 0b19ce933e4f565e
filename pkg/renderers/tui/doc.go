// Package tui collects an LTI tool configuration interactively in the
// terminal. Prompts follow the form definition order, answers go through the
// form handler, and fields that fail validation are asked again.
package tui
