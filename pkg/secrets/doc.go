// Package secrets provides a string wrapper that keeps its value out of
// logs, formatted output and JSON, plus helpers for generating opaque
// API tokens.
package secrets
