// Package templates wraps a pongo2 template set loaded from the embedded
// template files (curl command, preset gallery page). Callers may pass any
// JSON-serialisable value as template data.
package templates
