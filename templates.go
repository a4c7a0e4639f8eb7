package overlaygen

import (
	"io/fs"

	"github.com/goliatone/go-overlaygen/pkg/templates"
)

// EmbeddedTemplates exposes the built-in curl command and gallery templates
// so callers can copy or extend them and pass the result to templates.WithFS.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
