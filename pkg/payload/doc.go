// Package payload defines the RenderRequest sent to POST /process_custom,
// its JSON encoding, and the equivalent curl command shown to users.
package payload
