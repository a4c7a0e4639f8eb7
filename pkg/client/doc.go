// Package client talks to the rendering API: it posts render requests to
// /process_custom and reads the font list and health endpoints. It never
// retries and applies no timeout unless one is configured.
package client
