// Package server hosts the preset gallery, the preset catalog as JSON, and a
// preview proxy that forwards render requests to the rendering API.
package server
