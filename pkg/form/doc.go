// Package form holds the flat field store behind the playground and the two
// transforms that matter: applying a preset onto the store and building a
// payload.RenderRequest from it.
//
// Handlers are split into a pure step that computes Assignments and a single
// State.Apply call that writes them.
package form
