// Package playground holds the interactive preview state machine. Every user
// action and every network result is a Msg passed to Model.Update, which
// mutates the model and returns the commands to run. Runtime executes those
// commands concurrently and feeds their results back in as messages, one at
// a time.
package playground
