// Package tui runs the playground in a terminal. Prompts go through a
// PromptDriver so sessions can be scripted in tests; the default driver uses
// survey.
package tui
