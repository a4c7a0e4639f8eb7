package tui

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/playground"
)

// Theme captures optional prefixes the session puts in front of messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputDir sets where rendered previews are written.
func WithOutputDir(dir string) Option {
	return func(s *Session) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			s.outputDir = trimmed
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithModelOptions forwards options to the playground model.
func WithModelOptions(options ...playground.Option) Option {
	return func(s *Session) {
		s.modelOpts = append(s.modelOpts, options...)
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
