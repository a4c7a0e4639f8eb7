package payload

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-overlaygen/pkg/templates"
)

const (
	// DefaultCommandEndpoint is the URL printed in generated commands.
	DefaultCommandEndpoint = "http://localhost:5001/process_custom"
	// DefaultCommandOutput is the file name printed in generated commands.
	DefaultCommandOutput = "processed_image.png"
)

// CommandOption configures Command.
type CommandOption func(*commandConfig)

type commandConfig struct {
	endpoint string
	output   string
	engine   *templates.Engine
}

// WithEndpoint overrides the URL in the generated command.
func WithEndpoint(endpoint string) CommandOption {
	return func(cfg *commandConfig) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			cfg.endpoint = trimmed
		}
	}
}

// WithOutput overrides the output file name in the generated command.
func WithOutput(name string) CommandOption {
	return func(cfg *commandConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.output = trimmed
		}
	}
}

// WithEngine renders the command with a specific template engine.
func WithEngine(engine *templates.Engine) CommandOption {
	return func(cfg *commandConfig) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// Command renders the curl invocation that reproduces req. The body sits in
// a single-quoted shell word, so embedded single quotes are written as '\''.
func Command(req RenderRequest, options ...CommandOption) (string, error) {
	cfg := commandConfig{
		endpoint: DefaultCommandEndpoint,
		output:   DefaultCommandOutput,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.engine == nil {
		engine, err := templates.Default()
		if err != nil {
			return "", fmt.Errorf("payload: template engine: %w", err)
		}
		cfg.engine = engine
	}

	body, err := Encode(req)
	if err != nil {
		return "", err
	}

	out, err := cfg.engine.RenderTemplate("command", map[string]any{
		"endpoint": cfg.endpoint,
		"output":   cfg.output,
		"body":     quoteSingle(string(body)),
	})
	if err != nil {
		return "", fmt.Errorf("payload: render command: %w", err)
	}
	return out, nil
}

func quoteSingle(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
