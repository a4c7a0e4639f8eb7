package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/internal/config"
	"github.com/goliatone/go-overlaygen/internal/logging"
	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *client.Client
	catalog *preset.Catalog
	stdout  io.Writer
	stderr  io.Writer
}

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"presets": {summary: "list bundled presets", run: runPresets},
	"payload": {summary: "print the JSON payload or curl command for a preset", run: runPayload},
	"render":  {summary: "render a preset through the API and save the image", run: runRender},
	"fonts":   {summary: "list fonts known to the API", run: runFonts},
	"health":  {summary: "check the API health endpoint", run: runHealth},
	"play":    {summary: "interactive terminal playground", run: runPlay},
	"serve":   {summary: "serve the preset gallery and preview proxy", run: runServe},
	"lint":    {summary: "check bundled presets against the API contract", run: runLint},
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("overlaygen", flag.ContinueOnError)
	global.SetOutput(stderr)
	configFile := global.String("config", "", "config file (default: search for overlaygen.yaml)")
	apiURL := global.String("api", "", "rendering API base URL (overrides config)")
	logLevel := global.String("log-level", "", "log level (overrides config)")
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		return exitUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return exitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", rest[0])
		global.Usage()
		return exitUsage
	}

	var opts []config.Option
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if *apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(*apiURL, "/")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{
		cfg:    cfg,
		logger: logger,
		client: client.New(
			client.WithBaseURL(cfg.API.BaseURL),
			client.WithTimeout(cfg.API.Timeout),
			client.WithLogger(logger.Named("client")),
		),
		catalog: preset.Default(),
		stdout:  stdout,
		stderr:  stderr,
	}

	if err := cmd.run(ctx, a, rest[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: overlaygen [flags] <command> [command flags]")
	fmt.Fprintln(out, "\nCommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(out, "\nFlags:")
	fs.PrintDefaults()
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) commandOptions() []payload.CommandOption {
	return []payload.CommandOption{payload.WithEndpoint(a.cfg.CommandEndpoint())}
}

// lookupPreset resolves -preset NAME or -group ID -index N.
func (a *app) lookupPreset(name, group string, index int) (preset.Preset, error) {
	if name != "" {
		p, ok := a.catalog.Find(name)
		if !ok {
			return preset.Preset{}, fmt.Errorf("preset %q not found", name)
		}
		return p, nil
	}
	if group != "" {
		p, ok := a.catalog.Preset(group, index)
		if !ok {
			return preset.Preset{}, fmt.Errorf("preset %s[%d] not found", group, index)
		}
		return p, nil
	}
	fmt.Fprintln(a.stderr, "either -preset or -group is required")
	return preset.Preset{}, errUsage
}
