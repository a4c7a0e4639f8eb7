package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/internal/server"
	"github.com/goliatone/go-overlaygen/pkg/apispec"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/preset"
	"github.com/goliatone/go-overlaygen/pkg/tui"
)

func runPresets(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("presets")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tINDEX\tNAME\tLANGUAGE\tFONT\tALIGNMENT")
	for _, g := range a.catalog.Groups() {
		for i, p := range g.Presets {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", g.ID, i, p.Name, p.Language, p.FontDescriptor(), p.Alignment)
		}
	}
	return tw.Flush()
}

func runPayload(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("payload")
	name := fs.String("preset", "", "preset name")
	group := fs.String("group", "", "preset group id, with -index")
	index := fs.Int("index", 0, "preset index inside -group")
	curl := fs.Bool("curl", false, "print the curl command instead of the JSON body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.lookupPreset(*name, *group, *index)
	if err != nil {
		return err
	}
	req, err := form.PresetPayload(p)
	if err != nil {
		return err
	}

	if *curl {
		command, err := payload.Command(req, a.commandOptions()...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, command)
		return err
	}
	body, err := payload.Encode(req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(body))
	return err
}

func runRender(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("render")
	name := fs.String("preset", "", "preset name")
	group := fs.String("group", "", "preset group id, with -index")
	index := fs.Int("index", 0, "preset index inside -group")
	out := fs.String("out", "", "output file (default: <output.dir>/<uuid> with an extension from the response type)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.lookupPreset(*name, *group, *index)
	if err != nil {
		return err
	}
	req, err := form.PresetPayload(p)
	if err != nil {
		return err
	}

	img, err := a.client.ProcessCustom(ctx, req)
	if err != nil {
		a.logger.Error("render failed", zap.String("preset", p.Name), zap.Error(err))
		return errors.New(playground.GenericRenderError)
	}

	path := *out
	if path == "" {
		path = filepath.Join(a.cfg.Output.Dir, uuid.NewString()+img.Extension())
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, "Image written to %s (%d bytes)\n", path, len(img.Data))
	return err
}

func runFonts(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("fonts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.client.Fonts(ctx)
	if err != nil {
		a.logger.Warn("font list unavailable", zap.Error(err))
		list = font.List{}
	}
	for _, g := range font.Grouped(font.Merge(list)) {
		fmt.Fprintf(a.stdout, "%s (%d)\n", g.Label, len(g.Entries))
		for _, e := range g.Entries {
			fmt.Fprintf(a.stdout, "  %s\n", e.Name)
		}
	}
	return nil
}

func runHealth(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("health")
	if err := fs.Parse(args); err != nil {
		return err
	}

	h, err := a.client.Health(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s %s (version %s)\n", a.client.BaseURL(), h.Status, h.Version)
	return err
}

func runPlay(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("play")
	outDir := fs.String("out-dir", "", "directory for rendered previews (default: output.dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	dir := a.cfg.Output.Dir
	if *outDir != "" {
		dir = *outDir
	}

	session, err := tui.New(a.client,
		tui.WithPromptDriver(tui.NewSurveyDriver(a.stdout)),
		tui.WithOutputDir(dir),
		tui.WithLogger(a.logger.Named("tui")),
		tui.WithModelOptions(playground.WithCommandOptions(a.commandOptions()...)),
	)
	if err != nil {
		return err
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, tui.ErrAborted) {
		return err
	}
	return nil
}

func runServe(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("serve")
	addr := fs.String("addr", a.cfg.Server.Addr, "listen address")
	validate := fs.Bool("validate", true, "reject preview bodies that do not match the API contract")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []server.Option{
		server.WithLogger(a.logger.Named("server")),
		server.WithCommandOptions(a.commandOptions()...),
	}
	if *validate {
		contract, err := apispec.Load(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, server.WithContract(contract))
	}

	srv, err := server.New(a.client, opts...)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, *addr)
}

func runLint(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("lint")
	if err := fs.Parse(args); err != nil {
		return err
	}

	violations := preset.Lint(a.catalog)

	contract, err := apispec.Load(ctx)
	if err != nil {
		return err
	}
	for _, g := range a.catalog.Groups() {
		for i, p := range g.Presets {
			req, err := form.PresetPayload(p)
			if err != nil {
				return err
			}
			if err := contract.ValidateRenderRequest(req); err != nil {
				violations = append(violations, preset.Violation{
					Location: fmt.Sprintf("groups.%s.presets[%d]", g.ID, i),
					Message:  "payload: " + err.Error(),
				})
			}
		}
	}

	if len(violations) == 0 {
		_, err := fmt.Fprintf(a.stdout, "%d presets ok\n", len(a.catalog.All()))
		return err
	}
	for _, v := range violations {
		fmt.Fprintln(a.stderr, v)
	}
	return fmt.Errorf("%d problem(s) found", len(violations))
}
