package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

type action int

const (
	actionPreset action = iota
	actionEdit
	actionDimension
	actionGradient
	actionGenerate
	actionPayload
	actionCommand
	actionQuit
)

var menu = []string{
	actionPreset:    "Load example preset",
	actionEdit:      "Edit a field",
	actionDimension: "Choose output size",
	actionGradient:  "Apply gradient preset",
	actionGenerate:  "Generate preview",
	actionPayload:   "Show payload",
	actionCommand:   "Show curl command",
	actionQuit:      "Quit",
}

// Session is one interactive playground run.
type Session struct {
	api       playground.API
	driver    PromptDriver
	logger    *zap.Logger
	outputDir string
	modelOpts []playground.Option
	theme     Theme

	rt *playground.Runtime
}

// New constructs a session that renders through api.
func New(api playground.API, options ...Option) (*Session, error) {
	if api == nil {
		return nil, errors.New("tui: api is required")
	}
	s := &Session{
		api:       api,
		logger:    zap.NewNop(),
		outputDir: ".",
		theme:     Theme{ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run drives the menu loop until the user quits or aborts. Aborting returns
// ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	model := playground.New(append([]playground.Option{playground.WithLogger(s.logger)}, s.modelOpts...)...)
	s.rt = playground.NewRuntime(model, s.api, playground.WithRuntimeLogger(s.logger))

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = s.rt.Run(ctx)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	if err := s.rt.Send(ctx, playground.LoadFonts{}); err != nil {
		return err
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{Message: "What next?", Options: menu, PageSize: len(menu)})
		if err != nil {
			return err
		}
		if action(idx) == actionQuit {
			return nil
		}
		if err := s.dispatch(ctx, action(idx)); err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, act action) error {
	switch act {
	case actionPreset:
		return s.choosePreset(ctx)
	case actionEdit:
		return s.editField(ctx)
	case actionDimension:
		return s.chooseDimension(ctx)
	case actionGradient:
		return s.chooseGradient(ctx)
	case actionGenerate:
		if err := s.rt.Send(ctx, playground.GenerateRequested{}); err != nil {
			return err
		}
		return s.report(ctx)
	case actionPayload:
		var req payload.RenderRequest
		if err := s.rt.Inspect(ctx, func(m *playground.Model) { req = m.Preview() }); err != nil {
			return err
		}
		body, err := payload.Encode(req)
		if err != nil {
			return err
		}
		return s.info(ctx, string(body))
	case actionCommand:
		var (
			command string
			cmdErr  error
		)
		if err := s.rt.Inspect(ctx, func(m *playground.Model) { command, cmdErr = m.PreviewCommand() }); err != nil {
			return err
		}
		if cmdErr != nil {
			return s.fail(ctx, cmdErr.Error())
		}
		return s.info(ctx, command)
	default:
		return fmt.Errorf("tui: unknown menu entry %d", act)
	}
}

func (s *Session) choosePreset(ctx context.Context) error {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	groups := catalog.Groups()

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = fmt.Sprintf("%s (%d)", g.Name, len(g.Presets))
	}
	gi, err := s.driver.Select(ctx, SelectConfig{Message: "Language", Options: labels})
	if err != nil {
		return err
	}
	if gi < 0 || gi >= len(groups) {
		return nil
	}
	group := groups[gi]

	names := make([]string, len(group.Presets))
	for i, p := range group.Presets {
		names[i] = p.Name
	}
	pi, err := s.driver.Select(ctx, SelectConfig{Message: "Preset", Options: names})
	if err != nil {
		return err
	}
	if pi < 0 || pi >= len(names) {
		return nil
	}
	if desc := group.Presets[pi].Description; desc != "" {
		if err := s.info(ctx, desc); err != nil {
			return err
		}
	}

	if err := s.rt.Send(ctx, playground.ApplyPreset{Group: group.ID, Index: pi}); err != nil {
		return err
	}
	return s.report(ctx)
}

func (s *Session) editField(ctx context.Context) error {
	var (
		snapshot map[string]string
		display  = map[string]string{}
		fonts    []font.Entry
	)
	fields := form.Fields()
	if err := s.rt.Inspect(ctx, func(m *playground.Model) {
		snapshot = m.Snapshot()
		for _, f := range fields {
			display[f.Name] = m.Display(f.Name)
		}
		fonts = m.Fonts()
	}); err != nil {
		return err
	}

	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = fmt.Sprintf("%s: %s", f.Label, display[f.Name])
	}
	fi, err := s.driver.Select(ctx, SelectConfig{Message: "Field", Options: labels, PageSize: 12})
	if err != nil {
		return err
	}
	if fi < 0 || fi >= len(fields) {
		return nil
	}
	field := fields[fi]
	current := snapshot[field.Name]

	if field.Name == form.FieldPreset {
		return s.chooseDimension(ctx)
	}

	options := field.Options
	if field.Name == form.FieldFontFamily {
		options = font.Names(fonts)
	}

	var value string
	if field.Kind == form.KindSelect && len(options) > 0 {
		oi, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      options,
			DefaultIndex: indexOf(options, current),
			PageSize:     12,
		})
		if err != nil {
			return err
		}
		if oi < 0 || oi >= len(options) {
			return nil
		}
		value = options[oi]
	} else {
		value, err = s.driver.Input(ctx, InputConfig{Message: field.Label, Default: current})
		if err != nil {
			return err
		}
	}
	return s.rt.Send(ctx, playground.SetField{Name: field.Name, Value: value})
}

func (s *Session) chooseDimension(ctx context.Context) error {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	dims := catalog.Dimensions()

	labels := make([]string, 0, len(dims)+1)
	ids := make([]string, 0, len(dims)+1)
	for _, d := range dims {
		labels = append(labels, fmt.Sprintf("%s (%dx%d)", d.Name, d.Width, d.Height))
		ids = append(ids, d.ID)
	}
	labels = append(labels, "Custom")
	ids = append(ids, form.CustomDimension)

	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Output size", Options: labels})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(ids) {
		return nil
	}
	return s.rt.Send(ctx, playground.SelectDimensionPreset{ID: ids[idx]})
}

func (s *Session) chooseGradient(ctx context.Context) error {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	gradients := catalog.Gradients()

	labels := make([]string, len(gradients))
	for i, g := range gradients {
		labels[i] = fmt.Sprintf("%s (%s to %s)", g.Name, g.Start, g.End)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Gradient", Options: labels})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(gradients) {
		return nil
	}
	return s.rt.Send(ctx, playground.ApplyGradientPreset{Name: gradients[idx].Name})
}

func (s *Session) catalog(ctx context.Context) (*preset.Catalog, error) {
	var catalog *preset.Catalog
	if err := s.rt.Inspect(ctx, func(m *playground.Model) { catalog = m.Catalog() }); err != nil {
		return nil, err
	}
	return catalog, nil
}

// report waits for in-flight renders and tells the user how they ended.
func (s *Session) report(ctx context.Context) error {
	if err := s.rt.Settle(ctx); err != nil {
		return err
	}

	var (
		status  playground.Status
		message string
		img     client.Image
	)
	if err := s.rt.Inspect(ctx, func(m *playground.Model) {
		status = m.Status()
		message = m.ErrorMessage()
		img, _ = m.Image()
	}); err != nil {
		return err
	}

	if status == playground.StatusError {
		return s.fail(ctx, message)
	}
	if status != playground.StatusLoaded {
		return nil
	}

	path, err := s.writeImage(img)
	if err != nil {
		return err
	}
	s.logger.Info("preview saved", zap.String("path", path), zap.Int("bytes", len(img.Data)))
	return s.info(ctx, fmt.Sprintf("Preview saved to %s (%d bytes)", path, len(img.Data)))
}

func (s *Session) writeImage(img client.Image) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: output dir: %w", err)
	}
	path := filepath.Join(s.outputDir, uuid.NewString()+img.Extension())
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("tui: write preview: %w", err)
	}
	return path, nil
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) fail(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}
