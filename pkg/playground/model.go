package playground

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

// GenericRenderError is the only message shown for failed renders.
const GenericRenderError = "Error generating preview. Please check your settings."

var (
	// ErrUnknownPreset is returned for an ApplyPreset outside the catalog.
	ErrUnknownPreset = errors.New("playground: unknown preset")
	// ErrUnknownGradient is returned for an unnamed gradient preset.
	ErrUnknownGradient = errors.New("playground: unknown gradient")
	// ErrUnknownMsg is returned for message types Update does not handle.
	ErrUnknownMsg = errors.New("playground: unknown message")
)

// Status is the preview lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a Model.
type Option func(*Model)

// WithCatalog overrides the bundled preset catalog.
func WithCatalog(catalog *preset.Catalog) Option {
	return func(m *Model) {
		if catalog != nil {
			m.catalog = catalog
		}
	}
}

// WithState starts from an existing form store instead of the defaults.
func WithState(state *form.State) Option {
	return func(m *Model) {
		if state != nil {
			m.form = state
		}
	}
}

// WithLogger sets the logger for render and font failures.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithCommandOptions configures the generated curl command.
func WithCommandOptions(options ...payload.CommandOption) Option {
	return func(m *Model) {
		m.commandOpts = append(m.commandOpts, options...)
	}
}

// Model is the playground state. It is not safe for concurrent use; Runtime
// serialises access to it.
type Model struct {
	catalog     *preset.Catalog
	form        *form.State
	logger      *zap.Logger
	commandOpts []payload.CommandOption

	status     Status
	image      client.Image
	hasImage   bool
	errMessage string
	request    payload.RenderRequest
	command    string
	fonts      []font.Entry
	lastPreset string
}

// New returns a model with default form values and no image.
func New(options ...Option) *Model {
	m := &Model{
		catalog: preset.Default(),
		form:    form.NewState(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Update applies msg and returns the commands it requests.
func (m *Model) Update(msg Msg) ([]Cmd, error) {
	switch msg := msg.(type) {
	case ApplyPreset:
		p, ok := m.catalog.Preset(msg.Group, msg.Index)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d]", ErrUnknownPreset, msg.Group, msg.Index)
		}
		if err := form.ApplyPreset(m.form, p); err != nil {
			return nil, fmt.Errorf("playground: apply preset: %w", err)
		}
		m.lastPreset = p.Name
		return m.generate(), nil

	case SetField:
		if err := m.form.Set(msg.Name, msg.Value); err != nil {
			return nil, fmt.Errorf("playground: set field: %w", err)
		}
		return nil, nil

	case SelectDimensionPreset:
		if err := m.form.Apply(form.DimensionAssignments(m.catalog, msg.ID)); err != nil {
			return nil, fmt.Errorf("playground: dimension preset: %w", err)
		}
		return nil, nil

	case ApplyGradientPreset:
		g, ok := m.catalog.Gradient(msg.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGradient, msg.Name)
		}
		if err := m.form.Apply(form.GradientAssignments(g)); err != nil {
			return nil, fmt.Errorf("playground: gradient preset: %w", err)
		}
		return nil, nil

	case GenerateRequested:
		return m.generate(), nil

	case RenderSucceeded:
		m.image = msg.Image
		m.hasImage = true
		m.status = StatusLoaded
		m.errMessage = ""
		return nil, nil

	case RenderFailed:
		m.logger.Warn("preview render failed", zap.Error(msg.Err))
		m.status = StatusError
		m.errMessage = GenericRenderError
		return nil, nil

	case LoadFonts:
		return []Cmd{FetchFontsCmd{}}, nil

	case FontsLoaded:
		m.fonts = font.Merge(msg.List)
		return nil, nil

	case FontsFailed:
		m.logger.Warn("font list unavailable", zap.Error(msg.Err))
		m.fonts = nil
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMsg, msg)
	}
}

func (m *Model) generate() []Cmd {
	req := form.BuildPayload(m.form)
	m.status = StatusLoading
	m.request = req

	command, err := payload.Command(req, m.commandOpts...)
	if err != nil {
		m.logger.Warn("curl command unavailable", zap.Error(err))
		command = ""
	}
	m.command = command

	return []Cmd{RenderCmd{Request: req}}
}

// Status returns the preview status.
func (m *Model) Status() Status {
	return m.status
}

// Image returns the last successfully rendered image.
func (m *Model) Image() (client.Image, bool) {
	return m.image, m.hasImage
}

// ErrorMessage returns the user-facing error, empty unless Status is
// StatusError.
func (m *Model) ErrorMessage() string {
	if m.status != StatusError {
		return ""
	}
	return m.errMessage
}

// Request returns the payload of the most recent generate.
func (m *Model) Request() payload.RenderRequest {
	return m.request
}

// Command returns the curl command of the most recent generate.
func (m *Model) Command() string {
	return m.command
}

// Fonts returns the merged font list, empty until loaded or after a failure.
func (m *Model) Fonts() []font.Entry {
	return append([]font.Entry(nil), m.fonts...)
}

// LastPreset returns the name of the most recently applied preset.
func (m *Model) LastPreset() string {
	return m.lastPreset
}

// Catalog returns the preset catalog the model reads from.
func (m *Model) Catalog() *preset.Catalog {
	return m.catalog
}

// Value returns the raw value of a form field.
func (m *Model) Value(name string) string {
	return m.form.Value(name)
}

// Display returns the derived label of a form field.
func (m *Model) Display(name string) string {
	return m.form.Display(name)
}

// Snapshot returns a copy of every form value.
func (m *Model) Snapshot() map[string]string {
	return m.form.Snapshot()
}

// PreviewCommand renders the curl command for Preview.
func (m *Model) PreviewCommand() (string, error) {
	return payload.Command(m.Preview(), m.commandOpts...)
}

// Preview builds the payload the next generate would send, without changing
// any state.
func (m *Model) Preview() payload.RenderRequest {
	return form.BuildPayload(m.form)
}
