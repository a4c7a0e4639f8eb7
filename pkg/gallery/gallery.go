package gallery

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"

	"github.com/goliatone/go-overlaygen/pkg/preset"
	"github.com/goliatone/go-overlaygen/pkg/templates"
)

const templateName = "gallery"

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
	proseOnce    sync.Once
	prosePolicy  *bluemonday.Policy
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine renders with a specific template engine.
func WithEngine(engine *templates.Engine) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			r.title = trimmed
		}
	}
}

// WithBasePath prefixes links to the preset and preview routes.
func WithBasePath(path string) Option {
	return func(r *Renderer) {
		r.basePath = strings.TrimRight(strings.TrimSpace(path), "/")
	}
}

// Renderer writes the gallery page.
type Renderer struct {
	engine   *templates.Engine
	title    string
	basePath string
}

// New constructs a Renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{title: "Overlay presets"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		engine, err := templates.Default()
		if err != nil {
			return nil, fmt.Errorf("gallery: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

type presetView struct {
	Name        string `json:"name"`
	Alt         string `json:"alt"`
	Text        string `json:"text"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Dir         string `json:"dir"`
	Font        string `json:"font"`
	Size        string `json:"size"`
	Alignment   string `json:"alignment"`
	Opacity     string `json:"opacity"`
	TextColor   string `json:"text_color"`
	BgColor     string `json:"bg_color"`
	ImageURL    string `json:"image_url"`
	PayloadURL  string `json:"payload_url"`
	PreviewURL  string `json:"preview_url"`
}

type dimensionView struct {
	Name   string `json:"name"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

type groupView struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Badge   string       `json:"badge"`
	Count   string       `json:"count"`
	Presets []presetView `json:"presets"`
}

// Render writes the page for catalog to w.
func (r *Renderer) Render(w io.Writer, catalog *preset.Catalog) error {
	if catalog == nil {
		return errors.New("gallery: catalog is nil")
	}

	groups := catalog.Groups()
	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		view := groupView{
			ID:    url.PathEscape(g.ID),
			Name:  sanitizeText(g.Name),
			Badge: g.Badge,
			Count: strconv.Itoa(len(g.Presets)),
		}
		for i, p := range g.Presets {
			view.Presets = append(view.Presets, presetView{
				Name:        sanitizeText(p.Name),
				Alt:         html.UnescapeString(sanitizeText(p.Name)),
				Text:        sanitizeText(p.Text),
				Description: sanitizeProse(p.Description),
				Language:    p.Language,
				Dir:         Direction(p.Language),
				Font:        p.FontDescriptor().String(),
				Size:        strconv.Itoa(p.Size),
				Alignment:   string(p.Alignment),
				Opacity:     fmt.Sprintf("%d%%", int(math.Floor(p.BgOpacity*100+0.5))),
				TextColor:   p.TextColor,
				BgColor:     p.BgColor,
				ImageURL:    safeURL(p.ImageURL),
				PayloadURL:  fmt.Sprintf("%s/presets/%s/%d/payload", r.basePath, url.PathEscape(g.ID), i),
				PreviewURL:  r.basePath + "/preview?preset=" + url.QueryEscape(p.Name),
			})
		}
		views = append(views, view)
	}

	var dims []dimensionView
	for _, d := range catalog.Dimensions() {
		dims = append(dims, dimensionView{Name: d.Name, Width: strconv.Itoa(d.Width), Height: strconv.Itoa(d.Height)})
	}

	_, err := r.engine.RenderTemplate(templateName, map[string]any{
		"title":      r.title,
		"groups":     views,
		"dimensions": dims,
		"gradients":  catalog.Gradients(),
	}, w)
	if err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}

// Direction returns "rtl" for right-to-left scripts and "ltr" otherwise.
func Direction(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "ltr"
	}
	script, _ := parsed.Script()
	switch script.String() {
	case "Arab", "Hebr", "Syrc", "Thaa", "Nkoo", "Adlm", "Rohg":
		return "rtl"
	default:
		return "ltr"
	}
}

// safeURL keeps absolute http(s) URLs and drops anything else.
func safeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

func sanitizeText(raw string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(strictPolicy.Sanitize(raw))
}

func sanitizeProse(raw string) string {
	proseOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("em", "strong", "b", "i", "br", "code")
		prosePolicy = policy
	})
	return strings.TrimSpace(prosePolicy.Sanitize(raw))
}
