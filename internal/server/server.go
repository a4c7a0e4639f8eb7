package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/apispec"
	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/gallery"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

const maxPreviewBody = 1 << 20

// Renderer is the part of the rendering API the preview proxy uses.
type Renderer interface {
	ProcessCustom(ctx context.Context, req payload.RenderRequest) (client.Image, error)
}

var _ Renderer = (*client.Client)(nil)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCatalog overrides the bundled preset catalog.
func WithCatalog(catalog *preset.Catalog) Option {
	return func(s *Server) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithCommandOptions configures the curl commands returned with payloads.
func WithCommandOptions(options ...payload.CommandOption) Option {
	return func(s *Server) {
		s.commandOpts = append(s.commandOpts, options...)
	}
}

// WithContract rejects preview bodies that do not match the API contract
// before they are forwarded.
func WithContract(contract *apispec.Contract) Option {
	return func(s *Server) {
		s.contract = contract
	}
}

// Server serves the HTTP host.
type Server struct {
	api         Renderer
	logger      *zap.Logger
	catalog     *preset.Catalog
	gallery     *gallery.Renderer
	contract    *apispec.Contract
	commandOpts []payload.CommandOption
}

// New constructs a Server that forwards previews to api.
func New(api Renderer, options ...Option) (*Server, error) {
	if api == nil {
		return nil, errors.New("server: renderer is required")
	}
	s := &Server{
		api:     api,
		logger:  zap.NewNop(),
		catalog: preset.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	g, err := gallery.New()
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.gallery = g
	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.getGallery)
	r.Get("/presets", s.getPresets)
	r.Get("/presets/{group}/{index}/payload", s.getPresetPayload)
	r.Post("/preview", s.postPreview)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

type catalogResponse struct {
	Groups     []preset.Group     `json:"groups"`
	Dimensions []preset.Dimension `json:"dimensions"`
	Gradients  []preset.Gradient  `json:"gradients"`
}

type payloadResponse struct {
	Group   string                `json:"group"`
	Index   int                   `json:"index"`
	Preset  preset.Preset         `json:"preset"`
	Payload payload.RenderRequest `json:"payload"`
	Command string                `json:"command"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getGallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.gallery.Render(w, s.catalog); err != nil {
		s.logger.Error("render gallery", zap.Error(err))
		http.Error(w, "failed to render gallery", http.StatusInternalServerError)
	}
}

func (s *Server) getPresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalogResponse{
		Groups:     s.catalog.Groups(),
		Dimensions: s.catalog.Dimensions(),
		Gradients:  s.catalog.Gradients(),
	})
}

func (s *Server) getPresetPayload(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "index must be an integer"})
		return
	}
	p, ok := s.catalog.Preset(group, index)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "preset not found"})
		return
	}

	req, err := form.PresetPayload(p)
	if err != nil {
		s.logger.Error("apply preset", zap.String("preset", p.Name), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to build payload"})
		return
	}
	command, err := payload.Command(req, s.commandOpts...)
	if err != nil {
		s.logger.Error("render command", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render command"})
		return
	}

	s.writeJSON(w, http.StatusOK, payloadResponse{
		Group:   group,
		Index:   index,
		Preset:  p,
		Payload: req,
		Command: command,
	})
}

func (s *Server) postPreview(w http.ResponseWriter, r *http.Request) {
	req, status, err := s.previewRequest(r)
	if err != nil {
		s.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	img, err := s.api.ProcessCustom(r.Context(), req)
	if err != nil {
		s.logger.Warn("preview failed", zap.Error(err))
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: playground.GenericRenderError})
		return
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

// previewRequest resolves the render request from ?preset= or the body.
func (s *Server) previewRequest(r *http.Request) (payload.RenderRequest, int, error) {
	if name := r.URL.Query().Get("preset"); name != "" {
		p, ok := s.catalog.Find(name)
		if !ok {
			return payload.RenderRequest{}, http.StatusNotFound, fmt.Errorf("preset %q not found", name)
		}
		req, err := form.PresetPayload(p)
		if err != nil {
			return payload.RenderRequest{}, http.StatusInternalServerError, errors.New("failed to build payload")
		}
		return req, 0, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPreviewBody+1))
	if err != nil {
		return payload.RenderRequest{}, http.StatusBadRequest, errors.New("failed to read body")
	}
	if len(body) > maxPreviewBody {
		return payload.RenderRequest{}, http.StatusRequestEntityTooLarge, errors.New("body too large")
	}
	req, err := payload.Decode(body)
	if err != nil {
		return payload.RenderRequest{}, http.StatusBadRequest, errors.New("invalid request body")
	}
	if s.contract != nil {
		if err := s.contract.ValidateJSON(apispec.SchemaRenderRequest, body); err != nil {
			return payload.RenderRequest{}, http.StatusUnprocessableEntity, err
		}
	}
	return req, 0, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}
