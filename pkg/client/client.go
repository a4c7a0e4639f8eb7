package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

const (
	pathProcessCustom = "/process_custom"
	pathFonts         = "/fonts"
	pathHealth        = "/api/health"

	maxErrorBody = 512
)

// Image is a rendered result. The bytes are opaque to the client.
type Image struct {
	Data        []byte
	ContentType string
}

// Extension returns the file extension for the image content type,
// falling back to ".png" when the type is missing or unknown.
func (img Image) Extension() string {
	mediaType, _, err := mime.ParseMediaType(img.ContentType)
	if err != nil {
		return ".png"
	}
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// Health mirrors GET /api/health.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// New constructs a Client.
func New(options ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProcessCustomURL returns the absolute render endpoint.
func (c *Client) ProcessCustomURL() string {
	return c.baseURL + pathProcessCustom
}

// ProcessCustom posts req and returns the image bytes on a 2xx response.
func (c *Client) ProcessCustom(ctx context.Context, req payload.RenderRequest) (Image, error) {
	body, err := payload.Compact(req)
	if err != nil {
		return Image{}, err
	}

	resp, cancel, err := c.do(ctx, http.MethodPost, pathProcessCustom, body)
	if err != nil {
		return Image{}, fmt.Errorf("client: process_custom: %w", err)
	}
	defer cancel()
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := c.checkStatus("process_custom", resp); err != nil {
		return Image{}, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, fmt.Errorf("client: process_custom: read body: %w", err)
	}
	c.logger.Debug("render completed",
		zap.Int("bytes", len(data)),
		zap.String("content_type", resp.Header.Get("Content-Type")),
	)
	return Image{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

// Fonts fetches the local and Google font families.
func (c *Client) Fonts(ctx context.Context) (font.List, error) {
	var list font.List
	if err := c.getJSON(ctx, "fonts", pathFonts, &list); err != nil {
		return font.List{}, err
	}
	return list, nil
}

// Health fetches the API health document.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.getJSON(ctx, "health", pathHealth, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	resp, cancel, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("client: %s: %w", op, err)
	}
	defer cancel()
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := c.checkStatus(op, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: %s: decode: %w", op, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, context.CancelFunc, error) {
	if ctx == nil {
		return nil, nil, errors.New("context is required")
	}

	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", zap.String("method", method), zap.String("url", req.URL.String()))
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return resp, cancel, nil
}

func (c *Client) checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	err := &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(snippet)),
	}
	c.logger.Warn("api request failed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.String("body", err.Body),
	)
	return err
}
