package apispec

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-overlaygen/pkg/payload"
)

//go:embed openapi.yaml
var document []byte

// Schema names in components/schemas.
const (
	SchemaRenderRequest = "RenderRequest"
	SchemaFontList      = "FontList"
	SchemaHealth        = "Health"
)

// ErrUnknownSchema is returned when validating against a missing schema.
var ErrUnknownSchema = errors.New("apispec: unknown schema")

// Operation is one endpoint in the document.
type Operation struct {
	ID     string
	Method string
	Path   string
}

// Contract is the loaded and validated document.
type Contract struct {
	doc *openapi3.T
}

// Raw returns the embedded document bytes.
func Raw() []byte {
	return append([]byte(nil), document...)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	return LoadFromData(ctx, document)
}

// LoadFromData parses and validates an OpenAPI document.
func LoadFromData(ctx context.Context, data []byte) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("apispec: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("apispec: validate document: %w", err)
	}
	return &Contract{doc: doc}, nil
}

// Version returns info.version.
func (c *Contract) Version() string {
	if c == nil || c.doc == nil || c.doc.Info == nil {
		return ""
	}
	return c.doc.Info.Version
}

// Operations lists the endpoints sorted by path then method.
func (c *Contract) Operations() []Operation {
	if c == nil || c.doc == nil || c.doc.Paths == nil {
		return nil
	}
	var out []Operation
	for path, item := range c.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			out = append(out, Operation{ID: op.OperationID, Method: strings.ToUpper(method), Path: path})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path == out[j].Path {
			return out[i].Method < out[j].Method
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// ValidateRenderRequest checks the JSON form of req against RenderRequest.
func (c *Contract) ValidateRenderRequest(req payload.RenderRequest) error {
	body, err := payload.Compact(req)
	if err != nil {
		return err
	}
	return c.ValidateJSON(SchemaRenderRequest, body)
}

// ValidateJSON decodes data and validates it against the named schema. All
// violations are reported, not just the first.
func (c *Contract) ValidateJSON(schema string, data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("apispec: decode %s: %w", schema, err)
	}
	return c.Validate(schema, value)
}

// Validate checks a decoded JSON value against the named schema.
func (c *Contract) Validate(schema string, value any) error {
	ref, err := c.schema(schema)
	if err != nil {
		return err
	}
	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("apispec: %s: %w", schema, err)
	}
	return nil
}

func (c *Contract) schema(name string) (*openapi3.SchemaRef, error) {
	if c == nil || c.doc == nil || c.doc.Components == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	ref, ok := c.doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return ref, nil
}
