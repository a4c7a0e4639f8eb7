// Package apispec embeds the OpenAPI description of the rendering API and
// validates values against its schemas.
package apispec
