// Package preset exposes the example presets bundled with the playground,
// grouped by language, together with the output-dimension and gradient
// shortcuts. The data is embedded at build time and never mutated.
package preset
