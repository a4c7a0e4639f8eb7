// Package font models the font descriptors carried by presets and payloads
// ("Family" or "Family:Weight") and the merged font list served by the
// rendering API.
package font
