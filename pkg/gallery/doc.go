// Package gallery renders the bundled preset catalog as a static HTML page.
// Preset text is sanitised before it reaches the template.
package gallery
