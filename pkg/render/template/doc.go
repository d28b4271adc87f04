// Package template defines the template engine contract used to render diagram
// fragments, with a pongo2 implementation in the gotemplate subpackage.
package template
