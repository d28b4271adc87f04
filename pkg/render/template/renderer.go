package template

// TemplateRenderer is the seam the fragment builder renders through. Output
// is escaped for XML attribute and text positions.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}
