package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/skosovsky/partials"
)

// Ensures Engine implements partials.Engine.
var _ partials.Engine = (*Engine)(nil)

// ErrTemplateNotFound is returned when a template identifier does not
// resolve to a template in the wrapped set. Callers should use errors.Is.
var ErrTemplateNotFound = errors.New("gotemplate: template not found")

// Engine renders partials from a template set. Safe for concurrent use
// as long as the wrapped set is not mutated after construction.
type Engine struct {
	t *template.Template
}

// New wraps an already-parsed template set.
func New(t *template.Template) *Engine {
	return &Engine{t: t}
}

// Render implements partials.Engine.
func (e *Engine) Render(templateID string, _ partials.RenderOptions, locals partials.Locals) (string, error) {
	tpl := e.t.Lookup(templateID)
	if tpl == nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, locals); err != nil {
		return "", fmt.Errorf("gotemplate: error rendering %q: %w", templateID, err)
	}
	return buf.String(), nil
}
