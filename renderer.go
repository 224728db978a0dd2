package partials

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// Renderer binds a Resolver to an Engine and performs the actual render
// calls, joining collection output with newlines in collection order.
// Fields must not be mutated after construction.
type Renderer struct {
	engine      Engine
	resolver    *Resolver
	concurrency int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithResolver sets the resolver used for name and option resolution.
// By default the renderer uses New() with no options.
func WithResolver(r *Resolver) RendererOption {
	return func(rd *Renderer) {
		rd.resolver = r
	}
}

// WithConcurrency sets the maximum number of collection members rendered
// in parallel. Values below 2 keep rendering sequential. Output order
// always matches collection order regardless of this setting; the engine
// must be safe for concurrent use when it is raised.
func WithConcurrency(n int) RendererOption {
	return func(rd *Renderer) {
		rd.concurrency = n
	}
}

// NewRenderer builds a Renderer around engine and applies options.
func NewRenderer(engine Engine, opts ...RendererOption) *Renderer {
	rd := &Renderer{engine: engine}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.resolver == nil {
		rd.resolver = New()
	}
	return rd
}

// Partial resolves and renders a single partial. Engine errors are
// returned untouched.
func (rd *Renderer) Partial(name string, arg LocalsArg, options RenderOptions) (string, error) {
	d, err := rd.resolver.Resolve(name, arg, options)
	if err != nil {
		return "", err
	}
	return rd.engine.Render(d.TemplateID, d.Options, d.Locals)
}

// Collection resolves and renders the partial once per collection
// member and joins the results with "\n" in collection order. An empty
// collection renders to the empty string.
func (rd *Renderer) Collection(name string, collection []any, options RenderOptions) (string, error) {
	ds, err := rd.resolver.ResolveCollection(name, collection, options)
	if err != nil {
		return "", err
	}
	return rd.renderAll(ds)
}

// Do resolves a Request and renders the result: one string for the
// single form, newline-joined output for the collection form.
func (rd *Renderer) Do(req Request) (string, error) {
	ds, err := rd.resolver.Do(req)
	if err != nil {
		return "", err
	}
	return rd.renderAll(ds)
}

func (rd *Renderer) renderAll(ds []Descriptor) (string, error) {
	if len(ds) == 0 {
		return "", nil
	}
	out := make([]string, len(ds))
	if rd.concurrency > 1 && len(ds) > 1 {
		var g errgroup.Group
		g.SetLimit(rd.concurrency)
		for i, d := range ds {
			i, d := i, d
			g.Go(func() error {
				s, err := rd.engine.Render(d.TemplateID, d.Options, d.Locals)
				if err != nil {
					return err
				}
				out[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
		return strings.Join(out, "\n"), nil
	}
	for i, d := range ds {
		s, err := rd.engine.Render(d.TemplateID, d.Options, d.Locals)
		if err != nil {
			return "", err
		}
		out[i] = s
	}
	return strings.Join(out, "\n"), nil
}
