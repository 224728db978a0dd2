package partials

import (
	"fmt"
	"maps"
	"reflect"
)

// Resolver computes render descriptors for partials. Construct with New;
// fields must not be mutated after construction to ensure goroutine
// safety. Every call is stateless and independent.
type Resolver struct {
	convention NamingConvention
	defaults   RenderOptions
}

// New builds a Resolver with defensive copies and applies options.
// The default naming convention is ConventionUnderscorePrefixed.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaults != nil {
		r.defaults = maps.Clone(r.defaults)
	}
	return r
}

// Resolve computes the descriptor for a single partial render.
//
// The engine-facing identifier is the naming convention applied to name.
// Locals are arg's bindings for Mapping, or {base-name: value} for Value
// and for a nil arg. Options are the caller's options merged over the
// resolver defaults, with OptionLayout forced to false.
func (r *Resolver) Resolve(name string, arg LocalsArg, options RenderOptions) (Descriptor, error) {
	if err := validateName(name); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		TemplateID: r.convention.apply(name),
		Locals:     effectiveLocals(baseName(name), arg),
		Options:    r.mergeOptions(options),
	}, nil
}

// ResolveCollection computes one descriptor per collection member, in
// collection order. Each member is bound under the partial's base name
// for its iteration, as if passed via Value. An empty collection yields
// an empty sequence, not an error.
func (r *Resolver) ResolveCollection(name string, collection []any, options RenderOptions) ([]Descriptor, error) {
	return r.resolveCollection(name, collection, nil, options)
}

// Request is the explicit configuration form of a resolve call; it
// replaces trailing-argument inspection with named optional fields.
// When Collection is non-nil it must be a slice or array and Do resolves
// once per member; otherwise Do resolves a single render using Locals.
type Request struct {
	Name       string
	Collection any
	Locals     Locals
	Options    RenderOptions
}

// Do resolves a Request. In the collection form, explicit Locals are
// merged into every iteration beneath the member binding (the member
// wins on key conflict). Fails with ErrInvalidCollection when Collection
// is set but is not a slice or array.
func (r *Resolver) Do(req Request) ([]Descriptor, error) {
	if req.Collection == nil {
		var arg LocalsArg
		if req.Locals != nil {
			arg = Mapping(req.Locals)
		}
		d, err := r.Resolve(req.Name, arg, req.Options)
		if err != nil {
			return nil, err
		}
		return []Descriptor{d}, nil
	}
	members, err := asSequence(req.Collection)
	if err != nil {
		return nil, err
	}
	return r.resolveCollection(req.Name, members, req.Locals, req.Options)
}

func (r *Resolver) resolveCollection(name string, members []any, extra Locals, options RenderOptions) ([]Descriptor, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	id := r.convention.apply(name)
	base := baseName(name)
	var out []Descriptor
	for _, member := range members {
		locals := make(Locals, len(extra)+1)
		maps.Copy(locals, extra)
		locals[base] = member
		out = append(out, Descriptor{
			TemplateID: id,
			Locals:     locals,
			Options:    r.mergeOptions(options),
		})
	}
	return out, nil
}

func (r *Resolver) mergeOptions(options RenderOptions) RenderOptions {
	merged := make(RenderOptions, len(r.defaults)+len(options)+1)
	maps.Copy(merged, r.defaults)
	maps.Copy(merged, options)
	merged[OptionLayout] = false
	return merged
}

func effectiveLocals(base string, arg LocalsArg) Locals {
	switch a := arg.(type) {
	case mappingArg:
		if a.locals == nil {
			return Locals{}
		}
		return maps.Clone(a.locals)
	case valueArg:
		return Locals{base: a.value}
	default:
		return Locals{base: nil}
	}
}

// asSequence converts a slice or array of any element type to []any,
// preserving order.
func asSequence(collection any) ([]any, error) {
	if members, ok := collection.([]any); ok {
		return members, nil
	}
	v := reflect.ValueOf(collection)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidCollection, collection)
	}
	members := make([]any, v.Len())
	for i := range members {
		members[i] = v.Index(i).Interface()
	}
	return members, nil
}
