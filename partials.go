package partials

// Locals holds the variable bindings handed to the template engine.
// Keys are unique by construction of the map; insertion order is irrelevant.
type Locals map[string]any

// RenderOptions holds engine-recognized render options.
// OptionLayout is the only key this package interprets; everything else
// is forwarded to the engine untouched.
type RenderOptions map[string]any

// OptionLayout is the render option controlling page layout wrapping.
// The resolver forces it to false in every descriptor it produces:
// a partial must never re-wrap itself in the page layout.
const OptionLayout = "layout"

// Descriptor is the result of resolving a partial: everything an engine
// needs to render it. Designed to be passed directly to Engine.Render.
type Descriptor struct {
	TemplateID string
	Locals     Locals
	Options    RenderOptions
}

// Engine renders a resolved template. Implementations are external to
// this package (see the gotemplate subpackage for an html/template
// adapter). Render is expected to fail with an engine-defined error when
// templateID does not resolve to a known template; such errors are
// surfaced to callers untouched.
type Engine interface {
	Render(templateID string, options RenderOptions, locals Locals) (string, error)
}

// LocalsArg is a sealed interface for the locals argument of Resolve.
// Only package constructors produce it: Mapping for explicit bindings,
// Value for a single value bound under the partial's own name. A nil
// LocalsArg means "no locals supplied" and binds nil under the partial's
// name, which is indistinguishable from Value(nil); callers needing
// precision should use Mapping.
type LocalsArg interface {
	isLocalsArg()
}

type mappingArg struct {
	locals Locals
}

func (mappingArg) isLocalsArg() {}

type valueArg struct {
	value any
}

func (valueArg) isLocalsArg() {}

// Mapping wraps explicit variable bindings used verbatim as the
// partial's locals. Mapping(nil) is an explicit empty mapping.
func Mapping(m Locals) LocalsArg {
	return mappingArg{locals: m}
}

// Value wraps a single value made available inside the partial under a
// variable named after the partial itself (its base name for nested
// names like "shared/header").
func Value(v any) LocalsArg {
	return valueArg{value: v}
}

// Arg is the ergonomic shorthand constructor: maps become Mapping,
// anything else becomes Value. It exists for call sites (template
// helpers in particular) that receive an untyped argument; Go code
// should prefer the explicit constructors.
func Arg(v any) LocalsArg {
	switch m := v.(type) {
	case nil:
		return nil
	case LocalsArg:
		return m
	case Locals:
		return Mapping(m)
	case map[string]any:
		return Mapping(Locals(m))
	default:
		return Value(v)
	}
}
