package partials

// Option configures a Resolver (functional options pattern).
type Option func(*Resolver)

// WithNamingConvention sets how caller-facing names map to engine-facing
// template identifiers.
func WithNamingConvention(c NamingConvention) Option {
	return func(r *Resolver) {
		r.convention = c
	}
}

// WithDefaultOptions sets render options merged beneath caller-supplied
// options on every resolve (caller options override; OptionLayout is
// forced to false regardless).
func WithDefaultOptions(options RenderOptions) Option {
	return func(r *Resolver) {
		r.defaults = options
	}
}
