// Package partials computes how a partial view should be rendered by a
// template engine: the engine-facing template identifier (after applying
// a naming convention), the effective locals, and the effective render
// options with the page layout always suppressed. It performs no I/O
// and never renders anything itself; rendering is delegated to an
// Engine implementation supplied by the host.
package partials
