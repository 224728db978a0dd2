// Package gotemplate provides a partials.Engine adapter over an
// already-parsed html/template set. The caller owns parsing and template
// naming; Render looks up the engine-facing identifier with Lookup and
// executes it with the supplied locals. Render options are ignored: a
// bare template set has no layout machinery, so the forced layout
// suppression is already the natural behavior.
package gotemplate
