package partials

import (
	"fmt"
	"html/template"
)

// Helpers returns the template.FuncMap exposing the partial helper to
// view-authoring code:
//
//	{{ partial "header" }}
//	{{ partial "greeting" "Hello" }}
//	{{ partial "header" .Page (dict "cache" true) }}
//	{{ partial "item" (dict "collection" .Items) }}
//
// A single map argument containing a "collection" key selects the
// collection form; its "locals" key (optional) supplies explicit
// bindings and every other key is forwarded as an engine option. A
// mapping that needs a literal "collection" variable must go through
// the two-argument form.
func Helpers(rd *Renderer) template.FuncMap {
	return template.FuncMap{
		"partial": partialFunc(rd),
		"dict":    dict,
	}
}

// dict builds a map from alternating key/value pairs so template code
// can construct locals and options inline.
func dict(pairs ...any) (Locals, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("partials: dict: odd number of arguments (%d)", len(pairs))
	}
	m := make(Locals, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("partials: dict: key %d is not a string, got %T", i/2, pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}

func partialFunc(rd *Renderer) func(string, ...any) (template.HTML, error) {
	return func(name string, args ...any) (template.HTML, error) {
		var (
			s   string
			err error
		)
		switch len(args) {
		case 0:
			s, err = rd.Partial(name, nil, nil)
		case 1:
			req, ok, reqErr := collectionRequest(name, args[0])
			if reqErr != nil {
				return "", reqErr
			}
			if ok {
				s, err = rd.Do(req)
			} else {
				s, err = rd.Partial(name, Arg(args[0]), nil)
			}
		case 2:
			options, ok := asMap(args[1])
			if !ok {
				return "", fmt.Errorf("partials: partial %q: options must be a map, got %T", name, args[1])
			}
			s, err = rd.Partial(name, Arg(args[0]), RenderOptions(options))
		default:
			return "", fmt.Errorf("partials: partial %q: too many arguments (%d)", name, len(args))
		}
		if err != nil {
			return "", err
		}
		// Engine output is treated as already-escaped markup.
		return template.HTML(s), nil // #nosec G203
	}
}

func collectionRequest(name string, v any) (Request, bool, error) {
	m, ok := asMap(v)
	if !ok {
		return Request{}, false, nil
	}
	collection, ok := m["collection"]
	if !ok {
		return Request{}, false, nil
	}
	req := Request{Name: name, Collection: collection, Options: RenderOptions{}}
	for k, val := range m {
		switch k {
		case "collection":
		case "locals":
			lm, ok := asMap(val)
			if !ok {
				return Request{}, false, fmt.Errorf("partials: partial %q: locals must be a map, got %T", name, val)
			}
			req.Locals = Locals(lm)
		default:
			req.Options[k] = val
		}
	}
	return req, true, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Locals:
		return m, true
	case RenderOptions:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
