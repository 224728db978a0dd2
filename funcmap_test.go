package partials

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHelperRenderer() *Renderer {
	eng := &fakeEngine{
		renderFn: func(templateID string, options RenderOptions, locals Locals) (string, error) {
			return fmt.Sprintf("%s%v", templateID, locals), nil
		},
	}
	return NewRenderer(eng)
}

func TestHelpers_ContainsPartial(t *testing.T) {
	t.Parallel()
	fm := Helpers(newHelperRenderer())
	require.Contains(t, fm, "partial")
}

func TestPartialFunc_NoArgs(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	out, err := fn("header")
	require.NoError(t, err)
	assert.Equal(t, "_headermap[header:<nil>]", string(out))
}

func TestPartialFunc_ScalarValue(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	out, err := fn("greeting", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "_greetingmap[greeting:Hello]", string(out))
}

func TestPartialFunc_MappingValue(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	out, err := fn("header", map[string]any{"title": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "_headermap[title:Hi]", string(out))
}

func TestPartialFunc_ValueAndOptions(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{
		renderFn: func(_ string, options RenderOptions, _ Locals) (string, error) {
			return fmt.Sprintf("cache=%v layout=%v", options["cache"], options[OptionLayout]), nil
		},
	}
	fn := partialFunc(NewRenderer(eng))
	out, err := fn("header", "x", map[string]any{"cache": true, OptionLayout: true})
	require.NoError(t, err)
	assert.Equal(t, "cache=true layout=false", string(out))
}

func TestPartialFunc_CollectionForm(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{
		renderFn: func(_ string, _ RenderOptions, locals Locals) (string, error) {
			return fmt.Sprintf("<li>%v</li>", locals["item"]), nil
		},
	}
	fn := partialFunc(NewRenderer(eng))
	out, err := fn("item", map[string]any{"collection": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "<li>a</li>\n<li>b</li>", string(out))
}

func TestPartialFunc_CollectionFormWithLocalsAndOptions(t *testing.T) {
	t.Parallel()
	eng := &fakeEngine{
		renderFn: func(_ string, options RenderOptions, locals Locals) (string, error) {
			return fmt.Sprintf("%v/%v/%v", locals["item"], locals["sep"], options["cache"]), nil
		},
	}
	fn := partialFunc(NewRenderer(eng))
	out, err := fn("item", map[string]any{
		"collection": []any{"a"},
		"locals":     map[string]any{"sep": "|"},
		"cache":      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "a/|/true", string(out))
}

func TestPartialFunc_CollectionFormBadLocals(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	_, err := fn("item", map[string]any{"collection": []any{"a"}, "locals": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locals must be a map")
}

func TestPartialFunc_BadOptions(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	_, err := fn("header", "x", "not-a-map")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options must be a map")
}

func TestDict(t *testing.T) {
	t.Parallel()
	m, err := dict("title", "Hi", "count", 3)
	require.NoError(t, err)
	assert.Equal(t, Locals{"title": "Hi", "count": 3}, m)

	_, err = dict("title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd number")

	_, err = dict(1, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a string")
}

func TestPartialFunc_TooManyArgs(t *testing.T) {
	t.Parallel()
	fn := partialFunc(newHelperRenderer())
	_, err := fn("header", 1, map[string]any{}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many arguments")
}
