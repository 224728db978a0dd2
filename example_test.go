package partials_test

import (
	"fmt"
	"html/template"
	"os"

	"github.com/skosovsky/partials"
	"github.com/skosovsky/partials/gotemplate"
)

func ExampleResolver_Resolve() {
	r := partials.New()
	d, err := r.Resolve("greeting", partials.Value("Hello"), nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.TemplateID)
	fmt.Println(d.Locals["greeting"])
	fmt.Println(d.Options[partials.OptionLayout])
	// Output:
	// _greeting
	// Hello
	// false
}

func ExampleResolver_ResolveCollection() {
	r := partials.New()
	ds, err := r.ResolveCollection("item", []any{"a", "b", "c"}, nil)
	if err != nil {
		panic(err)
	}
	for _, d := range ds {
		fmt.Println(d.TemplateID, d.Locals["item"])
	}
	// Output:
	// _item a
	// _item b
	// _item c
}

func ExampleRenderer_Collection() {
	root := template.New("views")
	template.Must(root.New("_item").Parse(`<li>{{ .item }}</li>`))

	rd := partials.NewRenderer(gotemplate.New(root))
	out, err := rd.Collection("item", []any{"milk", "eggs"}, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <li>milk</li>
	// <li>eggs</li>
}

func ExampleHelpers() {
	root := template.New("views")
	rd := partials.NewRenderer(gotemplate.New(root))
	root.Funcs(partials.Helpers(rd))

	template.Must(root.New("_greeting").Parse(`<p>{{ .greeting }}</p>`))
	page := template.Must(root.New("page").Parse(`<div>{{ partial "greeting" "Hello" }}</div>`))

	if err := page.Execute(os.Stdout, nil); err != nil {
		panic(err)
	}
	// Output: <div><p>Hello</p></div>
}
