package component

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var funcs = template.FuncMap{
	"utc": UTC,
	"optionalUTC": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return UTC(t)
	},
}

var (
	shared = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml"))
	// html/template refuses to clone executed templates, so shared is only
	// ever cloned and this copy is the one executed.
	pages = template.Must(shared.Clone())
)

// ParseTemplates parses the templates of a page package on top of the shared
// partials (layout, pagination, timestamps).
func ParseTemplates(fsys fs.FS, patterns ...string) *template.Template {
	tmpl := template.Must(shared.Clone())
	return template.Must(tmpl.ParseFS(fsys, patterns...))
}

// Template renders the named template with data.
func Template(tmpl *template.Template, name string, data any) templ.Component {
	t := tmpl.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return errors.Errorf("template '%s' not found", name)
		})
	}

	return templ.FromGoHTML(t, data)
}
