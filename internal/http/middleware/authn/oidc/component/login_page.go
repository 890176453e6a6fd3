package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = component.ParseTemplates(templateFS, "templates/*.gohtml")

type Provider struct {
	ID    string
	Label string
	// CSS class giving the provider button its brand color
	Class string
	URL   string
}

type LoginPageVModel struct {
	Providers []Provider
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return component.Layout("Log in", component.Template(templates, "login", vmodel))
}
