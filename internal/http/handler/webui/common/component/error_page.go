package component

import "github.com/a-h/templ"

type LinkItem struct {
	URL   string
	Label string
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Layout(vmodel.Message, Template(pages, "error", vmodel))
}
