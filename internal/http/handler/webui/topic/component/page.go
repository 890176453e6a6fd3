package component

import (
	"embed"
	"html/template"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = component.ParseTemplates(templateFS, "templates/*.gohtml")

type TopicItem struct {
	ID        string
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Upvotes   int64
	Downvotes int64
	URL       string
}

type CommentItem struct {
	ID        string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Upvotes   int64
	Downvotes int64
	Content   template.HTML
}

type ListPageVModel struct {
	Topics      []TopicItem
	TotalCount  int64
	NewTopicURL string
	Pagination  component.Pagination
}

func ListPage(vmodel ListPageVModel) templ.Component {
	return component.Layout("Topics", component.Template(templates, "topic-list", vmodel))
}

type CreatePageVModel struct {
	Action  string
	Cancel  string
	Title   string
	Content string
	Error   string
}

func CreatePage(vmodel CreatePageVModel) templ.Component {
	return component.Layout("New topic", component.Template(templates, "topic-create", vmodel))
}

type ShowPageVModel struct {
	Topic         TopicItem
	Content       template.HTML
	Comments      []CommentItem
	TotalComments int64
	Pagination    component.Pagination
	ReplyURL      string
	BackURL       string
	Message       string
	Error         string
}

func ShowPage(vmodel ShowPageVModel) templ.Component {
	return component.Layout(vmodel.Topic.Title, component.Template(templates, "topic-show", vmodel))
}
