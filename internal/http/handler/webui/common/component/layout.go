package component

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/core/model"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
)

// PageConfig holds the values the page bootstrap hands to client-side
// libraries.
type PageConfig struct {
	// htmx injects an inline <style> element for its request indicators
	// unless this is false. A strict style-src rejects that element.
	IncludeIndicatorStyles bool
}

type htmxConfig struct {
	IncludeIndicatorStyles bool `json:"includeIndicatorStyles"`
}

// HTMXConfig returns the content of the htmx-config meta element.
func (c PageConfig) HTMXConfig() (string, error) {
	data, err := json.Marshal(htmxConfig{
		IncludeIndicatorStyles: c.IncludeIndicatorStyles,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(data), nil
}

type pageConfigKey struct{}

func WithPageConfig(ctx context.Context, config PageConfig) context.Context {
	return context.WithValue(ctx, pageConfigKey{}, config)
}

func PageConfigFrom(ctx context.Context) PageConfig {
	config, ok := ctx.Value(pageConfigKey{}).(PageConfig)
	if !ok {
		return PageConfig{}
	}

	return config
}

const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

type LocaleOption struct {
	Tag      string
	Selected bool
}

type layoutVModel struct {
	Title      string
	Body       template.HTML
	Nonce      string
	HTMXConfig string
	HTMXScript string
	BaseURL    string
	Home       string
	Stylesheet string
	Login      string
	Logout     string
	User       model.User
	Anonymous  bool
	Locales    []LocaleOption
	Timezone   string
}

// Layout wraps body in the page skeleton shared by every page.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buff bytes.Buffer
		if err := body.Render(ctx, &buff); err != nil {
			return errors.WithStack(err)
		}

		htmxConfig, err := PageConfigFrom(ctx).HTMXConfig()
		if err != nil {
			return errors.WithStack(err)
		}

		formatter := httpCtx.Formatter(ctx)
		user := httpCtx.User(ctx)

		locales := make([]LocaleOption, 0)
		for _, tag := range localtime.SupportedLocales() {
			locales = append(locales, LocaleOption{
				Tag:      tag.String(),
				Selected: tag == formatter.Locale(),
			})
		}

		vmodel := layoutVModel{
			Title:      title,
			Body:       template.HTML(buff.String()),
			Nonce:      httpCtx.Nonce(ctx),
			HTMXConfig: htmxConfig,
			HTMXScript: HTMXScriptURL,
			BaseURL:    BaseURL(ctx),
			Home:       BaseURL(ctx, WithPath("topics/")),
			Stylesheet: BaseURL(ctx, WithPath("assets/style.css")),
			Login:      BaseURL(ctx, WithPath("auth/oidc/login"), WithValues("from", httpCtx.CurrentURL(ctx).RequestURI())),
			Logout:     BaseURL(ctx, WithPath("auth/oidc/logout")),
			User:       user,
			Anonymous:  model.IsAnonymous(user),
			Locales:    locales,
			Timezone:   formatter.Location().String(),
		}

		return Template(pages, "layout", vmodel).Render(ctx, w)
	})
}
