package component

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

func renderLayout(t *testing.T, ctx context.Context) *html.Node {
	t.Helper()

	var buff bytes.Buffer
	if err := Layout("Topics", templ.Raw("<p>body</p>")).Render(ctx, &buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err := html.Parse(&buff)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func find(n *html.Node, match func(n *html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestLayoutIndicatorStyles(t *testing.T) {
	type testCase struct {
		Name     string
		Config   *PageConfig
		Expected string
	}

	testCases := []testCase{
		{Name: "default", Config: nil, Expected: `{"includeIndicatorStyles":false}`},
		{Name: "disabled", Config: &PageConfig{IncludeIndicatorStyles: false}, Expected: `{"includeIndicatorStyles":false}`},
		{Name: "enabled", Config: &PageConfig{IncludeIndicatorStyles: true}, Expected: `{"includeIndicatorStyles":true}`},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			if tc.Config != nil {
				ctx = WithPageConfig(ctx, *tc.Config)
			}

			doc := renderLayout(t, ctx)

			meta := find(doc, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "meta" && attrValue(n, "name") == "htmx-config"
			})
			if meta == nil {
				t.Fatalf("expected an htmx-config meta element")
			}

			if e, g := tc.Expected, attrValue(meta, "content"); e != g {
				t.Errorf("htmx-config: expected '%v', got '%v'", e, g)
			}

			// The configuration must be read before htmx loads
			script := find(doc, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "script"
			})
			if script == nil {
				t.Fatalf("expected a script element")
			}

			metaFirst := false
			for s := meta; s != nil; s = s.NextSibling {
				if s == script {
					metaFirst = true
				}
			}
			if !metaFirst {
				t.Errorf("expected htmx-config meta element before htmx script")
			}

			style := find(doc, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "style"
			})
			if style != nil {
				t.Errorf("expected no inline style element")
			}
		})
	}
}

func TestLayoutNonce(t *testing.T) {
	ctx := httpCtx.SetNonce(context.Background(), "abc123")

	var buff bytes.Buffer
	if err := Layout("Topics", templ.Raw("<p>body</p>")).Render(ctx, &buff); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(buff.String(), `nonce="abc123"`) {
		t.Errorf("expected script nonce in '%s'", buff.String())
	}
}
