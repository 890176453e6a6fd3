package utcdate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

func rewriteString(t *testing.T, input string, renderer localtime.Renderer) (string, Result) {
	t.Helper()

	var buff bytes.Buffer

	result, err := Rewrite(&buff, strings.NewReader(input), renderer)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buff.String(), result
}

func TestRewrite(t *testing.T) {
	formatter := localtime.NewFormatter()

	type testCase struct {
		Name            string
		Input           string
		Expected        string
		ExpectedTotal   int
		ExpectedInvalid int
		ExpectedSkipped int
	}

	testCases := []testCase{
		{
			Name:          "valid timestamp",
			Input:         `<span data-utcdate="2024-01-15T08:30:00Z">2024-01-15T08:30:00Z</span>`,
			Expected:      `<span data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</span>`,
			ExpectedTotal: 1,
		},
		{
			Name:            "invalid timestamp",
			Input:           `<span data-utcdate="not-a-date">not-a-date</span>`,
			Expected:        `<span data-utcdate="not-a-date">Invalid Date</span>`,
			ExpectedTotal:   1,
			ExpectedInvalid: 1,
		},
		{
			Name:     "no marked element",
			Input:    `<p>Nothing <em>to</em> see</p>`,
			Expected: `<p>Nothing <em>to</em> see</p>`,
		},
		{
			Name:            "valid and invalid are independent",
			Input:           `<ul><li data-utcdate="bogus">a</li><li data-utcdate="2024-01-15T08:30:00Z">b</li></ul>`,
			Expected:        `<ul><li data-utcdate="bogus">Invalid Date</li><li data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</li></ul>`,
			ExpectedTotal:   2,
			ExpectedInvalid: 1,
		},
		{
			Name:          "children are discarded",
			Input:         `<time data-utcdate="2024-01-15T08:30:00Z"><b>bold</b> text</time>`,
			Expected:      `<time data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</time>`,
			ExpectedTotal: 1,
		},
		{
			Name:            "empty attribute",
			Input:           `<span data-utcdate="">x</span>`,
			Expected:        `<span data-utcdate="">Invalid Date</span>`,
			ExpectedTotal:   1,
			ExpectedInvalid: 1,
		},
		{
			Name:            "void element skipped",
			Input:           `<input data-utcdate="2024-01-15T08:30:00Z"/>`,
			Expected:        `<input data-utcdate="2024-01-15T08:30:00Z"/>`,
			ExpectedSkipped: 1,
		},
		{
			Name:          "table row fragment",
			Input:         `<tr><td data-utcdate="2024-01-15T08:30:00Z">x</td></tr>`,
			Expected:      `<tr><td data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</td></tr>`,
			ExpectedTotal: 1,
		},
		{
			Name:          "table cells fragment",
			Input:         `<td data-utcdate="2024-01-15T08:30:00Z">x</td><td>y</td>`,
			Expected:      `<td data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</td><td>y</td>`,
			ExpectedTotal: 1,
		},
		{
			Name:          "header is not a head tag",
			Input:         `<header><time data-utcdate="2024-01-15T08:30:00Z"></time></header>`,
			Expected:      `<header><time data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</time></header>`,
			ExpectedTotal: 1,
		},
		{
			Name:          "byte order mark before doctype",
			Input:         "\xef\xbb\xbf<!DOCTYPE html><html><body><span data-utcdate=\"2024-01-15T08:30:00Z\"></span></body></html>",
			Expected:      "\xef\xbb\xbf<!DOCTYPE html><html><head></head><body><span data-utcdate=\"2024-01-15T08:30:00Z\">1/15/2024, 8:30:00 AM</span></body></html>",
			ExpectedTotal: 1,
		},
		{
			Name:          "body without doctype",
			Input:         `<body><span data-utcdate="2024-01-15T08:30:00Z"></span></body>`,
			Expected:      `<html><head></head><body><span data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</span></body></html>`,
			ExpectedTotal: 1,
		},
		{
			Name:          "text is escaped",
			Input:         `<span data-utcdate="2024-01-15T08:30:00Z"></span><p>a &amp; b</p>`,
			Expected:      `<span data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</span><p>a &amp; b</p>`,
			ExpectedTotal: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			output, result := rewriteString(t, tc.Input, formatter)

			if e, g := tc.Expected, output; e != g {
				t.Errorf("output: expected '%s', got '%s'", e, g)
			}

			if e, g := tc.ExpectedTotal, result.Total; e != g {
				t.Errorf("result.Total: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedInvalid, result.Invalid; e != g {
				t.Errorf("result.Invalid: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedSkipped, result.Skipped; e != g {
				t.Errorf("result.Skipped: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestRewriteDocument(t *testing.T) {
	formatter := localtime.NewFormatter()

	input := `<!DOCTYPE html>
<html><head><title>Topics</title></head>
<body><p>Posted <span data-utcdate="2024-01-15T08:30:00Z">2024-01-15T08:30:00Z</span></p></body></html>`

	output, result := rewriteString(t, input, formatter)

	if e, g := 1, result.Total; e != g {
		t.Errorf("result.Total: expected '%v', got '%v'", e, g)
	}

	if !strings.HasPrefix(output, "<!DOCTYPE html>") {
		t.Errorf("output: expected doctype to be preserved, got '%s'", output)
	}

	if !strings.Contains(output, "<title>Topics</title>") {
		t.Errorf("output: expected head to be preserved, got '%s'", output)
	}

	if !strings.Contains(output, `<span data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</span>`) {
		t.Errorf("output: expected localized timestamp, got '%s'", output)
	}
}

func TestRewriteDocumentWithLeadingComment(t *testing.T) {
	formatter := localtime.NewFormatter()

	input := "<!-- generated -->\n<!DOCTYPE html><html><head><title>T</title></head><body><span data-utcdate=\"2024-01-15T08:30:00Z\"></span></body></html>"

	output, result := rewriteString(t, input, formatter)

	if e, g := 1, result.Total; e != g {
		t.Errorf("result.Total: expected '%v', got '%v'", e, g)
	}

	if !strings.HasPrefix(output, "<!-- generated -->") {
		t.Errorf("output: expected leading comment to be preserved, got '%s'", output)
	}

	expectedParts := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head><title>T</title></head>",
		"<body>",
		`<span data-utcdate="2024-01-15T08:30:00Z">1/15/2024, 8:30:00 AM</span>`,
		"</body></html>",
	}

	for _, part := range expectedParts {
		if !strings.Contains(output, part) {
			t.Errorf("output: expected '%s' to be preserved, got '%s'", part, output)
		}
	}
}

func TestIsDocument(t *testing.T) {
	testCases := map[string]bool{
		"<!DOCTYPE html><p>":                       true,
		"  \n<!doctype html>":                      true,
		"<!-- a --><!-- b -->\n<html lang=\"fr\">": true,
		"\xef\xbb\xbf<!DOCTYPE html>":              true,
		"<HEAD><title>x</title>":                   true,
		"<body>":                                   true,
		"<header>":                                 false,
		"<bodyguard>":                              false,
		"<!-- unterminated <html>":                 false,
		"<tr><td>":                                 false,
		"":                                         false,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			if e, g := expected, isDocument([]byte(input)); e != g {
				t.Errorf("isDocument(%q): expected '%v', got '%v'", input, e, g)
			}
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	location, err := localtime.LoadLocation("UTC")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	formatter := localtime.NewFormatter(localtime.WithLocation(location))

	input := `<div><span data-utcdate="2024-01-15T08:30:00Z"></span><span data-utcdate="nope"></span><p>untouched</p></div>`

	once, _ := rewriteString(t, input, formatter)
	twice, _ := rewriteString(t, once, formatter)

	if e, g := once, twice; e != g {
		t.Errorf("second pass: expected '%s', got '%s'", e, g)
	}
}

func TestApplyLeavesUnmarkedElementsUntouched(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div id="a">first</div><span data-utcdate="2024-01-15T08:30:00Z">x</span><div id="b">second <i>nested</i></div>`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	before := textByID(doc)

	Apply(doc, localtime.NewFormatter())

	after := textByID(doc)

	for id, text := range before {
		if e, g := text, after[id]; e != g {
			t.Errorf("text of #%s: expected '%s', got '%s'", id, e, g)
		}
	}
}

func TestElementsPreservesDocumentOrder(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`
		<section data-utcdate="2024-01-01T00:00:00Z" id="outer">
			<span data-utcdate="2024-01-02T00:00:00Z" id="inner"></span>
		</section>
		<p data-utcdate="2024-01-03T00:00:00Z" id="last"></p>
	`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	elements := Elements(doc)

	expected := []localtime.Element{
		{ID: "outer", RawTimestamp: "2024-01-01T00:00:00Z"},
		{ID: "inner", RawTimestamp: "2024-01-02T00:00:00Z"},
		{ID: "last", RawTimestamp: "2024-01-03T00:00:00Z"},
	}

	if e, g := len(expected), len(elements); e != g {
		t.Fatalf("len(elements): expected '%v', got '%v'", e, g)
	}

	for i := range expected {
		if e, g := expected[i], elements[i]; e != g {
			t.Errorf("elements[%d]: expected '%v', got '%v'", i, e, g)
		}
	}
}

type recordingRenderer struct {
	renderer localtime.Renderer
	seen     []string
}

func (r *recordingRenderer) Render(el localtime.Element) localtime.Rendering {
	r.seen = append(r.seen, el.RawTimestamp)
	return r.renderer.Render(el)
}

func TestApplyRendersNestedMarkedElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div data-utcdate="bad"><span data-utcdate="2024-01-15T08:30:00Z"></span></div>`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	renderer := &recordingRenderer{renderer: localtime.NewFormatter()}

	result := Apply(doc, renderer)

	if e, g := 2, result.Total; e != g {
		t.Errorf("result.Total: expected '%v', got '%v'", e, g)
	}

	if e, g := "bad,2024-01-15T08:30:00Z", strings.Join(renderer.seen, ","); e != g {
		t.Errorf("renderer.seen: expected '%v', got '%v'", e, g)
	}
}

func textByID(root *html.Node) map[string]string {
	texts := map[string]string{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id, ok := attr(n, "id"); ok {
				texts[id] = textContent(n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return texts
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}

	return sb.String()
}
