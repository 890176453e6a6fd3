package utcdate

import (
	"bytes"
	"io"
	"strings"

	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute marks an element whose text is the localized rendering of the
// UTC timestamp it holds.
const Attribute = "data-utcdate"

type Result struct {
	// Total counts the marked elements whose text was replaced.
	Total   int
	Invalid int
	// Skipped counts the marked void elements, which cannot hold text.
	Skipped int
}

// Collect returns the marked elements under root, in document order.
func Collect(root *html.Node) []*html.Node {
	nodes := make([]*html.Node, 0)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, marked := attr(n, Attribute); marked {
				nodes = append(nodes, n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return nodes
}

// Elements returns the timestamp elements under root, in document order.
func Elements(root *html.Node) []localtime.Element {
	nodes := Collect(root)
	elements := make([]localtime.Element, len(nodes))
	for i, n := range nodes {
		elements[i] = toElement(n)
	}
	return elements
}

// Apply replaces the text of every marked element under root with its
// rendering. Marked elements are gathered before any of them is modified, so
// a marked element nested in another one is still rendered even though it is
// detached by its ancestor's replacement.
func Apply(root *html.Node, renderer localtime.Renderer) Result {
	var result Result

	for _, n := range Collect(root) {
		if isVoid(n) {
			result.Skipped++
			continue
		}

		rendering := renderer.Render(toElement(n))

		result.Total++
		if !rendering.Valid {
			result.Invalid++
		}

		setText(n, rendering.Text)
	}

	return result
}

// Rewrite parses an HTML document from r, applies the renderer to its marked
// elements and writes the document to w. Input whose first tag, past any
// comment, is not a doctype, html, head or body tag is handled as a fragment.
func Rewrite(w io.Writer, r io.Reader, renderer localtime.Renderer) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	if isDocument(data) {
		return rewriteDocument(w, data, renderer)
	}

	return rewriteFragment(w, data, renderer)
}

func rewriteDocument(w io.Writer, data []byte, renderer localtime.Renderer) (Result, error) {
	// The parser reads a byte order mark as text, which discards the doctype
	if bytes.HasPrefix(data, byteOrderMark) {
		if _, err := w.Write(byteOrderMark); err != nil {
			return Result{}, errors.WithStack(err)
		}
		data = data[len(byteOrderMark):]
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	result := Apply(doc, renderer)

	if err := html.Render(w, doc); err != nil {
		return result, errors.WithStack(err)
	}

	return result, nil
}

// rewriteFragment parses data in a template context, which accepts any
// content model including table rows and cells.
func rewriteFragment(w io.Writer, data []byte, renderer localtime.Renderer) (Result, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "template",
		DataAtom: atom.Template,
	}

	nodes, err := html.ParseFragment(bytes.NewReader(data), container)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	for _, n := range nodes {
		container.AppendChild(n)
	}

	result := Apply(container, renderer)

	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return result, errors.WithStack(err)
		}
	}

	return result, nil
}

func toElement(n *html.Node) localtime.Element {
	raw, _ := attr(n, Attribute)
	id, _ := attr(n, "id")

	return localtime.Element{
		ID:           id,
		RawTimestamp: raw,
	}
}

func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	n.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

var voidElements = map[atom.Atom]struct{}{
	atom.Area: {}, atom.Base: {}, atom.Br: {}, atom.Col: {}, atom.Embed: {},
	atom.Hr: {}, atom.Img: {}, atom.Input: {}, atom.Keygen: {}, atom.Link: {},
	atom.Meta: {}, atom.Param: {}, atom.Source: {}, atom.Track: {}, atom.Wbr: {},
}

// Void elements cannot hold text and html.Render refuses to serialize them
// with children.
func isVoid(n *html.Node) bool {
	_, void := voidElements[n.DataAtom]
	return void
}

var byteOrderMark = []byte("\xef\xbb\xbf")

var documentTags = []string{"!doctype", "html", "head", "body"}

func isDocument(data []byte) bool {
	data = bytes.TrimPrefix(data, byteOrderMark)

	for {
		data = bytes.TrimLeft(data, " \t\r\n\f")

		if !bytes.HasPrefix(data, []byte("<!--")) {
			break
		}

		end := bytes.Index(data[4:], []byte("-->"))
		if end < 0 {
			return false
		}

		data = data[4+end+3:]
	}

	for _, tag := range documentTags {
		if hasTagPrefix(data, tag) {
			return true
		}
	}

	return false
}

// hasTagPrefix reports whether data starts with an opening tag named name,
// so that "<head" does not match "<header>".
func hasTagPrefix(data []byte, name string) bool {
	prefix := "<" + name
	if len(data) < len(prefix) || !strings.EqualFold(string(data[:len(prefix)]), prefix) {
		return false
	}

	if len(data) == len(prefix) {
		return true
	}

	switch data[len(prefix)] {
	case '>', '/', ' ', '\t', '\r', '\n', '\f':
		return true
	default:
		return false
	}
}
