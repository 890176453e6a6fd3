package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// New returns a markdown converter producing HTML. Raw HTML blocks of the
// source are omitted from the output.
func New(transformers ...NodeTransformer) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&Transformer{transformers: transformers}, 999),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}
