package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type NodeTransformer interface {
	Transform(n ast.Node)
}

type NodeTransformerFunc func(n ast.Node)

func (f NodeTransformerFunc) Transform(n ast.Node) {
	f(n)
}

// Transformer applies its node transformers to every node of a parsed
// document.
type Transformer struct {
	transformers []NodeTransformer
}

func (t *Transformer) Transform(root *ast.Document, reader text.Reader, pc parser.Context) {
	// The walker never returns an error as node transformers cannot fail
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		for _, nodeTransformer := range t.transformers {
			nodeTransformer.Transform(n)
		}

		return ast.WalkContinue, nil
	})
}

var _ parser.ASTTransformer = &Transformer{}

// StripDataURL replaces inline data URLs of images and links.
var StripDataURL NodeTransformerFunc = func(n ast.Node) {
	stripDataURL := func(destination []byte) []byte {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(string(destination))), "data:") {
			destination = []byte("#stripped")
		}
		return destination
	}

	switch typ := n.(type) {
	case *ast.Image:
		typ.Destination = stripDataURL(typ.Destination)
	case *ast.Link:
		typ.Destination = stripDataURL(typ.Destination)
	}
}

// LazyImages defers the loading of every image until it nears the viewport.
var LazyImages NodeTransformerFunc = func(n ast.Node) {
	if image, ok := n.(*ast.Image); ok {
		image.SetAttributeString("loading", []byte("lazy"))
	}
}
