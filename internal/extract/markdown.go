package extract

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func fromMarkdown(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var p paragraphs
	walkMarkdown(doc, source, &p)
	return p.String()
}

func walkMarkdown(node ast.Node, source []byte, p *paragraphs) {
	switch n := node.(type) {
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock,
		*ast.Image, *ast.RawHTML, *ast.ThematicBreak:
		return

	case *ast.Text:
		p.writeBytes(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			p.write(" ")
		}
		return

	case *ast.String:
		p.writeBytes(n.Value)
		return

	case *ast.AutoLink:
		p.writeBytes(n.Label(source))
		return

	case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
		walkMarkdownChildren(n, source, p)
		p.end()
		return
	}

	walkMarkdownChildren(node, source, p)
}

func walkMarkdownChildren(node ast.Node, source []byte, p *paragraphs) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		walkMarkdown(c, source, p)
	}
}
