package extract

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var skipped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Img:      true,
	atom.Svg:      true,
	atom.Iframe:   true,
	atom.Template: true,
}

var blocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Ul: true, atom.Ol: true, atom.Dd: true, atom.Dt: true,
	atom.Blockquote: true, atom.Pre: true, atom.Table: true, atom.Tr: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
	atom.Figcaption: true, atom.Main: true, atom.Aside: true,
}

func fromHTML(source []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(source))
	if err != nil {
		return "", err
	}

	var p paragraphs
	walkHTML(doc, &p)
	return p.String(), nil
}

// walkHTML keeps link text but not link targets.
func walkHTML(n *html.Node, p *paragraphs) {
	switch n.Type {
	case html.TextNode:
		p.write(n.Data)
		return
	case html.ElementNode:
		if skipped[n.DataAtom] {
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	isBlock := n.Type == html.ElementNode && blocks[n.DataAtom]
	if isBlock {
		p.end()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, p)
	}
	if isBlock {
		p.end()
	}
}
