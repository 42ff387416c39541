// Package extract converts documents into the plain narrative text the
// reader plays: markup, link targets, images and code are dropped and
// paragraphs are separated by blank lines.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Format is a document format recognised by Text.
type Format int

// Supported formats. Plain is the fallback for unknown extensions.
const (
	Plain Format = iota
	Markdown
	HTML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	default:
		return "plain"
	}
}

var unsupported = map[string]bool{
	".pdf": true, ".epub": true, ".doc": true, ".docx": true, ".odt": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".zip": true, ".gz": true,
}

// ext returns the lower-cased extension of a file name or URL.
func ext(name string) string {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		name = u.Path
	}
	return strings.ToLower(path.Ext(name))
}

// FormatOf picks a format from a file name or URL. A trailing .zst is
// ignored.
func FormatOf(name string) (Format, error) {
	name = strings.TrimSuffix(name, ".zst")
	e := ext(name)
	switch {
	case e == ".md" || e == ".markdown" || e == ".mdown" || e == ".mkd":
		return Markdown, nil
	case e == ".html" || e == ".htm" || e == ".xhtml":
		return HTML, nil
	case unsupported[e]:
		return Plain, fmt.Errorf("%w: %s", ErrUnsupported, e)
	default:
		return Plain, nil
	}
}

// Text reads a document and returns its narrative text. The format is
// chosen from name; names ending in .zst are decompressed first.
func Text(r io.Reader, name string) (string, error) {
	format, err := FormatOf(name)
	if err != nil {
		return "", err
	}

	if ext(name) == ".zst" {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("unable to create zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("unable to read document: %w", err)
	}

	switch format {
	case Markdown:
		return fromMarkdown(b), nil
	case HTML:
		s, err := fromHTML(b)
		if err != nil {
			return "", fmt.Errorf("unable to parse html: %w", err)
		}
		return s, nil
	default:
		return fromPlain(string(b)), nil
	}
}

// paragraphs accumulates text and joins finished paragraphs with blank
// lines. Whitespace inside a paragraph collapses to single spaces.
type paragraphs struct {
	done []string
	cur  strings.Builder
}

func (p *paragraphs) write(s string) {
	p.cur.WriteString(s)
}

func (p *paragraphs) writeBytes(b []byte) {
	p.cur.Write(b)
}

func (p *paragraphs) end() {
	if s := strings.Join(strings.Fields(p.cur.String()), " "); s != "" {
		p.done = append(p.done, s)
	}
	p.cur.Reset()
}

func (p *paragraphs) String() string {
	p.end()
	return strings.Join(p.done, "\n\n")
}

// fromPlain joins the lines of each paragraph with spaces, so hard-wrapped
// text reads as running prose. Blank lines separate paragraphs.
func fromPlain(s string) string {
	var p paragraphs
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			p.end()
			continue
		}
		p.write(line)
		p.write(" ")
	}
	return p.String()
}
