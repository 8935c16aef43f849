package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// newMarkdownEngine builds the goldmark engine for the web index. Automatic
// heading IDs make the table-of-contents anchors resolve.
func newMarkdownEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// HTML renders the markdown index as a standalone HTML page.
func HTML(meta Meta, modules []*docblock.Module) (string, error) {
	var body bytes.Buffer
	if err := newMarkdownEngine().Convert([]byte(Markdown(meta, modules)), &body); err != nil {
		return "", fmt.Errorf("markdown to html: %w", err)
	}

	title := html.EscapeString(fmt.Sprintf("%s - %s (%s)", meta.Project, meta.Version, meta.SHA))

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n</head>\n<body>\n", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.String(), nil
}
