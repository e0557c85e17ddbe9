// Package format turns extracted email bodies into clean display text.
package format

import (
	"strings"

	"golang.org/x/net/html"
)

// HTML2Text strips all markup from an HTML document and returns its visible
// text. Block-level elements and <br> become newlines so paragraph structure
// survives. The function is total: input that fails to parse as HTML is
// returned with tags crudely removed rather than dropped.
func HTML2Text(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(stripTags(raw))
	}

	var buf strings.Builder
	renderText(doc, &buf)

	return tidyText(buf.String())
}

func renderText(n *html.Node, buf *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			buf.WriteString(collapseSpace(n.Data))
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head":
			return
		case "br":
			buf.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(c, buf)
	}

	if n.Type == html.ElementNode && isBlockElement(n.Data) {
		buf.WriteString("\n")
	}
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "ul", "ol", "tr", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "hr":
		return true
	}
	return false
}

// collapseSpace reduces every whitespace run to a single space while keeping
// the word boundaries at either end of the node.
func collapseSpace(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if startsWithSpace(s) {
		collapsed = " " + collapsed
	}
	if endsWithSpace(s) {
		collapsed += " "
	}
	return collapsed
}

func startsWithSpace(s string) bool {
	return s != strings.TrimLeft(s, " \t\r\n")
}

func endsWithSpace(s string) bool {
	return s != strings.TrimRight(s, " \t\r\n")
}

// tidyText trims every line and collapses runs of blank lines.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(s)
}

// stripTags is the last-resort cleanup for unparseable input: everything
// between angle brackets is dropped.
func stripTags(raw string) string {
	var buf strings.Builder
	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
