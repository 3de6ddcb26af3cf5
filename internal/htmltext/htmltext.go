package htmltext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is the readable content lifted out of a saved legal-portal page.
type Document struct {
	Title string
	Text  string
}

// FromHTML extracts readable text from a saved HTML page. Legal portals wrap
// the statute body in a well-known content container; that container is
// preferred, then <main>/<article>, then <body>. Headings, paragraphs, list
// items and table rows keep their line structure, while navigation, scripts
// and ad/comment blocks are skipped.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	title := strings.TrimSpace(pageTitle(node))

	content := findContentContainer(node)
	if content == nil {
		content = findFirst(node, "main")
	}
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}

	var b strings.Builder
	if content != nil {
		collectText(&b, content)
	}
	return Document{Title: title, Text: tidyLines(b.String())}
}

// contentMarkers are id/class fragments used by Vietnamese legal portals for
// the statute body container.
var contentMarkers = []string{"content1", "contentdoc", "toanvan", "noidung", "document-content"}

// skipMarkers are id/class fragments for blocks that never carry statute text.
var skipMarkers = []string{"banner", "menu", "sidebar", "advert", "quangcao", "comment", "binh-luan", "related", "lienquan"}

func findContentContainer(n *html.Node) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && attrContainsAny(cur, contentMarkers) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func pageTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		if attrContainsAny(n, skipMarkers) {
			return
		}
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "header":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "div":
			b.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "li", "tr", "div":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
}

func attrContainsAny(n *html.Node, needles []string) bool {
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if key != "id" && key != "class" {
			continue
		}
		val := strings.ToLower(attr.Val)
		for _, needle := range needles {
			if strings.Contains(val, needle) {
				return true
			}
		}
	}
	return false
}

// tidyLines trims lines, collapses internal whitespace runs, and keeps at
// most one consecutive blank line.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}
