// Package goquery provides HTML text extraction backed by goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orsextract"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements orsextract.TextExtractor at compile time.
var _ orsextract.TextExtractor = (*TextExtractor)(nil)

// TextExtractor flattens an HTML document into whitespace-joined visible
// text. Block and inline elements are treated alike. The bodies of script,
// style and template elements are not text and are skipped.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses html and joins the trimmed content of its text nodes
// with single spaces. Whitespace-only nodes are skipped.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	// With scripting disabled, noscript content parses as markup.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", orsextract.Errorf(orsextract.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var parts []string
	for _, n := range doc.Nodes {
		parts = appendStrings(parts, n)
	}
	return strings.Join(parts, " "), nil
}

// appendStrings walks n depth-first and appends each non-empty trimmed text node.
func appendStrings(parts []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			parts = append(parts, s)
		}
		return parts
	}
	if n.Type == html.ElementNode && skipElement(n.Data) {
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendStrings(parts, c)
	}
	return parts
}

// skipElement reports whether the text under an element is code or inert
// markup rather than page text.
func skipElement(tag string) bool {
	switch tag {
	case "script", "style", "template":
		return true
	}
	return false
}
