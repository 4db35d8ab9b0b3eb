// Package mixed extracts an ordered list of text and image-URL fragments
// from HTML clipboard data, as produced when copying out of a browser or
// rich-text editor.
package mixed

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
)

// FragmentKind tags one entry of a mixed-content list.
type FragmentKind int

const (
	// FragmentText is a run of text extracted from a text node.
	FragmentText FragmentKind = iota
	// FragmentImageURL is the source URL of an <img> element.
	FragmentImageURL
)

// Fragment is one entry of the mixed-content list, in document order.
type Fragment struct {
	Kind  FragmentKind
	Value string
}

// Parse walks HTML in document order and collects image sources and
// non-empty text runs. Script and style subtrees contribute nothing.
// An empty fragment list with a nil error means the HTML carried no
// usable content.
func Parse(htmlText string) ([]Fragment, error) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	var frags []Fragment
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch dom.NodeName(n) {
			case "script", "style", "template":
				return
			case "img":
				if src := dom.GetAttributeOr(n, "src", ""); src != "" {
					frags = append(frags, Fragment{Kind: FragmentImageURL, Value: src})
				}
				return
			}
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				frags = append(frags, Fragment{Kind: FragmentText, Value: text})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return frags, nil
}

// HasContent reports whether the HTML carries at least one image tag or
// text node, i.e. whether a paste should take the mixed-content branch.
func HasContent(htmlText string) bool {
	frags, err := Parse(htmlText)
	return err == nil && len(frags) > 0
}

// PlainText renders HTML clipboard data as markdown-flavored text for
// plain pastes. Falls back to the raw input when conversion fails.
func PlainText(htmlText string) string {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	text, err := conv.ConvertString(htmlText)
	if err != nil {
		return htmlText
	}
	return strings.TrimSpace(text)
}
