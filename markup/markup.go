// Package markup provides the Node and Tag values pipelines render into,
// backed by golang.org/x/net/html.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a rendered markup node.
type Node = *html.Node

// Text returns a text node. Its content is escaped when rendered.
func Text(s string) Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr builds an attribute for Element.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Element returns a tag that wraps its children in a new element named name
// carrying attrs.
//
// Children already attached to another tree are deep-copied before being
// appended, so the same node may be passed to several tags.
func Element(name string, attrs ...html.Attribute) func(children []Node) Node {
	return func(children []Node) Node {
		n := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Lookup([]byte(name)),
			Data:     name,
			Attr:     append([]html.Attribute(nil), attrs...),
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			if attached(c) {
				c = clone(c)
			}
			n.AppendChild(c)
		}
		return n
	}
}

var (
	Ul   = Element("ul")
	Ol   = Element("ol")
	Li   = Element("li")
	Dl   = Element("dl")
	Dt   = Element("dt")
	Dd   = Element("dd")
	Div  = Element("div")
	Span = Element("span")
	P    = Element("p")
)

// Fragment parses s as HTML found inside a <body> element and returns the
// resulting top-level nodes. s must come from a trusted source: it is not
// sanitized.
func Fragment(s string) ([]Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return nodes, nil
}

// Render writes the HTML serialization of n to w.
func Render(w io.Writer, n Node) error {
	return html.Render(w, n)
}

// String returns the HTML serialization of n. Serialization errors are
// ignored; use Render to observe them.
func String(n Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}

func attached(n Node) bool {
	return n.Parent != nil || n.PrevSibling != nil || n.NextSibling != nil
}

func clone(n Node) Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(clone(child))
	}
	return c
}
