/*
Package htmlnode bridges tag trees to the node type of golang.org/x/net/html.

Converting a tag tree lets clients use tooling written for x/net/html,
e.g. CSS selectors from cascadia or html.Render. The bridge works in one
direction only; there is no way back from an html.Node to a tag tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlnode

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tagtree"
	"github.com/npillmayer/tagtree/attr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'tagtree.html'.
func tracer() tracing.Trace {
	return tracing.Select("tagtree.html")
}

// Convert maps the tree under node onto x/net/html nodes. Elements become
// html.ElementNode, text becomes html.TextNode. Attributes keep their
// order; composite attributes are expanded to one html.Attribute per fact.
// A nil node yields nil.
func Convert(node tagtree.Node) *html.Node {
	h := convert(node)
	if h != nil {
		tracer().Debugf("converted tree to html.Node <%s>", h.Data)
	}
	return h
}

// Document wraps the converted tree into an html.DocumentNode.
func Document(node tagtree.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	if h := convert(node); h != nil {
		doc.AppendChild(h)
	}
	return doc
}

func convert(node tagtree.Node) *html.Node {
	switch n := node.(type) {
	case tagtree.Text:
		return &html.Node{Type: html.TextNode, Data: n.Content()}
	case *tagtree.Element:
		if n == nil {
			return nil
		}
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     n.TagName(),
			DataAtom: atom.Lookup([]byte(n.TagName())),
			Attr:     attributes(n.Attributes()),
		}
		for _, ch := range n.Children() {
			if c := convert(ch); c != nil {
				h.AppendChild(c)
			}
		}
		return h
	}
	return nil
}

func attributes(attrs []attr.Attribute) []html.Attribute {
	var hattrs []html.Attribute
	for _, a := range attrs {
		facts := attr.FactsOf(a)
		if facts == nil {
			tracer().Errorf("cannot expand attribute of type %T, skipping", a)
			continue
		}
		for _, f := range facts {
			hattrs = append(hattrs, html.Attribute{Key: f.Name(), Val: f.Value()})
		}
	}
	return hattrs
}
