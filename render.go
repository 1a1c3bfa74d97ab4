package tagtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/tagtree/attr"
	"golang.org/x/net/html"
)

// Render renders a node to markup text.
//
// Text renders as its content. An element renders as
//
//     <tag attr1="v1" attr2="v2" />               if it has no children
//     <tag attr1="v1" attr2="v2">…children…</tag> otherwise
//
// Attributes and children appear in insertion order, children without any
// separator. Nothing is escaped. A nil node renders as the empty string.
func Render(node Node) string {
	var b strings.Builder
	r := Renderer{}
	err := r.render(&b, node, 1)
	assertThat(err == nil, "unlimited renderer failed: %v", err)
	return b.String()
}

// Renderer renders trees with a configuration different from Render's.
// The zero value renders exactly like Render.
type Renderer struct {
	escaping bool
	maxDepth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// Escaping makes a renderer HTML-escape text content and attribute values.
// This changes the output for content containing markup-significant
// characters; it is off by default.
func Escaping(on bool) Option {
	return func(r *Renderer) {
		r.escaping = on
	}
}

// MaxDepth limits the depth of trees a renderer accepts. The root is at
// depth 1. A limit of 0 means no limit.
func MaxDepth(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.maxDepth = n
	}
}

// NewRenderer creates a renderer with options, if you need any.
//
//     r := tagtree.NewRenderer(tagtree.Escaping(true), tagtree.MaxDepth(64))
//     s, err := r.Render(root)
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, option := range opts {
		option(r)
	}
	return r
}

// Render renders node to a string.
func (r *Renderer) Render(node Node) (string, error) {
	var b strings.Builder
	if err := r.render(&b, node, 1); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo renders node to w. Output is buffered and written in one go.
// If the tree is too deep, nothing is written to w.
func (r *Renderer) RenderTo(w io.Writer, node Node) error {
	if r.maxDepth > 0 { // fail before anything reaches w
		if d := Depth(node); d > r.maxDepth {
			return fmt.Errorf("%w: depth %d, maximum %d", ErrTooDeep, d, r.maxDepth)
		}
	}
	bw := bufio.NewWriter(w)
	if err := r.render(bw, node, 1); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderTo renders node to w with a renderer configured by opts.
func RenderTo(w io.Writer, node Node, opts ...Option) error {
	return NewRenderer(opts...).RenderTo(w, node)
}

// escapable is implemented by attributes which can escape their values.
type escapable interface {
	RenderWith(esc func(string) string) string
}

func (r *Renderer) render(w io.StringWriter, node Node, depth int) error {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return fmt.Errorf("%w: maximum is %d", ErrTooDeep, r.maxDepth)
	}
	switch n := node.(type) {
	case nil:
		return nil
	case Text:
		_, err := w.WriteString(r.text(n.content))
		return err
	case *Element:
		if n == nil {
			return nil
		}
		w.WriteString("<")
		w.WriteString(n.kind.Name)
		for _, a := range n.attributes {
			w.WriteString(" ")
			w.WriteString(r.attribute(a))
		}
		if len(n.children) == 0 {
			_, err := w.WriteString(" />")
			return err
		}
		w.WriteString(">")
		for _, ch := range n.children {
			if err := r.render(w, ch, depth+1); err != nil {
				return err
			}
		}
		w.WriteString("</")
		w.WriteString(n.kind.Name)
		_, err := w.WriteString(">")
		return err
	}
	assertThat(false, "unknown node type %T", node)
	return nil
}

func (r *Renderer) text(s string) string {
	if r.escaping {
		return html.EscapeString(s)
	}
	return s
}

func (r *Renderer) attribute(a attr.Attribute) string {
	if r.escaping {
		if e, ok := a.(escapable); ok {
			return e.RenderWith(html.EscapeString)
		}
	}
	return a.Render()
}

// Depth returns the depth of the tree rooted at node. A single node has
// depth 1, a nil node depth 0.
func Depth(node Node) int {
	e, ok := node.(*Element)
	if node == nil || (ok && e == nil) {
		return 0
	}
	if !ok {
		return 1
	}
	deepest := 0
	for _, ch := range e.children {
		if d := Depth(ch); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
