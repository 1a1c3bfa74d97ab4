package tagtree

import (
	"sync/atomic"

	"github.com/npillmayer/tagtree/attr"
	"github.com/npillmayer/tagtree/capability"
)

// Node is a renderable tree entity. The set of node types is closed:
// a Node is either an *Element or a Text.
type Node interface {
	capability.Bearer
	isNode()
}

// --- Element ---------------------------------------------------------------

// Element is a node with a tag, ordered attributes and ordered children.
// Elements are created by the factories of a Kind and are immutable
// afterwards.
type Element struct {
	kind       Kind
	attributes []attr.Attribute
	children   []Node
	owned      atomic.Bool // set as soon as the element becomes a child
}

func (*Element) isNode() {}

// Kind returns the element kind.
func (e *Element) Kind() Kind {
	return e.kind
}

// TagName returns the tag name, which is determined by the kind.
func (e *Element) TagName() string {
	return e.kind.Name
}

// Capabilities is part of interface capability.Bearer.
func (e *Element) Capabilities() capability.Set {
	return e.kind.Carries
}

// Attributes returns the attributes in insertion order.
// The returned slice is a copy.
func (e *Element) Attributes() []attr.Attribute {
	attrs := make([]attr.Attribute, len(e.attributes))
	copy(attrs, e.attributes)
	return attrs
}

// Children returns the children in insertion order.
// The returned slice is a copy.
func (e *Element) Children() []Node {
	children := make([]Node, len(e.children))
	copy(children, e.children)
	return children
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// HasParent is true if e has been placed into another element.
func (e *Element) HasParent() bool {
	return e.owned.Load()
}

func (e *Element) String() string {
	return Render(e)
}

// --- Text ------------------------------------------------------------------

var flowCaps = capability.Of(capability.FlowElement)

// Text is a leaf node holding literal content. It has neither a tag
// nor attributes, and may appear wherever flow content is allowed.
type Text struct {
	content string
}

// NewText creates a text node.
func NewText(content string) Text {
	return Text{content: content}
}

func (Text) isNode() {}

// Content returns the literal content.
func (t Text) Content() string {
	return t.content
}

// Capabilities is part of interface capability.Bearer.
func (t Text) Capabilities() capability.Set {
	return flowCaps
}

func (t Text) String() string {
	return t.content
}

var _ Node = Text{}
var _ Node = &Element{}
