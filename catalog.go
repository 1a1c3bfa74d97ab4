package tagtree

import (
	"fmt"
	"sort"

	"github.com/npillmayer/tagtree/attr"
	"github.com/npillmayer/tagtree/capability"
)

// Kind is an element kind: a tag name together with the capabilities
// governing its composition.
type Kind struct {
	Name       string                // tag name, as it will be rendered
	Attributes capability.Capability // required from every attribute
	Children   capability.Capability // required from every child
	Carries    capability.Set        // capabilities of elements of this kind
}

func (k Kind) String() string {
	return fmt.Sprintf("<%s attr=%s child=%s is=%s>", k.Name, k.Attributes, k.Children, k.Carries)
}

// The tag catalog. Every row declares a tag name, the capability required
// from attributes and from children, and what an element of the kind may
// itself be used as. `html` is a document root and not flow content.
var catalog = map[string]Kind{
	"div":  {"div", capability.DefaultAttribute, capability.FlowElement, flowCaps},
	"span": {"span", capability.DefaultAttribute, capability.FlowElement, flowCaps},
	"html": {"html", capability.DefaultAttribute, capability.FlowElement, capability.Of()},
}

// Kinds of the catalog.
var (
	Div  = catalog["div"]
	Span = catalog["span"]
	HTML = catalog["html"]
)

// Lookup finds a kind in the catalog by tag name.
func Lookup(name string) (Kind, bool) {
	k, ok := catalog[name]
	return k, ok
}

// Kinds returns all kinds of the catalog, sorted by tag name.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog))
	for _, k := range catalog {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].Name < kinds[j].Name
	})
	return kinds
}

// New creates an element of kind k. Every attribute has to carry the
// capability k.Attributes and every child has to carry k.Children, otherwise
// New returns a *CompositionError. Children which are elements must not
// already have a parent (ErrAlreadyOwned). Children have to be either
// *Element or Text; other implementations of Node are rejected as well.
// On success the children are owned
// by the new element.
//
// New copies attrs and children; clients may re-use the slices.
func (k Kind) New(attrs []attr.Attribute, children ...Node) (*Element, error) {
	if k.Name == "" {
		return nil, ErrInvalidKind
	}
	for i, a := range attrs {
		if !capability.Admits(k.Attributes, a) {
			err := &CompositionError{Tag: k.Name, Role: RoleAttribute, Index: i,
				Required: k.Attributes, Offending: a}
			tracer().Debugf("rejecting: %v", err)
			return nil, err
		}
	}
	for i, ch := range children {
		if !isTreeNode(ch) || !capability.Admits(k.Children, ch) {
			err := &CompositionError{Tag: k.Name, Role: RoleChild, Index: i,
				Required: k.Children, Offending: ch}
			tracer().Debugf("rejecting: %v", err)
			return nil, err
		}
	}
	if err := adopt(k.Name, children); err != nil {
		tracer().Debugf("rejecting: %v", err)
		return nil, err
	}
	e := &Element{kind: k}
	if len(attrs) > 0 {
		e.attributes = make([]attr.Attribute, len(attrs))
		copy(e.attributes, attrs)
	}
	if len(children) > 0 {
		e.children = make([]Node, len(children))
		copy(e.children, children)
	}
	return e, nil
}

// Must is like New, but panics if the element cannot be created.
// It is intended for trees written as literals.
func (k Kind) Must(attrs []attr.Attribute, children ...Node) *Element {
	e, err := k.New(attrs, children...)
	if err != nil {
		panic(err)
	}
	return e
}

// isTreeNode is true for the node types of this package only. Types
// embedding *Element or Text satisfy Node as well, but cannot be rendered.
func isTreeNode(n Node) bool {
	switch n := n.(type) {
	case *Element:
		return n != nil
	case Text:
		return true
	}
	return false
}

// adopt marks all element children as owned. If one of them already is,
// ownership taken so far is released again.
func adopt(tag string, children []Node) error {
	for i, ch := range children {
		e, ok := ch.(*Element)
		if !ok {
			continue
		}
		if !e.owned.CompareAndSwap(false, true) {
			release(children[:i])
			return fmt.Errorf("%w: child #%d <%s> of <%s>", ErrAlreadyOwned, i, e.TagName(), tag)
		}
	}
	return nil
}

func release(children []Node) {
	for _, ch := range children {
		if e, ok := ch.(*Element); ok {
			e.owned.Store(false)
		}
	}
}
