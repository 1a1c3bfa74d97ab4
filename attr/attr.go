/*
Package attr implements attribute values for tag trees.

An attribute value is a declarative fact which knows how to render itself.
Most are simple name/value facts, rendering as

    name="value"

Values are emitted verbatim; quotes and other markup-significant characters
are not escaped. Clients who need escaping ask the renderer for it (see
option tagtree.Escaping).

Composite values expand to more than one fact when rendered. Data is the
data-* case.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

import (
	"strings"

	"github.com/npillmayer/tagtree/capability"
)

// Attribute is the interface every attribute value implements.
type Attribute interface {
	capability.Bearer
	Render() string // renders to one or more name="value" facts
}

// Multi is implemented by composite attributes. Facts expands a
// composite into its single facts, in rendering order.
type Multi interface {
	Attribute
	Facts() []Fact
}

// defaultCaps is the capability set of all attribute values of this package.
var defaultCaps = capability.Of(capability.DefaultAttribute)

// Fact is a single name/value attribute. Facts are immutable.
type Fact struct {
	name  string
	value string
}

// Named creates a general name/value fact.
func Named(name, value string) Fact {
	return Fact{name: name, value: value}
}

// Class creates a `class` attribute.
func Class(value string) Fact {
	return Fact{name: "class", value: value}
}

// ID creates an `id` attribute.
func ID(value string) Fact {
	return Fact{name: "id", value: value}
}

// Name returns the attribute name.
func (f Fact) Name() string {
	return f.name
}

// Value returns the attribute value.
func (f Fact) Value() string {
	return f.value
}

// Capabilities is part of interface capability.Bearer.
func (f Fact) Capabilities() capability.Set {
	return defaultCaps
}

// Render returns `name="value"`.
func (f Fact) Render() string {
	var b strings.Builder
	f.renderTo(&b, verbatim)
	return b.String()
}

// RenderWith renders like Render, but passes the value through esc first.
func (f Fact) RenderWith(esc func(string) string) string {
	var b strings.Builder
	f.renderTo(&b, esc)
	return b.String()
}

func (f Fact) renderTo(b *strings.Builder, esc func(string) string) {
	b.WriteString(f.name)
	b.WriteString(`="`)
	b.WriteString(esc(f.value))
	b.WriteByte('"')
}

func (f Fact) String() string {
	return f.Render()
}

func verbatim(s string) string {
	return s
}

// FactsOf expands any attribute into its single facts. Attributes which
// are neither facts nor composites yield nil.
func FactsOf(a Attribute) []Fact {
	switch x := a.(type) {
	case Fact:
		return []Fact{x}
	case Multi:
		return x.Facts()
	}
	return nil
}

var _ Attribute = Fact{}
