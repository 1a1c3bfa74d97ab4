/*
Package capability defines the dataless markers which govern what may be
composed with what in a tag tree.

A capability carries no data. Attribute values and nodes report the set of
capabilities they carry; element kinds declare the single capability they
require from their attributes and from their children. Membership is checked
once, when an element is constructed. Rendering never looks at capabilities.

Two markers are reserved: None (an element kind requiring it accepts no
attributes at all) and Empty (an element kind requiring it accepts no
children). No attribute value and no node ever carries one of them, and the
current tag catalog does not use them. They are in place for void elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package capability

import (
	"fmt"
	"strings"
)

// Capability is a named marker category.
type Capability uint8

// Capabilities known to the tag catalog.
const (
	None             Capability = iota // attribute side: no attributes accepted
	DefaultAttribute                   // attributes most elements share
	FlowElement                        // flow content: elements and text
	Empty                              // child side: no children accepted
	maxCapability
)

var capabilityNames = [...]string{
	None:             "None",
	DefaultAttribute: "DefaultAttribute",
	FlowElement:      "FlowElement",
	Empty:            "Empty",
}

func (c Capability) String() string {
	if c < maxCapability {
		return capabilityNames[c]
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// Reserved is true for markers which no attribute or node may carry.
// Requiring a reserved capability rejects every candidate.
func (c Capability) Reserved() bool {
	return c == None || c == Empty
}

// Set is a set of capabilities. The zero value is the empty set.
type Set uint16

// Of creates a set from a list of capabilities.
func Of(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s |= 1 << c
	}
	return s
}

// Has checks for membership of c.
func (s Set) Has(c Capability) bool {
	return s&(1<<c) != 0
}

// With returns s extended by c.
func (s Set) With(c Capability) Set {
	return s | 1<<c
}

// Empty is true for the empty set.
func (s Set) Empty() bool {
	return s == 0
}

func (s Set) String() string {
	var names []string
	for c := Capability(0); c < maxCapability; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Bearer is implemented by everything which may be checked against a
// capability: attribute values and nodes.
type Bearer interface {
	Capabilities() Set
}

// Admits checks whether b may be placed where capability required is demanded.
// Reserved capabilities never admit anything, and neither does a nil bearer.
func Admits(required Capability, b Bearer) bool {
	if b == nil || required.Reserved() {
		return false
	}
	caps := b.Capabilities()
	return caps.Has(required) && !caps.Has(None) && !caps.Has(Empty)
}
