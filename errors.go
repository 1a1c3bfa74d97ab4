package tagtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tagtree/capability"
)

// ErrCompositionViolation is matched by every *CompositionError.
var ErrCompositionViolation = errors.New("composition violation")

// ErrAlreadyOwned is returned if an element is placed into a second parent.
var ErrAlreadyOwned = errors.New("element already has a parent")

// ErrInvalidKind is returned for a kind without a tag name.
var ErrInvalidKind = errors.New("invalid element kind")

// ErrTooDeep is returned by a Renderer with a maximum depth set, if a tree
// exceeds it.
var ErrTooDeep = errors.New("tree exceeds maximum depth")

// Role names the place an offending value was meant for.
type Role string

// Roles of CompositionError.
const (
	RoleAttribute Role = "attribute"
	RoleChild     Role = "child"
)

// CompositionError reports an attribute or child lacking the capability
// required by an element kind.
type CompositionError struct {
	Tag       string                // tag name of the element under construction
	Role      Role                  // attribute or child
	Index     int                   // position within the attributes or children
	Required  capability.Capability // capability demanded by the kind
	Offending capability.Bearer     // the rejected value, may be nil
}

func (e *CompositionError) Error() string {
	found := capabilitiesOf(e.Offending)
	return fmt.Sprintf("%s: <%s> requires %s for %s #%d, got %T with %s",
		ErrCompositionViolation, e.Tag, e.Required, e.Role, e.Index, e.Offending, found)
}

// Unwrap makes CompositionError match ErrCompositionViolation.
func (e *CompositionError) Unwrap() error {
	return ErrCompositionViolation
}

// capabilitiesOf does not call into nodes of foreign types, which may wrap
// a nil element.
func capabilitiesOf(b capability.Bearer) capability.Set {
	if b == nil {
		return capability.Of()
	}
	if n, ok := b.(Node); ok && !isTreeNode(n) {
		return capability.Of()
	}
	return b.Capabilities()
}
