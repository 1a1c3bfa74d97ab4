/*
Package tagtree builds typed markup trees and renders them to markup text.

Overview

A tree consists of elements and text. Every element is of a kind (see type
Kind), taken from a small catalog. A kind fixes the tag name and declares two
capabilities: the one every attribute of the element must carry, and the one
every child of the element must carry. Capabilities are dataless markers from
package capability; attribute values live in package attr.

Trees are built bottom-up with checked factories:

    inner := tagtree.Div.Must([]attr.Attribute{attr.Class("component")},
        tagtree.NewText("Hello!"))
    root := tagtree.Span.Must(nil, inner)
    fmt.Println(tagtree.Render(root))
    // <span><div class="component">Hello!</div></span>

A factory rejects attributes and children lacking the required capability
(ErrCompositionViolation), before a tree containing them may ever reach the
renderer. After construction an element is immutable and owned by at most one
parent.

Rendering

Render is a pure function of the tree. Elements without children are written
in self-closing form ("<div />"), whether or not the tag is conventionally a
void element. Text content and attribute values are emitted verbatim, with no
escaping of markup-significant characters. Clients who need escaping create a
Renderer with option Escaping(true); note that this changes the output.

Independent trees, or the same tree, may be rendered from concurrent
goroutines without coordination.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tagtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tagtree'.
func tracer() tracing.Trace {
	return tracing.Select("tagtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tagtree: "+msg, msgargs...)
		panic(msg)
	}
}
