/*
Package loader reads tag trees from YAML descriptions.

A description is a single node. An element is a mapping with exactly one
key, the tag name, mapped to the element's attributes and children:

    html:
      id: root
      children:
        - div:
            class: component
            data: {foo: bar, n: 1}
            style: "color: red"
            attributes: {title: greeting}
            children:
              - text: Hello!
              - span: {}
        - Plain strings are text, too.

Known attribute keys are id, class, data, style and attributes (the latter
for arbitrary name/value pairs). Mappings keep their source order, which
becomes the rendering order. Keys must be non-empty scalars and must not
repeat within a mapping, and a child must not be null.

Every element is built with the checked factory of its kind, so a loaded
tree always satisfies the composition rules of the tag catalog. Errors are
of type *Error and carry the line of the offending YAML node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tagtree"
	"github.com/npillmayer/tagtree/attr"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'tagtree.loader'.
func tracer() tracing.Trace {
	return tracing.Select("tagtree.loader")
}

// Errors wrapped by *Error.
var (
	ErrUnknownTag       = errors.New("unknown tag")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrMalformed        = errors.New("malformed tree description")
)

// Error is a loader error located in the YAML source.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, which may be one of the sentinel
// errors of this package, attr.ErrInvalidStyle or an error of the
// tagtree factories.
func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(n *yaml.Node, err error) error {
	return &Error{Line: n.Line, Err: err}
}

func malformed(n *yaml.Node, format string, args ...interface{}) error {
	return errorAt(n, fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformed}, args...)...))
}

// LoadFile reads a tree description from a file.
func LoadFile(path string) (tagtree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Infof("loading tree from %s", path)
	node, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Load reads a tree description from r.
func Load(r io.Reader) (tagtree.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &Error{Err: fmt.Errorf("%w: empty document", ErrMalformed)}
		}
		return nil, &Error{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, malformed(&doc, "expected a single document")
	}
	node, err := loadNode(doc.Content[0])
	if err != nil {
		tracer().Errorf("cannot load tree: %v", err)
		return nil, err
	}
	return node, nil
}

func loadNode(n *yaml.Node) (tagtree.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return tagtree.NewText(n.Value), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, malformed(n, "a node must have exactly one key, has %d", len(n.Content)/2)
		}
		key, val := n.Content[0], n.Content[1]
		if key.Kind != yaml.ScalarNode {
			return nil, malformed(key, "a tag name must be a scalar")
		}
		if key.Value == "text" {
			if val.Kind != yaml.ScalarNode {
				return nil, malformed(val, "text must be a scalar")
			}
			return tagtree.NewText(val.Value), nil
		}
		kind, ok := tagtree.Lookup(key.Value)
		if !ok {
			return nil, errorAt(key, fmt.Errorf("%w: %q", ErrUnknownTag, key.Value))
		}
		return loadElement(kind, key, val)
	}
	return nil, malformed(n, "unexpected YAML node")
}

func loadElement(kind tagtree.Kind, key, body *yaml.Node) (tagtree.Node, error) {
	var attrs []attr.Attribute
	var children []tagtree.Node
	switch {
	case isNull(body):
	case body.Kind == yaml.MappingNode:
		seen := make(map[string]bool, len(body.Content)/2)
		for i := 0; i+1 < len(body.Content); i += 2 {
			k, v := body.Content[i], body.Content[i+1]
			if err := checkKey(k, seen); err != nil {
				return nil, err
			}
			var err error
			switch k.Value {
			case "children":
				children, err = loadChildren(v)
			case "id":
				var s string
				if s, err = scalar(v); err == nil {
					attrs = append(attrs, attr.ID(s))
				}
			case "class":
				var s string
				if s, err = scalar(v); err == nil {
					attrs = append(attrs, attr.Class(s))
				}
			case "style":
				var s string
				var st attr.Style
				if s, err = scalar(v); err == nil {
					if st, err = attr.ParseStyle(s); err == nil {
						attrs = append(attrs, st)
					} else {
						err = errorAt(v, err)
					}
				}
			case "data":
				var entries []attr.Entry
				if entries, err = pairs(v); err == nil {
					attrs = append(attrs, attr.NewData(entries...))
				}
			case "attributes":
				var entries []attr.Entry
				if entries, err = pairs(v); err == nil {
					for _, e := range entries {
						attrs = append(attrs, attr.Named(e.Key, e.Value))
					}
				}
			default:
				err = errorAt(k, fmt.Errorf("%w: %q on <%s>", ErrUnknownAttribute, k.Value, kind.Name))
			}
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, malformed(body, "body of <%s> must be a mapping", kind.Name)
	}
	e, err := kind.New(attrs, children...)
	if err != nil {
		return nil, errorAt(key, err)
	}
	return e, nil
}

func loadChildren(n *yaml.Node) ([]tagtree.Node, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, malformed(n, "children must be a sequence")
	}
	children := make([]tagtree.Node, 0, len(n.Content))
	for _, c := range n.Content {
		if isNull(c) {
			return nil, malformed(c, "a child must not be null")
		}
		ch, err := loadNode(c)
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
	}
	return children, nil
}

func pairs(n *yaml.Node) ([]attr.Entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, malformed(n, "expected a mapping")
	}
	entries := make([]attr.Entry, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := checkKey(n.Content[i], seen); err != nil {
			return nil, err
		}
		v, err := scalar(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, attr.Entry{Key: n.Content[i].Value, Value: v})
	}
	return entries, nil
}

// checkKey rejects non-scalar, empty and repeated mapping keys.
func checkKey(k *yaml.Node, seen map[string]bool) error {
	if k.Kind != yaml.ScalarNode || isNull(k) || k.Value == "" {
		return malformed(k, "keys must be non-empty scalars")
	}
	if seen[k.Value] {
		return malformed(k, "duplicate key %q", k.Value)
	}
	seen[k.Value] = true
	return nil
}

func scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", malformed(n, "expected a scalar value")
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
