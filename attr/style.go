package attr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/tagtree/capability"
)

// ErrInvalidStyle is returned if a style declaration list cannot be parsed.
var ErrInvalidStyle = errors.New("invalid style declarations")

// Declaration is a single CSS property declaration.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d Declaration) String() string {
	s := d.Property + ": " + d.Value
	if d.Important {
		s += " !important"
	}
	return s
}

// Style is a `style` attribute holding a list of CSS declarations.
// Declarations are checked when the attribute is created, so a Style
// never holds unparsable CSS.
type Style struct {
	decls []Declaration
}

// ParseStyle parses a CSS declaration list, e.g.
//
//     color: red; margin-top: 1em !important
//
// Empty input yields an empty Style. Declarations without a property name
// or without a value are errors, as are blocks and unclosed strings.
func ParseStyle(css string) (Style, error) {
	src := strings.TrimSpace(css)
	if src == "" {
		return Style{}, nil
	}
	if err := scanDeclarations(src); err != nil {
		return Style{}, fmt.Errorf("%w: %v in %q", ErrInvalidStyle, err, css)
	}
	// douceur completes a declaration only at a terminating ';'
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		return Style{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	st := Style{decls: make([]Declaration, 0, len(decls))}
	for _, d := range decls {
		prop := strings.TrimSpace(d.Property)
		if prop == "" {
			return Style{}, fmt.Errorf("%w: missing property name in %q", ErrInvalidStyle, css)
		}
		value := strings.TrimSpace(d.Value)
		if value == "" {
			return Style{}, fmt.Errorf("%w: missing value for %q in %q", ErrInvalidStyle, prop, css)
		}
		st.decls = append(st.decls, Declaration{
			Property:  prop,
			Value:     value,
			Important: d.Important,
		})
	}
	return st, nil
}

// MustParseStyle is like ParseStyle, but panics on invalid input.
func MustParseStyle(css string) Style {
	st, err := ParseStyle(css)
	if err != nil {
		panic(err)
	}
	return st
}

// Declarations returns a copy of the declarations, in source order.
func (st Style) Declarations() []Declaration {
	decls := make([]Declaration, len(st.decls))
	copy(decls, st.decls)
	return decls
}

// Capabilities is part of interface capability.Bearer.
func (st Style) Capabilities() capability.Set {
	return defaultCaps
}

// Facts returns the single `style` fact.
func (st Style) Facts() []Fact {
	return []Fact{st.fact()}
}

func (st Style) fact() Fact {
	parts := make([]string, len(st.decls))
	for i, d := range st.decls {
		parts[i] = d.String()
	}
	return Fact{name: "style", value: strings.Join(parts, "; ")}
}

// Render returns `style="prop: value; …"`.
func (st Style) Render() string {
	return st.fact().Render()
}

// RenderWith renders like Render, but passes the value through esc first.
func (st Style) RenderWith(esc func(string) string) string {
	return st.fact().RenderWith(esc)
}

// scanDeclarations rejects input the declaration parser would silently
// truncate: braces end a declaration block, and scan errors end the input.
func scanDeclarations(src string) error {
	s := scanner.New(src)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%s at column %d", tok.Value, tok.Column)
		case scanner.TokenChar:
			if tok.Value == "{" || tok.Value == "}" {
				return fmt.Errorf("unexpected %q at column %d", tok.Value, tok.Column)
			}
		}
	}
}

var _ Multi = Style{}
