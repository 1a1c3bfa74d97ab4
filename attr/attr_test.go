package attr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/tagtree/capability"
)

func TestFactRender(t *testing.T) {
	for i, tc := range []struct {
		a        Attribute
		expected string
	}{
		{ID("foo"), `id="foo"`},
		{Class("component"), `class="component"`},
		{Named("title", "x"), `title="x"`},
		{Named("title", ""), `title=""`},
		{Named("title", `say "hi" <b>`), `title="say "hi" <b>"`}, // no escaping
	} {
		if got := tc.a.Render(); got != tc.expected {
			t.Errorf("%d: expected %s, got %s", i, tc.expected, got)
		}
	}
}

func TestFactRenderWith(t *testing.T) {
	f := Named("title", "a<b")
	got := f.RenderWith(func(s string) string {
		return strings.ReplaceAll(s, "<", "&lt;")
	})
	if got != `title="a&lt;b"` {
		t.Errorf("unexpected escaped rendering %s", got)
	}
}

func TestAttributeCapabilities(t *testing.T) {
	for _, a := range []Attribute{ID("x"), Class("x"), NewData(), MustParseStyle("color: red")} {
		if !a.Capabilities().Has(capability.DefaultAttribute) {
			t.Errorf("expected %T to carry DefaultAttribute", a)
		}
		if a.Capabilities().Has(capability.None) {
			t.Errorf("expected %T to not carry the reserved None marker", a)
		}
	}
}

func TestDataSingle(t *testing.T) {
	d := NewData(Entry{"foo", "bar"})
	if d.Render() != `data-foo="bar"` {
		t.Errorf("unexpected rendering %s", d.Render())
	}
}

func TestDataOrder(t *testing.T) {
	d := NewData(Entry{"z", "1"}, Entry{"a", "2"}, Entry{"m", "3"})
	expected := `data-z="1" data-a="2" data-m="3"`
	if d.Render() != expected {
		t.Errorf("expected insertion order %s, got %s", expected, d.Render())
	}
	d = d.With("a", "two")
	expected = `data-z="1" data-a="two" data-m="3"`
	if d.Render() != expected {
		t.Errorf("expected replacement in place %s, got %s", expected, d.Render())
	}
}

func TestDataWithDoesNotMutate(t *testing.T) {
	d := NewData(Entry{"a", "1"})
	e := d.With("b", "2")
	if d.Len() != 1 || e.Len() != 2 {
		t.Errorf("expected With to copy, lengths are %d and %d", d.Len(), e.Len())
	}
	if v, ok := e.Get("b"); !ok || v != "2" {
		t.Errorf("expected b=2, got %q (%v)", v, ok)
	}
	if _, ok := d.Get("b"); ok {
		t.Error("expected original Data to not contain b")
	}
}

func TestDataFromMapIsSorted(t *testing.T) {
	d := DataFromMap(map[string]string{"b": "2", "c": "3", "a": "1"})
	expected := `data-a="1" data-b="2" data-c="3"`
	for i := 0; i < 10; i++ {
		if d.Render() != expected {
			t.Fatalf("expected %s, got %s", expected, d.Render())
		}
	}
}

func TestDataEmpty(t *testing.T) {
	if NewData().Render() != "" {
		t.Errorf("expected empty data to render empty, got %q", NewData().Render())
	}
}

func TestFactsOf(t *testing.T) {
	facts := FactsOf(NewData(Entry{"a", "1"}, Entry{"b", "2"}))
	if len(facts) != 2 || facts[0].Name() != "data-a" || facts[1].Value() != "2" {
		t.Errorf("unexpected facts %v", facts)
	}
	facts = FactsOf(ID("x"))
	if len(facts) != 1 || facts[0].Name() != "id" {
		t.Errorf("unexpected facts %v", facts)
	}
}

func TestStyle(t *testing.T) {
	st, err := ParseStyle("color: red; margin-top: 1em !important")
	if err != nil {
		t.Fatal(err)
	}
	expected := `style="color: red; margin-top: 1em !important"`
	if st.Render() != expected {
		t.Errorf("expected %s, got %s", expected, st.Render())
	}
	if len(st.Declarations()) != 2 {
		t.Errorf("expected 2 declarations, got %d", len(st.Declarations()))
	}
}

func TestStyleInvalid(t *testing.T) {
	for _, css := range []string{
		"color red",
		"color:",
		"color: ;",
		"color: red; margin:",
		"color: red }",
		"{color: red}",
		"color: red; } margin: 0",
		`content: "open`,
	} {
		st, err := ParseStyle(css)
		if !errors.Is(err, ErrInvalidStyle) {
			t.Errorf("%q: expected ErrInvalidStyle, got %v (%s)", css, err, st.Render())
		}
	}
}
