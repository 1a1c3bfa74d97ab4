package tagtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tagtree/attr"
	"github.com/npillmayer/tagtree/capability"
)

// plainAttr is an attribute carrying no capability at all.
type plainAttr struct{}

func (plainAttr) Capabilities() capability.Set { return capability.Of() }
func (plainAttr) Render() string               { return `plain="x"` }

var (
	voidKind = Kind{Name: "br", Attributes: capability.DefaultAttribute,
		Children: capability.Empty, Carries: flowCaps}
	bareKind = Kind{Name: "bare", Attributes: capability.None,
		Children: capability.FlowElement, Carries: flowCaps}
)

func TestCatalog(t *testing.T) {
	for _, name := range []string{"div", "span", "html"} {
		k, ok := Lookup(name)
		if !ok {
			t.Fatalf("expected %q in catalog", name)
		}
		if k.Name != name || k.Attributes != capability.DefaultAttribute || k.Children != capability.FlowElement {
			t.Errorf("unexpected catalog row %v", k)
		}
	}
	if _, ok := Lookup("table"); ok {
		t.Error("did not expect table in catalog")
	}
	kinds := Kinds()
	if len(kinds) != 3 || kinds[0].Name != "div" || kinds[2].Name != "span" {
		t.Errorf("unexpected kinds list %v", kinds)
	}
	if Div.Must(nil).TagName() != "div" {
		t.Error("expected tag name to be determined by kind")
	}
}

func TestRejectAttributeWithoutCapability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagtree")
	defer teardown()
	//
	_, err := Div.New(attrs(attr.ID("ok"), plainAttr{}))
	var cerr *CompositionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a CompositionError, got %v", err)
	}
	if !errors.Is(err, ErrCompositionViolation) {
		t.Error("expected error to match ErrCompositionViolation")
	}
	if cerr.Role != RoleAttribute || cerr.Index != 1 || cerr.Tag != "div" {
		t.Errorf("unexpected error details %+v", cerr)
	}
	t.Logf("error = %v", err)
}

func TestRejectNilAttributeAndChild(t *testing.T) {
	if _, err := Div.New(attrs(nil)); !errors.Is(err, ErrCompositionViolation) {
		t.Errorf("expected nil attribute to be rejected, got %v", err)
	}
	if _, err := Div.New(nil, nil); !errors.Is(err, ErrCompositionViolation) {
		t.Errorf("expected nil child to be rejected, got %v", err)
	}
	var e *Element
	if _, err := Div.New(nil, e); !errors.Is(err, ErrCompositionViolation) {
		t.Errorf("expected nil element child to be rejected, got %v", err)
	}
}

// wrappedElement satisfies Node by embedding, but is not a node of the tree.
type wrappedElement struct {
	*Element
}

type wrappedText struct {
	Text
}

func TestRejectForeignNodeTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagtree")
	defer teardown()
	//
	inner := Span.Must(nil)
	for i, ch := range []Node{
		wrappedElement{inner},
		wrappedElement{},
		wrappedText{NewText("x")},
	} {
		_, err := Div.New(nil, NewText("ok"), ch)
		var cerr *CompositionError
		if !errors.As(err, &cerr) {
			t.Errorf("%d: expected a CompositionError for %T, got %v", i, ch, err)
			continue
		}
		if cerr.Role != RoleChild || cerr.Index != 1 {
			t.Errorf("%d: unexpected error details %+v", i, cerr)
		}
		t.Logf("error = %v", err)
	}
	if inner.HasParent() {
		t.Error("expected wrapped element not to be adopted")
	}
}

func TestHtmlIsNotFlowContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagtree")
	defer teardown()
	//
	_, err := Div.New(nil, HTML.Must(nil))
	var cerr *CompositionError
	if !errors.As(err, &cerr) || cerr.Role != RoleChild {
		t.Errorf("expected html to be rejected as child of div, got %v", err)
	}
}

func TestReservedCapabilities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagtree")
	defer teardown()
	//
	if _, err := voidKind.New(nil); err != nil {
		t.Errorf("expected empty void element to be fine, got %v", err)
	}
	if _, err := voidKind.New(nil, NewText("x")); !errors.Is(err, ErrCompositionViolation) {
		t.Errorf("expected Empty kind to reject children, got %v", err)
	}
	if _, err := bareKind.New(attrs(attr.ID("x"))); !errors.Is(err, ErrCompositionViolation) {
		t.Errorf("expected None kind to reject attributes, got %v", err)
	}
	e, err := bareKind.New(nil, NewText("x"))
	if err != nil || Render(e) != "<bare>x</bare>" {
		t.Errorf("expected bare element to accept children, got %v", err)
	}
}

func TestInvalidKind(t *testing.T) {
	if _, err := (Kind{}).New(nil); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestExclusiveOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tagtree")
	defer teardown()
	//
	child := Span.Must(nil)
	if child.HasParent() {
		t.Fatal("expected fresh element to have no parent")
	}
	Div.Must(nil, child)
	if !child.HasParent() {
		t.Fatal("expected child to be owned")
	}
	if _, err := Div.New(nil, child); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("expected ErrAlreadyOwned, got %v", err)
	}
	text := NewText("shared")
	if _, err := Div.New(nil, text, text); err != nil {
		t.Errorf("expected text values to be re-usable, got %v", err)
	}
}

func TestOwnershipRollback(t *testing.T) {
	a := Span.Must(nil)
	owned := Span.Must(nil)
	Div.Must(nil, owned)
	if _, err := Div.New(nil, a, owned); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	if a.HasParent() {
		t.Error("expected ownership of a to be released after failure")
	}
	if _, err := Div.New(nil, a, a); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("expected duplicate child to be rejected, got %v", err)
	}
	if a.HasParent() {
		t.Error("expected ownership of a to be released after duplicate rejection")
	}
}

func TestElementIsImmutable(t *testing.T) {
	as := attrs(attr.ID("a"))
	chs := []Node{NewText("x")}
	e := Div.Must(as, chs...)
	as[0] = attr.ID("changed")
	chs[0] = NewText("changed")
	e.Attributes()[0] = attr.ID("changed")
	e.Children()[0] = NewText("changed")
	if got := Render(e); got != `<div id="a">x</div>` {
		t.Errorf("expected element to be unaffected by slice mutation, got %s", got)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic")
		}
	}()
	Div.Must(attrs(plainAttr{}))
}
