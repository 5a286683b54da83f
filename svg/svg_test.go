package svg

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument(300, 200, "chart")

	if got := doc.Tag(); got != "svg" {
		t.Errorf("root tag = %q, want svg", got)
	}
	if got := doc.AttrValue("xmlns"); got != Namespace {
		t.Errorf("xmlns = %q, want %q", got, Namespace)
	}
	if doc.AttrValue("width") != "300" || doc.AttrValue("height") != "200" {
		t.Errorf("size = %sx%s, want 300x200", doc.AttrValue("width"), doc.AttrValue("height"))
	}
	if got := doc.AttrValue("class"); got != "chart" {
		t.Errorf("class = %q, want chart", got)
	}
}

func TestNewDocumentWithoutClass(t *testing.T) {
	doc := NewDocument(10, 10, "")
	if got := doc.AttrValue("class"); got != "" {
		t.Errorf("class = %q, want none", got)
	}
}

func TestElemCreatesChildren(t *testing.T) {
	doc := NewDocument(100, 100, "")
	g := doc.Elem("g", nil, "series")
	g.Elem("path", Attributes{"d": "M0,0"}, "slice")

	kids := doc.Children()
	if len(kids) != 1 || kids[0].Tag() != "g" {
		t.Fatalf("document children = %v", kids)
	}
	if got := kids[0].AttrValue("class"); got != "series" {
		t.Errorf("group class = %q", got)
	}

	paths := kids[0].Children()
	if len(paths) != 1 || paths[0].Tag() != "path" {
		t.Fatalf("group children = %v", paths)
	}
	if got := paths[0].AttrValue("d"); got != "M0,0" {
		t.Errorf("path d = %q", got)
	}
}

func TestElemAttributeOrderDeterministic(t *testing.T) {
	render := func() string {
		doc := NewDocument(10, 10, "")
		doc.Elem("text", Attributes{"y": "2", "x": "1", "text-anchor": "middle"}, "label")
		out, err := doc.String()
		if err != nil {
			t.Fatalf("String() = %v", err)
		}
		return out
	}

	first := render()
	for range 5 {
		if got := render(); got != first {
			t.Fatal("serialized output varies between renders")
		}
	}
	if !strings.Contains(first, `text-anchor="middle" x="1" y="2"`) {
		t.Errorf("attributes not in sorted order: %s", first)
	}
}

func TestAttrReplaces(t *testing.T) {
	doc := NewDocument(10, 10, "")
	el := doc.Elem("g", nil, "a")
	el.Attr("class", "b")
	if got := el.AttrValue("class"); got != "b" {
		t.Errorf("class = %q, want b", got)
	}
}

func TestText(t *testing.T) {
	doc := NewDocument(10, 10, "")
	el := doc.Elem("text", nil, "").Text("42")
	if got := el.TextValue(); got != "42" {
		t.Errorf("text = %q, want 42", got)
	}
}

func TestEmptyDiscardsChildren(t *testing.T) {
	doc := NewDocument(10, 10, "chart")
	doc.Elem("g", nil, "a")
	doc.Elem("g", nil, "b").Text("leftover")

	doc.Empty()
	if got := len(doc.Children()); got != 0 {
		t.Errorf("children after Empty = %d, want 0", got)
	}
	// Root attributes survive.
	if got := doc.AttrValue("class"); got != "chart" {
		t.Errorf("class after Empty = %q, want chart", got)
	}

	// The document is rebuildable in place.
	doc.Elem("g", nil, "c")
	if got := len(doc.Children()); got != 1 {
		t.Errorf("children after rebuild = %d, want 1", got)
	}
}

func TestResize(t *testing.T) {
	doc := NewDocument(100, 100, "")
	doc.Resize(50.5, 25)
	if doc.AttrValue("width") != "50.5" || doc.AttrValue("height") != "25" {
		t.Errorf("size = %sx%s, want 50.5x25", doc.AttrValue("width"), doc.AttrValue("height"))
	}
}

func TestWriteTo(t *testing.T) {
	doc := NewDocument(10, 10, "chart")
	doc.Elem("g", nil, "series")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, `class="series"`) {
		t.Errorf("serialized output missing elements: %s", out)
	}
}
