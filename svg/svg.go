package svg

import (
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// Namespace is the XML namespace declared on every document root.
const Namespace = "http://www.w3.org/2000/svg"

// Attributes is a set of XML attributes for element creation. Attributes
// are written in sorted key order so output is deterministic.
type Attributes map[string]string

// Element is a handle to one node in the tree. Further attribute and text
// mutation goes through the handle; creating children returns new handles.
type Element struct {
	el *etree.Element
}

// Elem creates a child element of the given tag, applies attrs and, when
// class is non-empty, a class attribute, and returns the child's handle.
func (e *Element) Elem(tag string, attrs Attributes, class string) *Element {
	child := e.el.CreateElement(tag)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		child.CreateAttr(k, attrs[k])
	}
	if class != "" {
		child.CreateAttr("class", class)
	}
	return &Element{el: child}
}

// Attr sets (or replaces) a single attribute and returns the element for
// chaining.
func (e *Element) Attr(key, value string) *Element {
	e.el.CreateAttr(key, value)
	return e
}

// AttrValue returns the value of an attribute, or the empty string when the
// attribute is absent.
func (e *Element) AttrValue(key string) string {
	return e.el.SelectAttrValue(key, "")
}

// Text replaces the element's character data and returns the element for
// chaining.
func (e *Element) Text(text string) *Element {
	e.el.SetText(text)
	return e
}

// TextValue returns the element's character data.
func (e *Element) TextValue() string {
	return e.el.Text()
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.el.Tag
}

// Children returns handles to all child elements in document order.
func (e *Element) Children() []*Element {
	kids := e.el.ChildElements()
	out := make([]*Element, len(kids))
	for i, k := range kids {
		out[i] = &Element{el: k}
	}
	return out
}

// Empty discards all children and character data, leaving the element ready
// to be rebuilt.
func (e *Element) Empty() *Element {
	for _, child := range e.el.ChildElements() {
		e.el.RemoveChild(child)
	}
	e.el.SetText("")
	return e
}

// Document is an SVG document: an element tree rooted at an <svg> node.
type Document struct {
	Element
	doc *etree.Document
}

// NewDocument creates an SVG document of the given pixel size. class, when
// non-empty, is set on the root element.
func NewDocument(width, height float64, class string) *Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("width", fmtSize(width))
	root.CreateAttr("height", fmtSize(height))
	if class != "" {
		root.CreateAttr("class", class)
	}
	return &Document{Element: Element{el: root}, doc: doc}
}

// Resize updates the document's width and height attributes.
func (d *Document) Resize(width, height float64) {
	d.Attr("width", fmtSize(width))
	d.Attr("height", fmtSize(height))
}

// String serializes the document with two-space indentation.
func (d *Document) String() (string, error) {
	d.doc.Indent(2)
	return d.doc.WriteToString()
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.doc.Indent(2)
	return d.doc.WriteTo(w)
}

// WriteToFile serializes the document to the named file.
func (d *Document) WriteToFile(path string) error {
	d.doc.Indent(2)
	return d.doc.WriteToFile(path)
}

func fmtSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
