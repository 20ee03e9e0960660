// Package glint is a retained-mode incremental renderer. It keeps a live
// tree of display nodes in sync with application state without building or
// diffing a virtual tree: every render pass walks the same positional
// structure as the previous pass and mutates only what changed, using
// per-slot memoized values as the diff baseline.
package glint

import "fmt"

// NodeKind identifies what a DomNode is.
type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindText
	KindMarker // invisible boundary node, used by grouped fragments
)

// Doc creates live nodes and counts mutations against them. The mutation
// counter exists so callers (and tests) can verify that a re-render with
// unchanged state performs zero writes.
type Doc struct {
	writes  int
	focused *DomNode
}

// NewDoc creates an empty document.
func NewDoc() *Doc {
	return &Doc{}
}

// Writes returns the number of mutations applied to nodes of this document
// since creation: attribute/text/property writes, class toggles, child
// insertions and removals, and listener bindings.
func (d *Doc) Writes() int {
	return d.writes
}

// Focused returns the node that last requested focus, or nil.
func (d *Doc) Focused() *DomNode {
	return d.focused
}

// CreateElement creates a detached element node.
func (d *Doc) CreateElement(tag string) *DomNode {
	return &DomNode{doc: d, kind: KindElement, tag: tag}
}

// CreateText creates a detached text node.
func (d *Doc) CreateText(text string) *DomNode {
	return &DomNode{doc: d, kind: KindText, text: text}
}

// CreateMarker creates a detached marker node. Markers occupy a child slot
// but carry no content; fragments use them as end boundaries.
func (d *Doc) CreateMarker() *DomNode {
	return &DomNode{doc: d, kind: KindMarker}
}

// DomAttr is one named attribute on an element. Order is preserved.
type DomAttr struct {
	Name  string
	Value string
}

type domListener struct {
	event string
	fn    Listener
}

// DomNode is a live display node. The reconciler mutates these in place;
// a backend (terminal painter, test harness) reads them.
//
// Misusing a node — attribute operations on text, detaching a non-child —
// panics: such calls mean the caller walked the tree incorrectly, which is
// a programming error, not a runtime condition.
type DomNode struct {
	doc      *Doc
	kind     NodeKind
	tag      string
	text     string
	attrs    []DomAttr
	classes  []string
	value    string
	hasValue bool
	checked  bool

	listeners []domListener

	parent   *DomNode
	children []*DomNode
}

// Kind returns the node kind.
func (n *DomNode) Kind() NodeKind { return n.kind }

// Tag returns the element tag, or "" for non-elements.
func (n *DomNode) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *DomNode) Text() string { return n.text }

// Parent returns the parent node, or nil for a detached node.
func (n *DomNode) Parent() *DomNode { return n.parent }

// Children returns the child slice. Callers must not mutate it.
func (n *DomNode) Children() []*DomNode { return n.children }

// ChildCount returns the number of children.
func (n *DomNode) ChildCount() int { return len(n.children) }

func (n *DomNode) mustElement(op string) {
	if n.kind != KindElement {
		panic(fmt.Sprintf("glint: %s on a non-element node", op))
	}
}

func (n *DomNode) childIndex(child *DomNode) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// NextSibling returns the node after n under its parent, or nil.
func (n *DomNode) NextSibling() *DomNode {
	if n.parent == nil {
		return nil
	}
	i := n.parent.childIndex(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// InsertBefore inserts child before next under n. A nil next appends. If
// child is already in a tree it is detached first, so InsertBefore is also
// the move operation.
func (n *DomNode) InsertBefore(child, next *DomNode) {
	n.mustElement("InsertBefore")
	if child.parent != nil {
		child.parent.removeChildQuiet(child)
	}
	if next == nil {
		n.children = append(n.children, child)
	} else {
		i := n.childIndex(next)
		if i < 0 {
			panic("glint: InsertBefore anchor is not a child of this node")
		}
		n.children = append(n.children, nil)
		copy(n.children[i+1:], n.children[i:])
		n.children[i] = child
	}
	child.parent = n
	n.doc.writes++
}

// AppendChild appends child to n.
func (n *DomNode) AppendChild(child *DomNode) {
	n.InsertBefore(child, nil)
}

// RemoveChild detaches child from n.
func (n *DomNode) RemoveChild(child *DomNode) {
	n.mustElement("RemoveChild")
	if !n.removeChildQuiet(child) {
		panic("glint: RemoveChild of a node that is not a child")
	}
	n.doc.writes++
}

func (n *DomNode) removeChildQuiet(child *DomNode) bool {
	i := n.childIndex(child)
	if i < 0 {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	return true
}

// ClearContent removes every child of an element. This is what component
// teardown leaves behind: an empty root.
func (n *DomNode) ClearContent() {
	n.mustElement("ClearContent")
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.doc.writes++
}

// SetText replaces the content of a text node.
func (n *DomNode) SetText(text string) {
	if n.kind != KindText {
		panic("glint: SetText on a non-text node")
	}
	n.text = text
	n.doc.writes++
}

// SetAttribute sets a named attribute, keeping first-set order.
func (n *DomNode) SetAttribute(name, value string) {
	n.mustElement("SetAttribute")
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			n.doc.writes++
			return
		}
	}
	n.attrs = append(n.attrs, DomAttr{Name: name, Value: value})
	n.doc.writes++
}

// RemoveAttribute removes a named attribute if present.
func (n *DomNode) RemoveAttribute(name string) {
	n.mustElement("RemoveAttribute")
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			n.doc.writes++
			return
		}
	}
}

// Attr returns the value of a named attribute and whether it is present.
func (n *DomNode) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the ordered attribute list. Callers must not mutate it.
func (n *DomNode) Attrs() []DomAttr { return n.attrs }

// AddClass adds a class token if not present.
func (n *DomNode) AddClass(name string) {
	n.mustElement("AddClass")
	for _, c := range n.classes {
		if c == name {
			return
		}
	}
	n.classes = append(n.classes, name)
	n.doc.writes++
}

// RemoveClass removes a class token if present.
func (n *DomNode) RemoveClass(name string) {
	n.mustElement("RemoveClass")
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			n.doc.writes++
			return
		}
	}
}

// HasClass reports whether a class token is present.
func (n *DomNode) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns the class tokens. Callers must not mutate the slice.
func (n *DomNode) Classes() []string { return n.classes }

// SetValue sets the value property (inputs, selects, text areas).
func (n *DomNode) SetValue(v string) {
	n.mustElement("SetValue")
	n.value = v
	n.hasValue = true
	n.doc.writes++
}

// Value returns the value property.
func (n *DomNode) Value() string { return n.value }

// SetChecked sets the checked property.
func (n *DomNode) SetChecked(v bool) {
	n.mustElement("SetChecked")
	n.checked = v
	n.doc.writes++
}

// Checked returns the checked property.
func (n *DomNode) Checked() bool { return n.checked }

// Focus marks this node as the document's focused node.
func (n *DomNode) Focus() {
	n.mustElement("Focus")
	n.doc.focused = n
	n.doc.writes++
}

// AddListener binds a listener for the given event type. Listeners are not
// carried over by CloneNode; a cloned element starts with none.
func (n *DomNode) AddListener(event string, fn Listener) {
	n.mustElement("AddListener")
	n.listeners = append(n.listeners, domListener{event: event, fn: fn})
	n.doc.writes++
}

// Dispatch delivers an event to every listener bound for its type on this
// node. The event's Target is set to n.
func (n *DomNode) Dispatch(ev Event) {
	ev.Target = n
	for _, l := range n.listeners {
		if l.event == ev.Type {
			l.fn(ev)
		}
	}
}

// CloneNode deep-clones a node and its subtree. The clone is detached and
// carries no listeners at any depth.
func (n *DomNode) CloneNode() *DomNode {
	clone := &DomNode{
		doc:      n.doc,
		kind:     n.kind,
		tag:      n.tag,
		text:     n.text,
		value:    n.value,
		hasValue: n.hasValue,
		checked:  n.checked,
	}
	clone.attrs = append([]DomAttr(nil), n.attrs...)
	clone.classes = append([]string(nil), n.classes...)
	for _, c := range n.children {
		cc := c.CloneNode()
		cc.parent = clone
		clone.children = append(clone.children, cc)
	}
	return clone
}

// TextContent returns the concatenated text of the subtree, depth first.
func (n *DomNode) TextContent() string {
	if n.kind == KindText {
		return n.text
	}
	out := ""
	for _, c := range n.children {
		out += c.TextContent()
	}
	return out
}
