package glint

// ElementStatus describes how the current render pass obtained an element.
type ElementStatus uint8

const (
	// StatusExisting: the element was reused from the previous pass.
	StatusExisting ElementStatus = iota
	// StatusJustCreated: the element was created this pass.
	StatusJustCreated
	// StatusJustCloned: the element was deep-cloned from a template or a
	// sibling this pass. Clones carry attributes and content but no
	// listeners, so every listener must be rebound.
	StatusJustCloned
)

func (s ElementStatus) String() string {
	switch s {
	case StatusExisting:
		return "Existing"
	case StatusJustCreated:
		return "JustCreated"
	case StatusJustCloned:
		return "JustCloned"
	}
	return "unknown"
}

// Element pairs a live dom element with the caches the reconciler diffs
// against: the positional attribute cache and the element's child content.
type Element struct {
	dom   *DomNode
	attrs attrList

	// An element's content is either a positional node store or, for list
	// containers, a keyed list. keyed is nil until the element first
	// renders a keyed list.
	nodes nodeList
	keyed *KeyedList

	// cleanups run once when the element leaves the tree; bindings that
	// subscribe to reactive cells park their cancel functions here.
	cleanups []func()
}

func newElement(doc *Doc, tag string) *Element {
	return &Element{dom: doc.CreateElement(tag)}
}

// elementFromDom wraps an existing live node, e.g. a caller-supplied
// application root.
func elementFromDom(dom *DomNode) *Element {
	return &Element{dom: dom}
}

// Dom returns the live node this element wraps.
func (e *Element) Dom() *DomNode {
	return e.dom
}

func (e *Element) keyedList() *KeyedList {
	if e.keyed == nil {
		e.keyed = &KeyedList{}
	}
	return e.keyed
}

// clone duplicates the element for the template path: a deep platform
// clone plus a copy of the attribute cache with listener slots emptied.
// An element hosting a keyed list must never be cloned; the clone would
// share key identities with the original and corrupt both.
func (e *Element) clone() *Element {
	if e.keyed != nil {
		panic("glint: cannot clone an element that contains a keyed list")
	}
	domClone := e.dom.CloneNode()
	return &Element{
		dom:   domClone,
		attrs: e.attrs.cloneForTemplate(),
		nodes: e.nodes.cloneWithDom(domClone, 0),
	}
}

func (e *Element) insertBefore(parent, next *DomNode) {
	parent.InsertBefore(e.dom, next)
}

// node interface

func (e *Element) detach(parent *DomNode) {
	parent.RemoveChild(e.dom)
	e.teardown()
}

// teardown releases render-side resources in the subtree: component
// slots flip to unmounted, bound text nodes and bound lists drop their
// subscriptions. The dom itself is untouched; a detached subtree can be
// re-adopted.
func (e *Element) teardown() {
	for _, fn := range e.cleanups {
		fn()
	}
	e.cleanups = nil
	e.nodes.teardown()
	if e.keyed != nil {
		e.keyed.teardown()
	}
}

func (e *Element) addCleanup(fn func()) {
	e.cleanups = append(e.cleanups, fn)
}

func (e *Element) appendTo(parent *DomNode) {
	parent.AppendChild(e.dom)
}

func (e *Element) firstElement() *Element { return e }
func (e *Element) lastElement() *Element  { return e }
