package glint

import (
	"strconv"

	"go.uber.org/zap"
)

// ListMode selects how list items that don't exist yet are produced.
type ListMode uint8

const (
	// CreateNew builds every new item element from scratch.
	CreateNew ListMode = iota
	// CloneTemplate produces new items by deep-cloning a prototype item.
	// Cheaper for large lists of identical structure; cloned items report
	// StatusJustCloned so listeners get rebound.
	CloneTemplate
)

func (m ListMode) useTemplate() bool { return m == CloneTemplate }

// ElementUpdater renders one element for the current pass: its attributes
// against the positional attribute cache, then its children. A render
// function must emit the same attributes in the same order on every pass;
// the cache is addressed by emit position alone.
type ElementUpdater struct {
	doc     *Doc
	element *Element
	status  ElementStatus
	index   int // attribute slot cursor

	// A value written to a select-like element before its options exist
	// has no effect, so it is parked here and applied after the child
	// list has rendered.
	selectValue *string
}

func newElementUpdater(doc *Doc, element *Element, status ElementStatus) *ElementUpdater {
	return &ElementUpdater{doc: doc, element: element, status: status}
}

// Status reports how this pass obtained the element.
func (e *ElementUpdater) Status() ElementStatus { return e.status }

// Dom returns the live node being rendered.
func (e *ElementUpdater) Dom() *DomNode { return e.element.dom }

// finish runs the element's end-of-render work (deferred select value).
func (e *ElementUpdater) finish() {
	if e.selectValue != nil {
		e.element.dom.SetValue(*e.selectValue)
		e.selectValue = nil
	}
}

// Str sets a string attribute, writing to the dom only when the value
// differs from the previous pass.
func (e *ElementUpdater) Str(name, value string) *ElementUpdater {
	if e.element.attrs.checkStr(e.index, value) {
		e.element.dom.SetAttribute(name, value)
	}
	e.index++
	return e
}

// Bool sets a boolean attribute. True sets the attribute with an empty
// value, false removes it; the literal strings "true"/"false" are never
// written.
func (e *ElementUpdater) Bool(name string, value bool) *ElementUpdater {
	if e.element.attrs.checkBool(e.index, value) {
		if value {
			e.element.dom.SetAttribute(name, "")
		} else {
			e.element.dom.RemoveAttribute(name)
		}
	}
	e.index++
	return e
}

// Int sets an i32 attribute.
func (e *ElementUpdater) Int(name string, value int32) *ElementUpdater {
	if e.element.attrs.checkI32(e.index, value) {
		e.element.dom.SetAttribute(name, strconv.FormatInt(int64(value), 10))
	}
	e.index++
	return e
}

// Uint sets a u32 attribute.
func (e *ElementUpdater) Uint(name string, value uint32) *ElementUpdater {
	if e.element.attrs.checkU32(e.index, value) {
		e.element.dom.SetAttribute(name, strconv.FormatUint(uint64(value), 10))
	}
	e.index++
	return e
}

// Float sets an f64 attribute. Differences below the epsilon region do
// not count as changes.
func (e *ElementUpdater) Float(name string, value float64) *ElementUpdater {
	if e.element.attrs.checkF64(e.index, value) {
		e.element.dom.SetAttribute(name, strconv.FormatFloat(value, 'g', -1, 64))
	}
	e.index++
	return e
}

// Class sets the class attribute.
func (e *ElementUpdater) Class(value string) *ElementUpdater {
	return e.Str("class", value)
}

// ClassIf adds or removes a single class token based on on.
func (e *ElementUpdater) ClassIf(name string, on bool) *ElementUpdater {
	if e.element.attrs.checkBool(e.index, on) {
		if on {
			e.element.dom.AddClass(name)
		} else {
			e.element.dom.RemoveClass(name)
		}
	}
	e.index++
	return e
}

// ID sets the element id. Ids are written directly, not diffed.
func (e *ElementUpdater) ID(value string) *ElementUpdater {
	e.element.dom.SetAttribute("id", value)
	return e
}

// Title sets the title attribute.
func (e *ElementUpdater) Title(value string) *ElementUpdater { return e.Str("title", value) }

// Href sets the href attribute.
func (e *ElementUpdater) Href(value string) *ElementUpdater { return e.Str("href", value) }

// Placeholder sets the placeholder attribute.
func (e *ElementUpdater) Placeholder(value string) *ElementUpdater {
	return e.Str("placeholder", value)
}

// Type sets the type attribute.
func (e *ElementUpdater) Type(value string) *ElementUpdater { return e.Str("type", value) }

// Name sets the name attribute.
func (e *ElementUpdater) Name(value string) *ElementUpdater { return e.Str("name", value) }

// Disabled toggles the disabled attribute.
func (e *ElementUpdater) Disabled(value bool) *ElementUpdater { return e.Bool("disabled", value) }

// Hidden toggles the hidden attribute.
func (e *ElementUpdater) Hidden(value bool) *ElementUpdater { return e.Bool("hidden", value) }

// Selected toggles the selected attribute.
func (e *ElementUpdater) Selected(value bool) *ElementUpdater { return e.Bool("selected", value) }

// Checked sets the checked property on an input element.
func (e *ElementUpdater) Checked(value bool) *ElementUpdater {
	if e.element.attrs.checkBool(e.index, value) {
		if e.element.dom.Tag() == "input" {
			e.element.dom.SetChecked(value)
		} else {
			Logger().Warn("Checked called on an element that is not <input>",
				zap.String("tag", e.element.dom.Tag()))
		}
	}
	e.index++
	return e
}

// Value sets the value property on an input, select, or textarea element.
// For selects the write is deferred until the option children have
// rendered; setting a select's value before its options exist has no
// effect on the platform.
func (e *ElementUpdater) Value(value string) *ElementUpdater {
	if e.element.attrs.checkStr(e.index, value) {
		switch e.element.dom.Tag() {
		case "input", "textarea":
			e.element.dom.SetValue(value)
		case "select":
			v := value
			e.selectValue = &v
		default:
			Logger().Warn("Value called on an element that is not <input>, <select>, <textarea>",
				zap.String("tag", e.element.dom.Tag()))
		}
	}
	e.index++
	return e
}

// Focus requests focus for the element when value is true.
func (e *ElementUpdater) Focus(value bool) *ElementUpdater {
	if value {
		e.element.dom.Focus()
	}
	return e
}

// On binds a listener for an event type. Listener slots participate in
// the positional cache, but listeners are only bound when the element's
// status is not Existing: a freshly created element has none yet, and a
// cloned element carries none because platform clones drop them.
func (e *ElementUpdater) On(event string, l Listener) *ElementUpdater {
	if e.status == StatusExisting {
		e.index++
		return e
	}
	e.element.dom.AddListener(event, l)
	e.element.attrs.storeListener(e.index, l)
	e.index++
	return e
}

// OnClick binds a click listener.
func (e *ElementUpdater) OnClick(l Listener) *ElementUpdater { return e.On(EventClick, l) }

// OnDblClick binds a double-click listener.
func (e *ElementUpdater) OnDblClick(l Listener) *ElementUpdater { return e.On(EventDblClick, l) }

// OnChange binds a change listener.
func (e *ElementUpdater) OnChange(l Listener) *ElementUpdater { return e.On(EventChange, l) }

// OnKeyPress binds a keypress listener.
func (e *ElementUpdater) OnKeyPress(l Listener) *ElementUpdater { return e.On(EventKeyPress, l) }

// OnBlur binds a blur listener.
func (e *ElementUpdater) OnBlur(l Listener) *ElementUpdater { return e.On(EventBlur, l) }

// OnFocus binds a focus listener.
func (e *ElementUpdater) OnFocus(l Listener) *ElementUpdater { return e.On(EventFocus, l) }

// Statics switches to static attribute mode: values are applied only when
// the element was just created and are never memoized. Use it for
// attributes that cannot change between passes.
func (e *ElementUpdater) Statics() *StaticAttributes {
	return (*StaticAttributes)(e)
}

// StaticAttributes is ElementUpdater in static attribute mode. Static
// values consume no cache slot; listeners behave exactly as in update
// mode.
type StaticAttributes ElementUpdater

// Attrs switches back to update attribute mode.
func (s *StaticAttributes) Attrs() *ElementUpdater {
	return (*ElementUpdater)(s)
}

// Str applies a string attribute on creation only.
func (s *StaticAttributes) Str(name, value string) *StaticAttributes {
	if s.status == StatusJustCreated {
		s.element.dom.SetAttribute(name, value)
	}
	return s
}

// Bool applies a boolean attribute on creation only.
func (s *StaticAttributes) Bool(name string, value bool) *StaticAttributes {
	if s.status == StatusJustCreated && value {
		s.element.dom.SetAttribute(name, "")
	}
	return s
}

// Class applies the class attribute on creation only.
func (s *StaticAttributes) Class(value string) *StaticAttributes {
	return s.Str("class", value)
}

// On binds a listener; same rules as ElementUpdater.On, including the
// slot accounting, so static and update attributes can interleave.
func (s *StaticAttributes) On(event string, l Listener) *StaticAttributes {
	(*ElementUpdater)(s).On(event, l)
	return s
}

// Nodes renders the element's children through a positional walker. Any
// trailing slots the walker did not visit are removed: a pass that emits
// fewer children than the previous one shrinks the live tree to match.
func (e *ElementUpdater) Nodes(fn func(*NodesUpdater)) {
	n := &NodesUpdater{
		doc:          e.doc,
		parentStatus: e.status,
		parent:       e.element.dom,
		nodes:        &e.element.nodes,
		update:       true,
	}
	fn(n)
	n.nodes.clearAfter(n.index, n.parent)
}

// List renders the element's entire content as a positional (non-keyed)
// list of count items, each an element of the given tag.
func (e *ElementUpdater) List(tag string, mode ListMode, count int, item func(int, *ElementUpdater)) {
	renderPositionalList(e.doc, &e.element.nodes, tag, e.element.dom, nil, mode, count, item)
	e.finish()
}

// KeyedList renders the element's entire content as a keyed list. Items
// are matched to the previous pass by key, wherever they were, and moved
// rather than rebuilt; only genuinely new keys create elements and only
// vanished keys destroy them.
func (e *ElementUpdater) KeyedList(tag string, mode ListMode, count int, key func(int) Key, item func(int, *ElementUpdater)) {
	renderKeyedList(e.doc, e.element, tag, mode, count, key, item)
	e.finish()
}

// NodesUpdater walks an element's (or fragment's) children in positional
// order. Every visit consumes exactly one slot whether or not it touches
// the dom, so the structure stays aligned across passes.
type NodesUpdater struct {
	doc          *Doc
	index        int
	parentStatus ElementStatus
	parent       *DomNode
	next         *DomNode // insertion anchor; nil appends
	nodes        *nodeList
	update       bool
}

// requireRender reports whether this walker should do real work. In
// static mode only a just-created parent renders.
func (n *NodesUpdater) requireRender() bool {
	return n.update || n.parentStatus == StatusJustCreated
}

// Static runs fn with the walker in static mode: slots are still
// consumed, but content only renders while the parent is just created.
func (n *NodesUpdater) Static(fn func(*NodesUpdater)) {
	prev := n.update
	n.update = false
	fn(n)
	n.update = prev
}

// Text renders a text child, re-checked every pass.
func (n *NodesUpdater) Text(text string) {
	if n.requireRender() || n.index == n.nodes.count() {
		n.nodes.updateText(n.doc, n.index, text, n.parent, n.next)
	}
	n.index++
}

// StaticText renders a text child exactly once, at creation.
func (n *NodesUpdater) StaticText(text string) {
	n.nodes.staticText(n.doc, n.index, text, n.parent, n.next)
	n.index++
}

// Element renders an element child. The slot is created on first visit
// and reused afterwards; a slot holding a different node kind is fatal.
func (n *NodesUpdater) Element(tag string, fn func(*ElementUpdater)) {
	status := n.nodes.checkOrCreateElement(n.doc, tag, n.index, n.parentStatus, n.parent, n.next)
	element := n.nodes.element(n.index)
	n.index++
	if !n.requireRender() && status == StatusExisting {
		return
	}
	e := newElementUpdater(n.doc, element, status)
	fn(e)
	e.finish()
}

// Match renders one of several alternative fragments. Re-rendering the
// same arm updates its content in place; switching arms discards the old
// arm's nodes and builds the new arm from scratch. Siblings after the
// fragment are unaffected either way, because the fragment's content
// always sits before its end marker.
func (n *NodesUpdater) Match(arm int, fn func(*NodesUpdater)) {
	g := n.nodes.grouped(n.doc, n.index, n.parent, n.next)
	n.index++
	status := g.setActiveIndex(arm, n.parent)
	inner := &NodesUpdater{
		doc:          n.doc,
		parentStatus: status,
		parent:       n.parent,
		next:         g.end,
		nodes:        &g.nodes,
		update:       true,
	}
	fn(inner)
	inner.nodes.clearAfter(inner.index, inner.parent)
}

// List renders a positional (non-keyed) list of count items inside a
// fragment at this slot.
func (n *NodesUpdater) List(tag string, mode ListMode, count int, item func(int, *ElementUpdater)) {
	g := n.nodes.grouped(n.doc, n.index, n.parent, n.next)
	n.index++
	renderPositionalList(n.doc, &g.nodes, tag, n.parent, g.end, mode, count, item)
}

// renderPositionalList reconciles a non-keyed repeated-element list by
// position: item i maps to slot i, new trailing items are created (or
// cloned from item 0 in template mode), shrunk tails are removed.
func renderPositionalList(doc *Doc, nodes *nodeList, tag string, parent, next *DomNode, mode ListMode, count int, item func(int, *ElementUpdater)) {
	for i := 0; i < count; i++ {
		status := nodes.checkOrCreateElementForList(doc, tag, i, parent, next, mode.useTemplate())
		e := newElementUpdater(doc, nodes.element(i), status)
		item(i, e)
		e.finish()
	}
	nodes.clearAfter(count, parent)
}
