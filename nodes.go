package glint

import "fmt"

// node is one slot in a node store. Non-keyed content is addressed purely
// by slot position: the render pass that created a slot must find the same
// kind of node there on every later pass.
type node interface {
	// detach removes the slot's dom nodes from parent.
	detach(parent *DomNode)
	// appendTo re-attaches the slot's dom nodes under parent.
	appendTo(parent *DomNode)
	firstElement() *Element
	lastElement() *Element
}

// textNode is a text slot with its memoized content. cleanup, when set,
// runs once on detach; bound cells use it to drop their subscription.
type textNode struct {
	dom     *DomNode
	text    string
	cleanup func()
}

func (t *textNode) update(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.dom.SetText(text)
}

func (t *textNode) detach(parent *DomNode) {
	if t.cleanup != nil {
		t.cleanup()
		t.cleanup = nil
	}
	parent.RemoveChild(t.dom)
}
func (t *textNode) appendTo(parent *DomNode) { parent.AppendChild(t.dom) }
func (t *textNode) firstElement() *Element   { return nil }
func (t *textNode) lastElement() *Element    { return nil }

// componentNode marks a slot occupied by a mounted child component. The
// child renders directly into the owning element's dom; the slot tracks
// occupancy so teardown can flip the child's mount status, and holds the
// child's root node so vacating the slot removes it from the parent.
type componentNode struct {
	child   any // the *ChildComp the slot holds, for re-mount identity checks
	root    *DomNode
	unmount func()
}

func (c *componentNode) detach(parent *DomNode) {
	if c.unmount != nil {
		c.unmount()
	}
	// The child keeps its subtree intact for a later remount; only the
	// attachment to this slot's parent goes away. Quiet removal copes
	// with a root the application already moved elsewhere.
	if c.root != nil {
		parent.removeChildQuiet(c.root)
	}
}
func (c *componentNode) appendTo(parent *DomNode) {}
func (c *componentNode) firstElement() *Element   { return nil }
func (c *componentNode) lastElement() *Element    { return nil }

// nodeList is an ordered store of node slots, the positional diff baseline
// for an element's (or fragment's) children.
type nodeList struct {
	items []node
}

func (l *nodeList) count() int {
	return len(l.items)
}

// clear detaches and drops every slot.
func (l *nodeList) clear(parent *DomNode) {
	for _, it := range l.items {
		it.detach(parent)
	}
	l.items = l.items[:0]
}

// clearAfter detaches and drops the slots from index on. A pass that
// visited fewer children than the previous one calls this to remove the
// excess trailing nodes.
func (l *nodeList) clearAfter(index int, parent *DomNode) {
	if index >= len(l.items) {
		return
	}
	for _, it := range l.items[index:] {
		it.detach(parent)
	}
	l.items = l.items[:index]
}

func (l *nodeList) appendTo(parent *DomNode) {
	for _, it := range l.items {
		it.appendTo(parent)
	}
}

// element returns the element at a slot. A slot holding anything else is a
// positional-stability violation.
func (l *nodeList) element(index int) *Element {
	e, ok := l.items[index].(*Element)
	if !ok {
		panic(fmt.Sprintf("glint: child slot %d is not an element; render output must be positionally stable", index))
	}
	return e
}

func (l *nodeList) createElement(doc *Doc, tag string, parent, next *DomNode) *Element {
	e := newElement(doc, tag)
	e.insertBefore(parent, next)
	l.items = append(l.items, e)
	return e
}

// checkOrCreateElement creates a new element when index is one past the
// store, otherwise the existing element is reused and the parent's status
// carries through.
func (l *nodeList) checkOrCreateElement(doc *Doc, tag string, index int, parentStatus ElementStatus, parent, next *DomNode) ElementStatus {
	if index == len(l.items) {
		l.createElement(doc, tag, parent, next)
		return StatusJustCreated
	}
	return parentStatus
}

// checkOrCreateElementForList is the list-item variant: reuse is always
// Existing (list items don't inherit parent status), and new items may be
// produced by deep-cloning the first item instead of building from scratch.
func (l *nodeList) checkOrCreateElementForList(doc *Doc, tag string, index int, parent, next *DomNode, useTemplate bool) ElementStatus {
	if index < len(l.items) {
		return StatusExisting
	}
	if !useTemplate || len(l.items) == 0 {
		l.createElement(doc, tag, parent, next)
		return StatusJustCreated
	}
	first, ok := l.items[0].(*Element)
	if !ok {
		panic("glint: list template slot 0 is not an element")
	}
	clone := first.clone()
	clone.insertBefore(parent, next)
	l.items = append(l.items, clone)
	return StatusJustCloned
}

// grouped returns the fragment at a slot, creating it (and inserting its
// end marker) when index is one past the store.
func (l *nodeList) grouped(doc *Doc, index int, parent, next *DomNode) *GroupedNodes {
	if index == len(l.items) {
		g := newGroupedNodes(doc)
		parent.InsertBefore(g.end, next)
		l.items = append(l.items, g)
	}
	g, ok := l.items[index].(*GroupedNodes)
	if !ok {
		panic(fmt.Sprintf("glint: child slot %d is not a grouped fragment; render output must be positionally stable", index))
	}
	return g
}

// staticText writes a text node once; later passes are no-ops.
func (l *nodeList) staticText(doc *Doc, index int, text string, parent, next *DomNode) {
	if index == len(l.items) {
		l.addTextNode(doc, text, parent, next)
	}
}

// updateText writes a text node and re-checks it on every pass, touching
// the dom only when the content changed.
func (l *nodeList) updateText(doc *Doc, index int, text string, parent, next *DomNode) {
	if index == len(l.items) {
		l.addTextNode(doc, text, parent, next)
		return
	}
	t, ok := l.items[index].(*textNode)
	if !ok {
		panic(fmt.Sprintf("glint: child slot %d is not a text node; render output must be positionally stable", index))
	}
	t.update(text)
}

// teardown runs the non-dom release work for every slot, recursively.
func (l *nodeList) teardown() {
	for _, it := range l.items {
		switch n := it.(type) {
		case *textNode:
			if n.cleanup != nil {
				n.cleanup()
				n.cleanup = nil
			}
		case *componentNode:
			if n.unmount != nil {
				n.unmount()
			}
		case *Element:
			n.teardown()
		case *GroupedNodes:
			n.nodes.teardown()
		}
	}
}

func (l *nodeList) textAt(index int) *textNode {
	t, ok := l.items[index].(*textNode)
	if !ok {
		panic("glint: node slot does not hold a text node")
	}
	return t
}

func (l *nodeList) addTextNode(doc *Doc, text string, parent, next *DomNode) {
	t := &textNode{dom: doc.CreateText(text), text: text}
	parent.InsertBefore(t.dom, next)
	l.items = append(l.items, t)
}

// storeComponentHandle records a mounted child in slot 0, replacing
// whatever render output occupied it.
func (l *nodeList) storeComponentHandle(c *componentNode) {
	if len(l.items) > 0 {
		l.items[0] = c
		return
	}
	l.items = append(l.items, c)
}

func (l *nodeList) componentAt(index int) *componentNode {
	if index >= len(l.items) {
		return nil
	}
	c, _ := l.items[index].(*componentNode)
	return c
}

func (l *nodeList) firstElement() *Element {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0].firstElement()
}

func (l *nodeList) lastElement() *Element {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[len(l.items)-1].lastElement()
}

// domCount is how many dom children of the parent this store occupies.
func (l *nodeList) domCount() int {
	n := 0
	for _, it := range l.items {
		switch v := it.(type) {
		case *GroupedNodes:
			n += v.nodes.domCount() + 1 // content plus end marker
		case *componentNode:
			// renders into the parent element itself, no slot of its own
		default:
			_ = v
			n++
		}
	}
	return n
}

// cloneWithDom rebuilds the store against an already deep-cloned dom
// subtree: each slot is re-wrapped around the corresponding cloned child,
// starting at child offset (fragments keep their children inline under the
// shared parent, so nested calls pass a shifted offset).
func (l *nodeList) cloneWithDom(parent *DomNode, offset int) nodeList {
	out := nodeList{}
	cursor := offset
	for _, it := range l.items {
		switch v := it.(type) {
		case *Element:
			if v.keyed != nil {
				panic("glint: cannot clone an element that contains a keyed list")
			}
			clone := &Element{dom: parent.children[cursor], attrs: v.attrs.cloneForTemplate()}
			clone.nodes = v.nodes.cloneWithDom(clone.dom, 0)
			out.items = append(out.items, clone)
			cursor++
		case *textNode:
			out.items = append(out.items, &textNode{dom: parent.children[cursor], text: v.text})
			cursor++
		case *GroupedNodes:
			span := v.nodes.domCount()
			g := &GroupedNodes{
				active: v.active,
				end:    parent.children[cursor+span],
				nodes:  v.nodes.cloneWithDom(parent, cursor),
			}
			out.items = append(out.items, g)
			cursor += span + 1
		case *componentNode:
			panic("glint: mounting a component inside a cloned list item is not supported")
		}
	}
	return out
}

// GroupedNodes is a fragment: a sub-tree boundary marked by an invisible
// trailing marker node. Conditional match arms and mid-children lists
// render through one, so however many nodes the fragment holds, siblings
// after it stay anchored before nothing but the marker.
type GroupedNodes struct {
	// active is the currently rendered arm, or -1 when none has rendered.
	active int
	end    *DomNode
	nodes  nodeList
}

func newGroupedNodes(doc *Doc) *GroupedNodes {
	return &GroupedNodes{
		active: -1,
		end:    doc.CreateMarker(),
	}
}

// setActiveIndex selects a conditional arm. Re-selecting the current arm
// is a no-op and reports Existing; switching arms clears the fragment and
// reports JustCreated so the arm's content builds from scratch.
func (g *GroupedNodes) setActiveIndex(index int, parent *DomNode) ElementStatus {
	if g.active == index {
		return StatusExisting
	}
	g.nodes.clear(parent)
	g.active = index
	return StatusJustCreated
}

func (g *GroupedNodes) detach(parent *DomNode) {
	g.nodes.clear(parent)
	parent.RemoveChild(g.end)
}

func (g *GroupedNodes) appendTo(parent *DomNode) {
	g.nodes.appendTo(parent)
	parent.AppendChild(g.end)
}

func (g *GroupedNodes) firstElement() *Element { return g.nodes.firstElement() }
func (g *GroupedNodes) lastElement() *Element  { return g.nodes.lastElement() }
