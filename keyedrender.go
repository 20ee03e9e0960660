package glint

// renderKeyedList reconciles the element's content as a keyed list. Items
// keep their identity across passes: an element rendered for a key is the
// element that key gets next pass, wherever the key moved to. The walk is
// a single forward pass over the target order, placing each item directly
// at its final position, so the work is linear in the item count with no
// attempt to compute a minimal move set.
func renderKeyedList(doc *Doc, container *Element, tag string, mode ListMode, count int, key func(int) Key, item func(int, *ElementUpdater)) {
	list := container.keyedList()
	parent := container.dom

	list.preUpdate(count)

	// The cursor tracks the first dom node of the outgoing sequence that
	// has not been placed yet. Reused items already under the cursor just
	// advance it; everything else is inserted before it, which the
	// platform treats as a move for nodes already in the tree.
	var cursor *DomNode
	if len(list.buffer) > 0 && list.buffer[0] != nil {
		cursor = list.buffer[0].element.dom
	}
	list.drainOldInto()

	for i := 0; i < count; i++ {
		k := key(i)
		old, reuse := list.oldMap[k]

		var el *Element
		var status ElementStatus
		if reuse {
			delete(list.oldMap, k)
			el = old.element
			status = StatusExisting
			if el.dom == cursor {
				cursor = cursor.NextSibling()
			} else {
				parent.InsertBefore(el.dom, cursor)
			}
		} else {
			el, status = newKeyedItem(doc, list, tag, mode, i, item)
			parent.InsertBefore(el.dom, cursor)
		}

		u := newElementUpdater(doc, el, status)
		item(i, u)
		u.finish()
		list.active[i] = &KeyedElement{key: k, element: el}
	}

	// Keys absent from the new order: their elements are still in the
	// unplaced tail, remove them.
	for k, old := range list.oldMap {
		old.element.detach(parent)
		delete(list.oldMap, k)
	}
}

// newKeyedItem produces the element for a key seen for the first time. In
// template mode the first such item renders a detached prototype as a side
// effect; every new item is then a deep clone of it, reported as
// StatusJustCloned so listeners rebind while matching attribute values
// skip their dom writes.
func newKeyedItem(doc *Doc, list *KeyedList, tag string, mode ListMode, i int, item func(int, *ElementUpdater)) (*Element, ElementStatus) {
	if !mode.useTemplate() {
		return newElement(doc, tag), StatusJustCreated
	}
	if list.requireInitTemplate(func() *Element { return newElement(doc, tag) }) {
		tu := newElementUpdater(doc, list.template.element, StatusJustCreated)
		item(i, tu)
		tu.finish()
		list.template.rendered = true
	}
	return list.template.element.clone(), StatusJustCloned
}
