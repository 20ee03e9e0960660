package glint

// VecOp identifies one structural change to a Vec.
type VecOp uint8

const (
	VecPush VecOp = iota
	VecPop
	VecInsert
	VecRemoveAt
	VecMove
	VecSwap
	VecClear
	VecReplace
)

// VecChange is the journal entry a Vec mutation emits to its bindings.
// Index and To are positions in the sequence after the change for
// inserts and moves, before the change for removals.
type VecChange[T any] struct {
	Op    VecOp
	Index int
	To    int
	Item  T
}

// Vec is a render-aware sequence. Lists bound to it through BindVec
// mirror each mutation with the matching dom operation instead of a
// full list re-render: a push appends one element, a move moves one.
type Vec[T any] struct {
	items []T
	subs  map[int]func(VecChange[T])
	next  int
}

// NewVec makes a sequence with the given initial items.
func NewVec[T any](items ...T) *Vec[T] {
	return &Vec[T]{items: items}
}

// Len returns the number of items.
func (v *Vec[T]) Len() int { return len(v.items) }

// At returns the item at index.
func (v *Vec[T]) At(index int) T { return v.items[index] }

// Items returns the backing slice; treat it as read-only.
func (v *Vec[T]) Items() []T { return v.items }

// Subscribe registers fn for change notifications and returns a function
// that removes the subscription.
func (v *Vec[T]) Subscribe(fn func(VecChange[T])) func() {
	if v.subs == nil {
		v.subs = make(map[int]func(VecChange[T]))
	}
	id := v.next
	v.next++
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

func (v *Vec[T]) notify(ch VecChange[T]) {
	for _, fn := range v.subs {
		fn := fn
		updates.add(func() { fn(ch) })
	}
	updates.execute()
}

// Push appends an item.
func (v *Vec[T]) Push(item T) {
	v.items = append(v.items, item)
	v.notify(VecChange[T]{Op: VecPush, Index: len(v.items) - 1, Item: item})
}

// Pop removes the last item; false when empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	last := len(v.items) - 1
	item := v.items[last]
	v.items[last] = zero
	v.items = v.items[:last]
	v.notify(VecChange[T]{Op: VecPop, Index: last, Item: item})
	return item, true
}

// Insert places an item at index, shifting the tail right.
func (v *Vec[T]) Insert(index int, item T) {
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[index+1:], v.items[index:])
	v.items[index] = item
	v.notify(VecChange[T]{Op: VecInsert, Index: index, Item: item})
}

// RemoveAt deletes the item at index, shifting the tail left.
func (v *Vec[T]) RemoveAt(index int) T {
	item := v.items[index]
	copy(v.items[index:], v.items[index+1:])
	var zero T
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	v.notify(VecChange[T]{Op: VecRemoveAt, Index: index, Item: item})
	return item
}

// Move relocates the item at from so it ends up at index to.
func (v *Vec[T]) Move(from, to int) {
	if from == to {
		return
	}
	item := v.items[from]
	if from < to {
		copy(v.items[from:], v.items[from+1:to+1])
	} else {
		copy(v.items[to+1:], v.items[to:from])
	}
	v.items[to] = item
	v.notify(VecChange[T]{Op: VecMove, Index: from, To: to, Item: item})
}

// Swap exchanges the items at i and j.
func (v *Vec[T]) Swap(i, j int) {
	if i == j {
		return
	}
	v.items[i], v.items[j] = v.items[j], v.items[i]
	v.notify(VecChange[T]{Op: VecSwap, Index: i, To: j})
}

// Clear drops all items.
func (v *Vec[T]) Clear() {
	v.items = v.items[:0]
	v.notify(VecChange[T]{Op: VecClear})
}

// Replace swaps in a whole new sequence; bound lists rebuild.
func (v *Vec[T]) Replace(items []T) {
	v.items = items
	v.notify(VecChange[T]{Op: VecReplace})
}

// BindVec renders the element's entire content as a list mirroring the
// sequence, one child element of the given tag per item, then keeps the
// dom in step with each later mutation. The binding owns the element's
// content; nothing else should render into it. Binding happens once, on
// the pass that creates the element, and ends when the element leaves
// the tree; elements using BindVec cannot sit inside template-cloned
// subtrees because a clone cannot carry the subscription.
func BindVec[T any](e *ElementUpdater, vec *Vec[T], tag string, render func(T, *ElementUpdater)) {
	if e.status == StatusExisting {
		return
	}
	if e.status == StatusJustCloned {
		panic("glint: BindVec inside a template-cloned subtree")
	}
	doc := e.doc
	parent := e.element.dom

	renderInto := func(el *Element, item T, status ElementStatus) {
		u := newElementUpdater(doc, el, status)
		render(item, u)
		u.finish()
	}

	var elements []*Element
	for _, item := range vec.Items() {
		el := newElement(doc, tag)
		el.appendTo(parent)
		renderInto(el, item, StatusJustCreated)
		elements = append(elements, el)
	}

	// anchorAt returns the dom node currently at index, nil to append.
	anchorAt := func(index int) *DomNode {
		if index >= len(elements) {
			return nil
		}
		return elements[index].dom
	}

	cancel := vec.Subscribe(func(ch VecChange[T]) {
		switch ch.Op {
		case VecPush:
			el := newElement(doc, tag)
			el.appendTo(parent)
			renderInto(el, ch.Item, StatusJustCreated)
			elements = append(elements, el)
		case VecPop:
			last := len(elements) - 1
			elements[last].detach(parent)
			elements = elements[:last]
		case VecInsert:
			el := newElement(doc, tag)
			el.insertBefore(parent, anchorAt(ch.Index))
			renderInto(el, ch.Item, StatusJustCreated)
			elements = append(elements, nil)
			copy(elements[ch.Index+1:], elements[ch.Index:])
			elements[ch.Index] = el
		case VecRemoveAt:
			elements[ch.Index].detach(parent)
			elements = append(elements[:ch.Index], elements[ch.Index+1:]...)
		case VecMove:
			el := elements[ch.Index]
			elements = append(elements[:ch.Index], elements[ch.Index+1:]...)
			elements = append(elements, nil)
			copy(elements[ch.To+1:], elements[ch.To:])
			elements[ch.To] = el
			parent.InsertBefore(el.dom, anchorAt(ch.To+1))
		case VecSwap:
			i, j := ch.Index, ch.To
			if i > j {
				i, j = j, i
			}
			ei, ej := elements[i], elements[j]
			after := anchorAt(j + 1)
			parent.InsertBefore(ej.dom, ei.dom)
			parent.InsertBefore(ei.dom, after)
			elements[i], elements[j] = ej, ei
		case VecClear:
			for _, el := range elements {
				el.detach(parent)
			}
			elements = elements[:0]
		case VecReplace:
			for _, el := range elements {
				el.detach(parent)
			}
			elements = elements[:0]
			for _, item := range vec.Items() {
				el := newElement(doc, tag)
				el.appendTo(parent)
				renderInto(el, item, StatusJustCreated)
				elements = append(elements, el)
			}
		}
	})
	e.element.addCleanup(cancel)
}
