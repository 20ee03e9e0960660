package glint

// Value is a render-aware cell. Text slots bound to it through BindText
// are patched directly when the value changes, without re-rendering the
// component that owns them. Notifications go through the update queue,
// so a Set from inside an update lands after that update finishes.
type Value[T comparable] struct {
	v    T
	subs map[int]func(T)
	next int
}

// NewValue makes a cell holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (c *Value[T]) Get() T { return c.v }

// Set stores v and notifies bindings. Equal values are a no-op.
func (c *Value[T]) Set(v T) {
	if v == c.v {
		return
	}
	c.v = v
	for _, fn := range c.subs {
		fn := fn
		updates.add(func() { fn(v) })
	}
	updates.execute()
}

// Subscribe registers fn for change notifications and returns a function
// that removes the subscription.
func (c *Value[T]) Subscribe(fn func(T)) func() {
	if c.subs == nil {
		c.subs = make(map[int]func(T))
	}
	id := c.next
	c.next++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// BindText renders a text slot tied to the cell: the slot shows
// format(value) now and re-patches itself on every Set until the slot
// leaves the tree. Bind inside render code where a Text call would go.
func BindText[T comparable](n *NodesUpdater, c *Value[T], format func(T) string) {
	created := n.index == n.nodes.count()
	n.nodes.updateText(n.doc, n.index, format(c.Get()), n.parent, n.next)
	if created {
		t := n.nodes.textAt(n.index)
		t.cleanup = c.Subscribe(func(v T) { t.update(format(v)) })
	}
	n.index++
}
