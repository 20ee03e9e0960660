package glint

// MountStatus tracks where a component's root currently lives.
type MountStatus uint8

const (
	// MountNever: constructed but not yet placed in the tree.
	MountNever MountStatus = iota
	// MountMounted: attached and rendering.
	MountMounted
	// MountUnmounted: detached; state survives, renders wait for remount.
	MountUnmounted
	// MountAlways: treated as permanently attached. Removing its slot
	// from the tree does not demote it; used for roots and for children
	// the application moves between slots itself.
	MountAlways
)

func (m MountStatus) String() string {
	switch m {
	case MountNever:
		return "never"
	case MountMounted:
		return "mounted"
	case MountUnmounted:
		return "unmounted"
	case MountAlways:
		return "always-mounted"
	}
	return "unknown"
}

// The engine is single-goroutine by contract: platform events, updates,
// and renders all run on the goroutine that owns the Doc. The queue
// below gives updates FIFO semantics without locks.

// updateQueue serializes component updates. Updates triggered while one
// is already executing are appended and run, in arrival order, after the
// current one finishes. The executing flag makes nested execute calls
// no-ops so the outermost caller alone drains the queue.
type updateQueue struct {
	executing bool
	queue     []func()
}

var updates updateQueue

func (q *updateQueue) add(fn func()) {
	q.queue = append(q.queue, fn)
}

func (q *updateQueue) execute() {
	if q.executing {
		return
	}
	q.executing = true
	for len(q.queue) > 0 {
		fn := q.queue[0]
		q.queue = q.queue[1:]
		fn()
	}
	q.executing = false
}

// Command is a unit of follow-up work an update can schedule through its
// Checklist. Commands run after the update's re-render, while the
// component is still borrowed, so they observe the freshly rendered
// tree; a command that wants another full update cycle must go through
// comp.Update, which defers it.
type Command[C any] interface {
	Execute(comp Comp[C], state *C)
}

// CommandFunc adapts a plain function to Command.
type CommandFunc[C any] func(comp Comp[C], state *C)

func (f CommandFunc[C]) Execute(comp Comp[C], state *C) { f(comp, state) }

// Checklist is what an update closure returns: whether to re-render and
// which commands to run.
type Checklist[C any] struct {
	skipRender bool
	commands   []Command[C]
}

// ShouldRender is the default checklist: re-render, no commands.
func ShouldRender[C any]() Checklist[C] { return Checklist[C]{} }

// SkipRender suppresses the re-render for this update.
func SkipRender[C any]() Checklist[C] { return Checklist[C]{skipRender: true} }

// Then appends a command to run after the update closure.
func (cl Checklist[C]) Then(cmd Command[C]) Checklist[C] {
	cl.commands = append(cl.commands, cmd)
	return cl
}

// instance is the single owner of a component's state and rendered tree.
type instance[C any] struct {
	doc       *Doc
	state     *C
	render    func(*C, *ElementUpdater)
	preUpdate func(*C)
	root      *Element
	mount     MountStatus
	rendered  bool
	borrowed  bool
	dead      bool
	cleanups  []func()
}

func (i *instance[C]) markUnmounted() {
	if i.dead || i.mount == MountAlways {
		return
	}
	i.mount = MountUnmounted
}

func (i *instance[C]) mounted() bool {
	return i.mount == MountMounted || i.mount == MountAlways
}

func (i *instance[C]) renderRoot() {
	// The very first render sees an empty root subtree: the root element
	// reports JustCreated so its listeners bind and statics apply. Every
	// later pass reuses it as Existing.
	status := StatusExisting
	if !i.rendered {
		status = StatusJustCreated
		i.rendered = true
	}
	u := newElementUpdater(i.doc, i.root, status)
	i.render(i.state, u)
	u.finish()
}

// Comp is a lightweight handle to a component instance, safe to capture
// in event handlers and commands. After Dispose it refuses work instead
// of touching freed state.
type Comp[C any] struct {
	inst *instance[C]
}

// State returns the component state. Read it from render code; mutation
// belongs inside Update closures so it re-renders and serializes.
func (c Comp[C]) State() *C {
	return c.inst.state
}

// Update runs fn against the state and re-renders.
func (c Comp[C]) Update(fn func(*C)) {
	c.UpdateWith(func(state *C) Checklist[C] {
		fn(state)
		return ShouldRender[C]()
	})
}

// UpdateWith runs fn against the state and consults the returned
// checklist for rendering and follow-up commands. If an update is
// already executing anywhere, the call is queued and runs after it in
// arrival order; updates are never lost and never interleave.
func (c Comp[C]) UpdateWith(fn func(*C) Checklist[C]) {
	updates.add(func() { c.executeUpdate(fn) })
	updates.execute()
}

func (c Comp[C]) executeUpdate(fn func(*C) Checklist[C]) {
	inst := c.inst
	if inst == nil || inst.dead {
		Logger().Warn("update dropped: component already disposed")
		return
	}
	if inst.borrowed {
		// Re-entrant call from inside this component's own update; put
		// it back at the queue tail.
		updates.add(func() { c.executeUpdate(fn) })
		return
	}
	inst.borrowed = true
	if inst.preUpdate != nil {
		inst.preUpdate(inst.state)
	}
	cl := fn(inst.state)
	if !cl.skipRender && inst.mounted() {
		inst.renderRoot()
	}
	for _, cmd := range cl.commands {
		cmd.Execute(c, inst.state)
	}
	inst.borrowed = false
}

// Callback wraps an update closure as a no-argument function, for
// handing to code that knows nothing about this component.
func (c Comp[C]) Callback(fn func(*C)) func() {
	return func() { c.Update(fn) }
}

// Listener wraps an update closure as an event listener that ignores
// the event payload.
func (c Comp[C]) Listener(fn func(*C)) Listener {
	return func(Event) { c.Update(fn) }
}

// EventListener wraps an update closure that wants the event payload.
func (c Comp[C]) EventListener(fn func(*C, Event)) Listener {
	return func(ev Event) {
		c.Update(func(state *C) { fn(state, ev) })
	}
}

// UpdateArg is Update with a payload. A free function because Go methods
// cannot introduce their own type parameters.
func UpdateArg[C, A any](c Comp[C], fn func(*C, A), arg A) {
	c.Update(func(state *C) { fn(state, arg) })
}

// CallbackArg wraps an update closure taking a payload.
func CallbackArg[C, A any](c Comp[C], fn func(*C, A)) func(A) {
	return func(arg A) { UpdateArg(c, fn, arg) }
}

// ChildComp owns a component instance that mounts inside another
// component's tree. The child keeps its state across unmount/remount;
// only Dispose ends its life.
type ChildComp[C any] struct {
	inst *instance[C]
}

// NewChild builds a child component with the given state. The root
// element (of the given tag) exists immediately but stays detached and
// unrendered until the first Mount.
func NewChild[C any](doc *Doc, tag string, state C, render func(*C, *ElementUpdater)) *ChildComp[C] {
	return &ChildComp[C]{inst: &instance[C]{
		doc:    doc,
		state:  &state,
		render: render,
		root:   newElement(doc, tag),
		mount:  MountNever,
	}}
}

// Comp returns an update handle to the child.
func (c *ChildComp[C]) Comp() Comp[C] { return Comp[C]{inst: c.inst} }

// State returns the child's state.
func (c *ChildComp[C]) State() *C { return c.inst.state }

// Root returns the child's root node.
func (c *ChildComp[C]) Root() *DomNode { return c.inst.root.dom }

// MountStatus reports the child's current mount status.
func (c *ChildComp[C]) MountStatus() MountStatus { return c.inst.mount }

// KeepAlive marks the child always-mounted: clearing its slot no longer
// demotes it, so the application can move it between slots without
// losing renders.
func (c *ChildComp[C]) KeepAlive() {
	if !c.inst.dead {
		c.inst.mount = MountAlways
	}
}

// BeforeUpdate registers a hook that runs against the state at the start
// of every update cycle, ahead of the update closure and regardless of
// whether the cycle re-renders.
func (c *ChildComp[C]) BeforeUpdate(fn func(*C)) {
	c.inst.preUpdate = fn
}

// AddCleanup registers fn to run when the child is disposed.
func (c *ChildComp[C]) AddCleanup(fn func()) {
	c.inst.cleanups = append(c.inst.cleanups, fn)
}

// Dispose tears the child down for good: cleanups run, the root leaves
// the tree, and any pending or future updates become logged no-ops.
func (c *ChildComp[C]) Dispose() {
	inst := c.inst
	if inst.dead {
		return
	}
	inst.dead = true
	for _, fn := range inst.cleanups {
		fn()
	}
	inst.cleanups = nil
	if p := inst.root.dom.Parent(); p != nil {
		inst.root.detach(p)
	} else {
		inst.root.teardown()
	}
	inst.root.dom.ClearContent()
	inst.mount = MountUnmounted
}

// Mount places a child component as the content of the element being
// rendered. The first mount renders the child's subtree; later passes
// over the same slot leave the child alone, so a parent re-render never
// cascades into mounted children. Remounting after an unmount
// re-attaches and re-renders with the state the child kept.
func Mount[C any](e *ElementUpdater, child *ChildComp[C]) {
	inst := child.inst
	if inst.dead {
		panic("glint: cannot mount a disposed component")
	}
	slot := e.element.nodes.componentAt(0)
	if slot != nil && slot.child == child && inst.mounted() {
		return
	}
	e.element.nodes.clear(e.element.dom)
	e.element.nodes.storeComponentHandle(&componentNode{
		child:   child,
		root:    inst.root.dom,
		unmount: inst.markUnmounted,
	})
	e.element.dom.AppendChild(inst.root.dom)
	if inst.mount != MountAlways {
		inst.mount = MountMounted
	}
	child.Comp().UpdateWith(func(*C) Checklist[C] { return ShouldRender[C]() })
}

// MountApp builds a root component over an existing node, clears the
// node's previous content, and performs the first render. The returned
// handle drives all later updates.
func MountApp[C any](doc *Doc, root *DomNode, state C, render func(*C, *ElementUpdater)) Comp[C] {
	root.ClearContent()
	comp := Comp[C]{inst: &instance[C]{
		doc:    doc,
		state:  &state,
		render: render,
		root:   elementFromDom(root),
		mount:  MountAlways,
	}}
	comp.UpdateWith(func(*C) Checklist[C] { return ShouldRender[C]() })
	return comp
}
