package glint

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyKind tags the concrete type inside a Key.
type KeyKind uint8

const (
	KeyStr KeyKind = iota
	KeyInt
	KeyUint
	KeyUUID
)

// Key identifies a keyed list item across render passes. It is a closed
// union over the supported key types so keys of different concrete types
// compare uniformly, and it is comparable, so it works directly as a map
// key.
type Key struct {
	kind KeyKind
	str  string
	i    int64
	u    uint64
	id   uuid.UUID
}

// StrKey makes a string key.
func StrKey(v string) Key { return Key{kind: KeyStr, str: v} }

// IntKey makes a signed integer key.
func IntKey(v int64) Key { return Key{kind: KeyInt, i: v} }

// UintKey makes an unsigned integer key.
func UintKey(v uint64) Key { return Key{kind: KeyUint, u: v} }

// UUIDKey makes a UUID key.
func UUIDKey(v uuid.UUID) Key { return Key{kind: KeyUUID, id: v} }

// KeyOf converts any supported key type to a Key. Unsupported types panic.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case Key:
		return k
	case string:
		return StrKey(k)
	case int:
		return IntKey(int64(k))
	case int32:
		return IntKey(int64(k))
	case int64:
		return IntKey(k)
	case uint:
		return UintKey(uint64(k))
	case uint32:
		return UintKey(uint64(k))
	case uint64:
		return UintKey(k)
	case uuid.UUID:
		return UUIDKey(k)
	}
	panic(fmt.Sprintf("glint: unsupported key type %T", v))
}

func (k Key) String() string {
	switch k.kind {
	case KeyStr:
		return k.str
	case KeyInt:
		return fmt.Sprint(k.i)
	case KeyUint:
		return fmt.Sprint(k.u)
	case KeyUUID:
		return k.id.String()
	}
	return "invalid-key"
}

// KeyedElement is one rendered list item: its key and its element.
type KeyedElement struct {
	key     Key
	element *Element
}

// oldElement records where a key's element sat in the outgoing sequence.
type oldElement struct {
	index   int
	element *Element
}

// itemTemplate caches a prototype element new items are cloned from.
// rendered flips true after the first item has rendered into it.
type itemTemplate struct {
	rendered bool
	element  *Element
}

// KeyedList holds the reconciler's double-buffered state for one keyed
// list container. It is never cloned: a duplicate would share key
// identities with the original and silently corrupt the old-elements map,
// so the owning element's clone path fails fast instead.
type KeyedList struct {
	active []*KeyedElement
	// buffer exists so each pass can build the new sequence while the old
	// one is still indexable; preUpdate swaps the two.
	buffer   []*KeyedElement
	template *itemTemplate
	oldMap   map[Key]oldElement
}

// preUpdate sizes buffer to exactly count empty slots and swaps it with
// active: after the call, active is the empty target-length sequence about
// to be filled and buffer holds the previous pass's elements.
func (k *KeyedList) preUpdate(count int) {
	if k.oldMap == nil {
		k.oldMap = make(map[Key]oldElement, count)
	}
	if count < len(k.buffer) {
		k.buffer = k.buffer[:count]
	} else {
		for len(k.buffer) < count {
			k.buffer = append(k.buffer, nil)
		}
	}
	k.active, k.buffer = k.buffer, k.active
}

// drainOldInto indexes the outgoing sequence by key for O(1) lookups, then
// empties it.
func (k *KeyedList) drainOldInto() {
	for i, ke := range k.buffer {
		if ke != nil {
			k.oldMap[ke.key] = oldElement{index: i, element: ke.element}
			k.buffer[i] = nil
		}
	}
}

// requireInitTemplate creates the template element on first use and
// reports whether the caller must render it (a template renders once).
func (k *KeyedList) requireInitTemplate(create func() *Element) bool {
	if k.template == nil {
		k.template = &itemTemplate{element: create()}
		return true
	}
	return !k.template.rendered
}

// count returns the number of items in the active sequence.
func (k *KeyedList) count() int {
	return len(k.active)
}

func (k *KeyedList) firstElement() *Element {
	if len(k.active) == 0 || k.active[0] == nil {
		return nil
	}
	return k.active[0].element
}

func (k *KeyedList) lastElement() *Element {
	if len(k.active) == 0 {
		return nil
	}
	last := k.active[len(k.active)-1]
	if last == nil {
		return nil
	}
	return last.element
}

// removeFromDom detaches every active item.
func (k *KeyedList) removeFromDom(parent *DomNode) {
	for _, ke := range k.active {
		if ke != nil {
			ke.element.detach(parent)
		}
	}
	k.active = k.active[:0]
}

func (k *KeyedList) teardown() {
	for _, ke := range k.active {
		if ke != nil {
			ke.element.teardown()
		}
	}
}

func (k *KeyedList) appendTo(parent *DomNode) {
	for _, ke := range k.active {
		if ke != nil {
			ke.element.appendTo(parent)
		}
	}
}
