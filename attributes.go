package glint

import (
	"fmt"
	"math"
)

// attrKind tags an attribute record in the positional cache.
type attrKind uint8

const (
	attrListener attrKind = iota
	attrStr
	attrBool
	attrI32
	attrU32
	attrF64
)

func (k attrKind) String() string {
	switch k {
	case attrListener:
		return "listener"
	case attrStr:
		return "str"
	case attrBool:
		return "bool"
	case attrI32:
		return "i32"
	case attrU32:
		return "u32"
	case attrF64:
		return "f64"
	}
	return "unknown"
}

// f64Epsilon is the comparison region for float attributes; differences
// below it do not count as changes.
const f64Epsilon = 2.220446049250313e-16

// attrRecord is one memoized attribute value. Which field is meaningful
// depends on kind.
type attrRecord struct {
	kind     attrKind
	str      string
	b        bool
	i        int32
	u        uint32
	f        float64
	listener Listener
}

// attrList is the per-element positional attribute cache. A render pass
// addresses it by slot index in emit order; values are compared against the
// previous pass to suppress redundant platform writes. A slot that holds a
// different kind than the caller expects means the render function did not
// emit the same attributes in the same order as last pass, which is fatal.
type attrList struct {
	records []attrRecord
}

func (a *attrList) mismatch(index int, want attrKind) {
	panic(fmt.Sprintf("glint: attribute slot %d holds %s, expected %s; render output must be positionally stable",
		index, a.records[index].kind, want))
}

// storeListener stores or replaces the listener at a slot. Listeners are
// never value-compared; the caller decides whether to rebind.
func (a *attrList) storeListener(index int, l Listener) {
	if index < len(a.records) {
		a.records[index] = attrRecord{kind: attrListener, listener: l}
		return
	}
	a.records = append(a.records, attrRecord{kind: attrListener, listener: l})
}

// checkBool reports whether value differs from the cached slot, storing the
// new value. The first write at a slot always reports true.
func (a *attrList) checkBool(index int, value bool) bool {
	if index == len(a.records) {
		a.records = append(a.records, attrRecord{kind: attrBool, b: value})
		return true
	}
	r := &a.records[index]
	if r.kind != attrBool {
		a.mismatch(index, attrBool)
	}
	if r.b == value {
		return false
	}
	r.b = value
	return true
}

func (a *attrList) checkStr(index int, value string) bool {
	if index == len(a.records) {
		a.records = append(a.records, attrRecord{kind: attrStr, str: value})
		return true
	}
	r := &a.records[index]
	if r.kind != attrStr {
		a.mismatch(index, attrStr)
	}
	if r.str == value {
		return false
	}
	r.str = value
	return true
}

func (a *attrList) checkI32(index int, value int32) bool {
	if index == len(a.records) {
		a.records = append(a.records, attrRecord{kind: attrI32, i: value})
		return true
	}
	r := &a.records[index]
	if r.kind != attrI32 {
		a.mismatch(index, attrI32)
	}
	if r.i == value {
		return false
	}
	r.i = value
	return true
}

func (a *attrList) checkU32(index int, value uint32) bool {
	if index == len(a.records) {
		a.records = append(a.records, attrRecord{kind: attrU32, u: value})
		return true
	}
	r := &a.records[index]
	if r.kind != attrU32 {
		a.mismatch(index, attrU32)
	}
	if r.u == value {
		return false
	}
	r.u = value
	return true
}

func (a *attrList) checkF64(index int, value float64) bool {
	if index == len(a.records) {
		a.records = append(a.records, attrRecord{kind: attrF64, f: value})
		return true
	}
	r := &a.records[index]
	if r.kind != attrF64 {
		a.mismatch(index, attrF64)
	}
	if math.Abs(value-r.f) < f64Epsilon {
		return false
	}
	r.f = value
	return true
}

// cloneForTemplate copies the cache for a template-cloned element. Value
// slots keep their values (the cloned node carries the same attributes);
// listener slots become empty placeholders, because platform clones carry
// no listeners and the clone's render pass rebinds every one of them.
func (a *attrList) cloneForTemplate() attrList {
	records := make([]attrRecord, len(a.records))
	for i, r := range a.records {
		if r.kind == attrListener {
			records[i] = attrRecord{kind: attrListener}
			continue
		}
		records[i] = r
	}
	return attrList{records: records}
}

func (a *attrList) len() int {
	return len(a.records)
}
