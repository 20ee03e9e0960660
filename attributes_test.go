package glint

import "testing"

func TestAttrList(t *testing.T) {
	t.Run("FirstWriteNeverSkipped", func(t *testing.T) {
		var l attrList
		if !l.checkStr(0, "") {
			t.Errorf("first write of the zero value must still apply")
		}
		if !l.checkBool(1, false) {
			t.Errorf("first write of false must still apply")
		}
		if !l.checkI32(2, 0) {
			t.Errorf("first write of 0 must still apply")
		}
	})

	t.Run("EqualValueSkips", func(t *testing.T) {
		var l attrList
		l.checkStr(0, "a")
		if l.checkStr(0, "a") {
			t.Errorf("unchanged value should skip")
		}
		if !l.checkStr(0, "b") {
			t.Errorf("changed value should apply")
		}
		if l.checkStr(0, "b") {
			t.Errorf("value should be memoized after change")
		}
	})

	t.Run("IndependentSlots", func(t *testing.T) {
		var l attrList
		l.checkStr(0, "x")
		l.checkBool(1, true)
		l.checkU32(2, 7)
		if l.checkBool(1, true) {
			t.Errorf("slot 1 should remember true")
		}
		if !l.checkU32(2, 8) {
			t.Errorf("slot 2 should see the change")
		}
	})

	t.Run("FloatEpsilon", func(t *testing.T) {
		var l attrList
		l.checkF64(0, 1.0)
		if l.checkF64(0, 1.0+f64Epsilon/2) {
			t.Errorf("sub-epsilon difference should not count as a change")
		}
		if !l.checkF64(0, 1.5) {
			t.Errorf("real difference should apply")
		}
	})

	t.Run("KindMismatchPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic on slot kind mismatch")
			}
		}()
		var l attrList
		l.checkStr(0, "a")
		l.checkBool(0, true)
	})

	t.Run("ListenerSlotReplaces", func(t *testing.T) {
		var l attrList
		l.storeListener(0, func(Event) {})
		l.storeListener(0, func(Event) {})
		if l.len() != 1 {
			t.Errorf("replacing a listener should not grow the cache, len=%d", l.len())
		}
	})

	t.Run("CloneForTemplateEmptiesListeners", func(t *testing.T) {
		var l attrList
		l.storeListener(0, func(Event) {})
		l.checkStr(1, "v")
		c := l.cloneForTemplate()
		if c.len() != 2 {
			t.Fatalf("clone should keep slot count, len=%d", c.len())
		}
		if c.records[0].listener != nil {
			t.Errorf("clone must not carry listeners")
		}
		if c.checkStr(1, "v") {
			t.Errorf("clone should keep memoized values")
		}
	})
}
