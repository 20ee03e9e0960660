package glint

import "testing"

func TestValue(t *testing.T) {
	t.Run("GetSet", func(t *testing.T) {
		v := NewValue(1)
		if v.Get() != 1 {
			t.Errorf("Get = %d, want 1", v.Get())
		}
		v.Set(2)
		if v.Get() != 2 {
			t.Errorf("Get = %d, want 2", v.Get())
		}
	})

	t.Run("EqualSetDoesNotNotify", func(t *testing.T) {
		v := NewValue("a")
		calls := 0
		v.Subscribe(func(string) { calls++ })
		v.Set("a")
		if calls != 0 {
			t.Errorf("equal set notified %d times", calls)
		}
		v.Set("b")
		if calls != 1 {
			t.Errorf("changed set notified %d times, want 1", calls)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		v := NewValue(0)
		calls := 0
		cancel := v.Subscribe(func(int) { calls++ })
		v.Set(1)
		cancel()
		v.Set(2)
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}

func TestBindText(t *testing.T) {
	type state struct{}
	format := func(n int) string { return "n=" + itoa(n) }

	t.Run("PatchesWithoutComponentRender", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		cell := NewValue(1)

		renders := 0
		MountApp(doc, root, state{}, func(_ *state, e *ElementUpdater) {
			renders++
			e.Nodes(func(n *NodesUpdater) {
				n.StaticText("count: ")
				BindText(n, cell, format)
			})
		})

		if root.TextContent() != "count: n=1" {
			t.Fatalf("initial content %q", root.TextContent())
		}

		cell.Set(5)
		if root.TextContent() != "count: n=5" {
			t.Errorf("bound text not patched, got %q", root.TextContent())
		}
		if renders != 1 {
			t.Errorf("cell change re-rendered the component (%d renders)", renders)
		}
	})

	t.Run("DetachedSlotStopsListening", func(t *testing.T) {
		type host struct{ show bool }
		doc := NewDoc()
		root := doc.CreateElement("div")
		cell := NewValue(1)

		comp := MountApp(doc, root, host{show: true}, func(h *host, e *ElementUpdater) {
			e.Nodes(func(n *NodesUpdater) {
				n.Match(boolArm(h.show), func(n *NodesUpdater) {
					if h.show {
						n.Element("p", func(e *ElementUpdater) {
							e.Nodes(func(n *NodesUpdater) {
								BindText(n, cell, format)
							})
						})
					}
				})
			})
		})

		comp.Update(func(h *host) { h.show = false })
		before := doc.Writes()
		cell.Set(9)
		if doc.Writes() != before {
			t.Errorf("a torn-down binding still wrote to the document")
		}
	})
}
