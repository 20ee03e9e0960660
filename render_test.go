package glint

import (
	"strconv"
	"testing"
)

func TestRenderIdempotence(t *testing.T) {
	type state struct {
		title string
		count int
	}

	render := func(s *state, e *ElementUpdater) {
		e.Class("app").Int("data-count", int32(s.count))
		e.Nodes(func(n *NodesUpdater) {
			n.Element("h1", func(e *ElementUpdater) {
				e.Nodes(func(n *NodesUpdater) {
					n.Text(s.title)
				})
			})
			n.Element("button", func(e *ElementUpdater) {
				e.OnClick(func(Event) {})
				e.Nodes(func(n *NodesUpdater) {
					n.StaticText("go")
				})
			})
		})
	}

	doc := NewDoc()
	root := doc.CreateElement("div")
	comp := MountApp(doc, root, state{title: "hello", count: 1}, render)

	t.Run("UnchangedStateWritesNothing", func(t *testing.T) {
		before := doc.Writes()
		comp.Update(func(*state) {})
		if got := doc.Writes() - before; got != 0 {
			t.Errorf("re-render of unchanged state produced %d writes", got)
		}
	})

	t.Run("ChangedValueWritesOnlyThat", func(t *testing.T) {
		h1 := root.Children()[0]
		before := doc.Writes()
		comp.Update(func(s *state) { s.title = "bye" })
		if h1.TextContent() != "bye" {
			t.Fatalf("title not updated, got %q", h1.TextContent())
		}
		if got := doc.Writes() - before; got != 1 {
			t.Errorf("expected exactly 1 write for one changed text, got %d", got)
		}
	})

	t.Run("StructurePreservedAcrossPasses", func(t *testing.T) {
		h1 := root.Children()[0]
		button := root.Children()[1]
		comp.Update(func(s *state) { s.count++ })
		if root.Children()[0] != h1 || root.Children()[1] != button {
			t.Errorf("re-render must reuse existing nodes, not rebuild them")
		}
	})
}

func TestMatchFragments(t *testing.T) {
	type state struct{ arm int }

	render := func(s *state, e *ElementUpdater) {
		e.Nodes(func(n *NodesUpdater) {
			n.Match(s.arm, func(n *NodesUpdater) {
				switch s.arm {
				case 0:
					n.Text("zero")
				case 1:
					n.Element("b", func(e *ElementUpdater) {
						e.Nodes(func(n *NodesUpdater) { n.Text("one") })
					})
					n.Text("!")
				}
			})
			n.Element("footer", func(e *ElementUpdater) {
				e.Nodes(func(n *NodesUpdater) { n.StaticText("end") })
			})
		})
	}

	doc := NewDoc()
	root := doc.CreateElement("div")
	comp := MountApp(doc, root, state{arm: 0}, render)

	footer := root.Children()[len(root.Children())-1]
	if footer.Tag() != "footer" {
		t.Fatalf("expected trailing footer, got %q", footer.Tag())
	}

	t.Run("SameArmUpdatesInPlace", func(t *testing.T) {
		before := doc.Writes()
		comp.Update(func(*state) {})
		if doc.Writes() != before {
			t.Errorf("same arm with same content should not write")
		}
	})

	t.Run("ArmSwitchRebuildsFragmentOnly", func(t *testing.T) {
		comp.Update(func(s *state) { s.arm = 1 })
		if root.TextContent() != "one!end" {
			t.Errorf("unexpected content %q", root.TextContent())
		}
		last := root.Children()[len(root.Children())-1]
		if last != footer {
			t.Errorf("sibling after the fragment must survive an arm switch")
		}
	})

	t.Run("SwitchBack", func(t *testing.T) {
		comp.Update(func(s *state) { s.arm = 0 })
		if root.TextContent() != "zeroend" {
			t.Errorf("unexpected content %q", root.TextContent())
		}
	})
}

func TestPositionalList(t *testing.T) {
	type state struct{ n int }

	render := func(s *state, e *ElementUpdater) {
		e.List("li", CreateNew, s.n, func(i int, e *ElementUpdater) {
			e.Nodes(func(n *NodesUpdater) {
				n.Text(strconv.Itoa(i))
			})
		})
	}

	doc := NewDoc()
	root := doc.CreateElement("ul")
	comp := MountApp(doc, root, state{n: 3}, render)

	if root.TextContent() != "012" {
		t.Fatalf("unexpected content %q", root.TextContent())
	}

	t.Run("GrowAppends", func(t *testing.T) {
		first := root.Children()[0]
		comp.Update(func(s *state) { s.n = 5 })
		if root.TextContent() != "01234" {
			t.Errorf("unexpected content %q", root.TextContent())
		}
		if root.Children()[0] != first {
			t.Errorf("existing items must be reused on growth")
		}
	})

	t.Run("ShrinkRemovesTail", func(t *testing.T) {
		comp.Update(func(s *state) { s.n = 2 })
		if root.ChildCount() != 2 {
			t.Errorf("expected 2 items after shrink, got %d", root.ChildCount())
		}
		if root.TextContent() != "01" {
			t.Errorf("unexpected content %q", root.TextContent())
		}
	})
}

func TestTemplateClone(t *testing.T) {
	type row struct {
		label  string
		clicks int
	}
	type state struct{ rows []row }

	render := func(s *state, e *ElementUpdater) {
		e.List("li", CloneTemplate, len(s.rows), func(i int, e *ElementUpdater) {
			e.Class("row")
			e.OnClick(func(Event) { s.rows[i].clicks++ })
			e.Nodes(func(n *NodesUpdater) {
				n.Text(s.rows[i].label)
			})
		})
	}

	t.Run("ClonedItemsGetFreshListeners", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("ul")
		s := state{rows: []row{{label: "a"}, {label: "b"}, {label: "c"}}}
		comp := MountApp(doc, root, s, render)

		if root.ChildCount() != 3 {
			t.Fatalf("expected 3 items, got %d", root.ChildCount())
		}
		if root.TextContent() != "abc" {
			t.Errorf("clones must be re-rendered with their own item, got %q", root.TextContent())
		}

		// every item, cloned or not, must respond to its own listener
		for i := 0; i < 3; i++ {
			root.Children()[i].Dispatch(Event{Type: EventClick})
		}
		st := comp.State()
		for i := range st.rows {
			if st.rows[i].clicks != 1 {
				t.Errorf("item %d clicks = %d, want 1", i, st.rows[i].clicks)
			}
		}
	})

	t.Run("CloneAttrCacheSkipsEqualValues", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("ul")
		comp := MountApp(doc, root, state{rows: []row{{label: "a"}, {label: "b"}}}, render)

		before := doc.Writes()
		comp.Update(func(*state) {})
		if got := doc.Writes() - before; got != 0 {
			t.Errorf("re-render over cloned items produced %d writes", got)
		}
	})
}

func TestSelectValueDeferred(t *testing.T) {
	type state struct {
		choice  string
		options []string
	}

	render := func(s *state, e *ElementUpdater) {
		e.Nodes(func(n *NodesUpdater) {
			n.Element("select", func(e *ElementUpdater) {
				e.Value(s.choice)
				e.List("option", CreateNew, len(s.options), func(i int, e *ElementUpdater) {
					e.Statics().Str("value", s.options[i])
					e.Nodes(func(n *NodesUpdater) { n.Text(s.options[i]) })
				})
			})
		})
	}

	doc := NewDoc()
	root := doc.CreateElement("div")
	MountApp(doc, root, state{choice: "b", options: []string{"a", "b", "c"}}, render)

	sel := root.Children()[0]
	if sel.Value() != "b" {
		t.Errorf("select value must be applied after its options render, got %q", sel.Value())
	}
}

func TestStaticAttributes(t *testing.T) {
	type state struct{ cls string }

	render := func(s *state, e *ElementUpdater) {
		e.Nodes(func(n *NodesUpdater) {
			n.Element("div", func(e *ElementUpdater) {
				e.Statics().Str("role", "main").Attrs().Class(s.cls)
			})
		})
	}

	doc := NewDoc()
	root := doc.CreateElement("div")
	comp := MountApp(doc, root, state{cls: "a"}, render)
	div := root.Children()[0]

	if v, _ := div.Attr("role"); v != "main" {
		t.Errorf("static attribute not applied on creation")
	}

	comp.Update(func(s *state) { s.cls = "b" })
	if v, _ := div.Attr("class"); v != "b" {
		t.Errorf("update attribute after statics landed on wrong slot, class=%q", v)
	}
	if v, _ := div.Attr("role"); v != "main" {
		t.Errorf("static attribute must survive re-renders")
	}
}
