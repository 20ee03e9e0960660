package glint

import "testing"

func boundList(t *testing.T, items ...string) (*Vec[string], *DomNode) {
	t.Helper()
	type state struct{}
	doc := NewDoc()
	root := doc.CreateElement("div")
	vec := NewVec(items...)
	MountApp(doc, root, state{}, func(_ *state, e *ElementUpdater) {
		e.Nodes(func(n *NodesUpdater) {
			n.Element("ul", func(e *ElementUpdater) {
				BindVec(e, vec, "li", func(item string, e *ElementUpdater) {
					e.Nodes(func(n *NodesUpdater) { n.Text(item) })
				})
			})
		})
	})
	return vec, root.Children()[0]
}

func listOrder(ul *DomNode) string {
	return ul.TextContent()
}

func TestVec(t *testing.T) {
	t.Run("InitialBind", func(t *testing.T) {
		_, ul := boundList(t, "a", "b")
		if listOrder(ul) != "ab" {
			t.Errorf("content %q", listOrder(ul))
		}
	})

	t.Run("PushPop", func(t *testing.T) {
		vec, ul := boundList(t, "a")
		vec.Push("b")
		if listOrder(ul) != "ab" {
			t.Errorf("after push: %q", listOrder(ul))
		}
		item, ok := vec.Pop()
		if !ok || item != "b" {
			t.Errorf("pop = %q, %v", item, ok)
		}
		if listOrder(ul) != "a" {
			t.Errorf("after pop: %q", listOrder(ul))
		}
		if _, ok := NewVec[string]().Pop(); ok {
			t.Errorf("pop of empty vec should report false")
		}
	})

	t.Run("InsertRemove", func(t *testing.T) {
		vec, ul := boundList(t, "a", "c")
		vec.Insert(1, "b")
		if listOrder(ul) != "abc" {
			t.Errorf("after insert: %q", listOrder(ul))
		}
		if got := vec.RemoveAt(0); got != "a" {
			t.Errorf("RemoveAt = %q", got)
		}
		if listOrder(ul) != "bc" {
			t.Errorf("after remove: %q", listOrder(ul))
		}
	})

	t.Run("MoveReusesElements", func(t *testing.T) {
		vec, ul := boundList(t, "a", "b", "c")
		first := ul.Children()[0]
		vec.Move(0, 2)
		if listOrder(ul) != "bca" {
			t.Errorf("after move: %q", listOrder(ul))
		}
		if ul.Children()[2] != first {
			t.Errorf("move must relocate the element, not rebuild it")
		}
	})

	t.Run("Swap", func(t *testing.T) {
		vec, ul := boundList(t, "a", "b", "c", "d")
		b, c := ul.Children()[1], ul.Children()[2]
		vec.Swap(1, 2)
		if listOrder(ul) != "acbd" {
			t.Errorf("after swap: %q", listOrder(ul))
		}
		if ul.Children()[1] != c || ul.Children()[2] != b {
			t.Errorf("swap must exchange the existing elements")
		}
	})

	t.Run("ClearAndReplace", func(t *testing.T) {
		vec, ul := boundList(t, "a", "b")
		vec.Clear()
		if ul.ChildCount() != 0 {
			t.Errorf("after clear: %d children", ul.ChildCount())
		}
		vec.Replace([]string{"x", "y", "z"})
		if listOrder(ul) != "xyz" {
			t.Errorf("after replace: %q", listOrder(ul))
		}
	})

	t.Run("DetachedBindingStopsListening", func(t *testing.T) {
		type state struct{ showList bool }
		doc := NewDoc()
		root := doc.CreateElement("div")
		vec := NewVec("a", "b")

		comp := MountApp(doc, root, state{showList: true}, func(s *state, e *ElementUpdater) {
			e.Nodes(func(n *NodesUpdater) {
				arm := 0
				if !s.showList {
					arm = 1
				}
				n.Match(arm, func(n *NodesUpdater) {
					if s.showList {
						n.Element("ul", func(e *ElementUpdater) {
							BindVec(e, vec, "li", func(item string, e *ElementUpdater) {
								e.Nodes(func(n *NodesUpdater) { n.Text(item) })
							})
						})
					} else {
						n.StaticText("gone")
					}
				})
			})
		})

		// Switching arms detaches the bound element and must cancel the
		// subscription with it.
		comp.Update(func(s *state) { s.showList = false })

		before := doc.Writes()
		vec.Push("c")
		vec.Clear()
		if doc.Writes() != before {
			t.Errorf("vec mutation caused %d writes after the binding detached, want 0", doc.Writes()-before)
		}
	})

	t.Run("BindInsideCloneRejected", func(t *testing.T) {
		type state struct{}
		doc := NewDoc()
		root := doc.CreateElement("div")
		vec := NewVec("a")

		defer func() {
			if recover() == nil {
				t.Errorf("expected panic when binding inside a template clone")
			}
		}()
		MountApp(doc, root, state{}, func(_ *state, e *ElementUpdater) {
			e.List("li", CloneTemplate, 2, func(i int, e *ElementUpdater) {
				BindVec(e, vec, "span", func(string, *ElementUpdater) {})
			})
		})
	})
}
