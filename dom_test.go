package glint

import "testing"

func TestDomTree(t *testing.T) {
	t.Run("AppendAndChildren", func(t *testing.T) {
		doc := NewDoc()
		parent := doc.CreateElement("div")
		a := doc.CreateElement("span")
		b := doc.CreateText("hi")
		parent.AppendChild(a)
		parent.AppendChild(b)

		if parent.ChildCount() != 2 {
			t.Fatalf("expected 2 children, got %d", parent.ChildCount())
		}
		if parent.Children()[0] != a || parent.Children()[1] != b {
			t.Errorf("children out of order")
		}
		if a.Parent() != parent {
			t.Errorf("parent not set on append")
		}
	})

	t.Run("InsertBeforeMovesExistingChild", func(t *testing.T) {
		doc := NewDoc()
		parent := doc.CreateElement("div")
		a := doc.CreateElement("a")
		b := doc.CreateElement("b")
		c := doc.CreateElement("c")
		parent.AppendChild(a)
		parent.AppendChild(b)
		parent.AppendChild(c)

		// moving c before a should not leave a duplicate
		parent.InsertBefore(c, a)
		tags := []string{}
		for _, ch := range parent.Children() {
			tags = append(tags, ch.Tag())
		}
		want := []string{"c", "a", "b"}
		for i := range want {
			if tags[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, tags)
			}
		}
	})

	t.Run("InsertBeforeNilAppends", func(t *testing.T) {
		doc := NewDoc()
		parent := doc.CreateElement("div")
		a := doc.CreateElement("a")
		parent.InsertBefore(a, nil)
		if parent.ChildCount() != 1 || parent.Children()[0] != a {
			t.Errorf("nil anchor should append")
		}
	})

	t.Run("NextSibling", func(t *testing.T) {
		doc := NewDoc()
		parent := doc.CreateElement("div")
		a := doc.CreateElement("a")
		b := doc.CreateElement("b")
		parent.AppendChild(a)
		parent.AppendChild(b)

		if a.NextSibling() != b {
			t.Errorf("expected b after a")
		}
		if b.NextSibling() != nil {
			t.Errorf("expected nil after last child")
		}
	})

	t.Run("WritesCounter", func(t *testing.T) {
		doc := NewDoc()
		before := doc.Writes()
		el := doc.CreateElement("div")
		el.SetAttribute("id", "x")
		if doc.Writes() == before {
			t.Errorf("mutations should advance the write counter")
		}
		w := doc.Writes()
		_ = el.Tag()
		_, _ = el.Attr("id")
		if doc.Writes() != w {
			t.Errorf("reads should not advance the write counter")
		}
	})

	t.Run("DispatchReachesMatchingListeners", func(t *testing.T) {
		doc := NewDoc()
		el := doc.CreateElement("button")
		clicks := 0
		el.AddListener(EventClick, func(ev Event) {
			clicks++
			if ev.Target != el {
				t.Errorf("event target not set")
			}
		})
		el.AddListener(EventChange, func(Event) { t.Errorf("wrong listener fired") })

		el.Dispatch(Event{Type: EventClick})
		el.Dispatch(Event{Type: EventClick})
		if clicks != 2 {
			t.Errorf("expected 2 clicks, got %d", clicks)
		}
	})

	t.Run("CloneDropsListeners", func(t *testing.T) {
		doc := NewDoc()
		el := doc.CreateElement("li")
		el.SetAttribute("class", "row")
		child := doc.CreateText("x")
		el.AppendChild(child)
		el.AddListener(EventClick, func(Event) { t.Errorf("listener survived clone") })

		clone := el.CloneNode()
		clone.Dispatch(Event{Type: EventClick})

		if v, _ := clone.Attr("class"); v != "row" {
			t.Errorf("clone lost attributes")
		}
		if clone.ChildCount() != 1 || clone.Children()[0] == child {
			t.Errorf("clone should deep-copy children")
		}
	})

	t.Run("TextContent", func(t *testing.T) {
		doc := NewDoc()
		el := doc.CreateElement("p")
		el.AppendChild(doc.CreateText("a"))
		inner := doc.CreateElement("b")
		inner.AppendChild(doc.CreateText("b"))
		el.AppendChild(inner)
		if el.TextContent() != "ab" {
			t.Errorf("expected %q, got %q", "ab", el.TextContent())
		}
	})

	t.Run("SetTextOnElementPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		doc := NewDoc()
		doc.CreateElement("div").SetText("no")
	})
}
