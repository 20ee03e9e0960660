package glint

import "testing"

func paintToString(root *DomNode, w, h int) string {
	buf := NewBuffer(w, h)
	NewPainter(buf).Paint(root, 0, 0, w, h)
	return buf.String()
}

func TestPainter(t *testing.T) {
	t.Run("BlocksStack", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		for _, s := range []string{"one", "two"} {
			p := doc.CreateElement("p")
			p.AppendChild(doc.CreateText(s))
			root.AppendChild(p)
		}
		got := paintToString(root, 10, 4)
		if got != "one\ntwo" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("InlineFlows", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		p := doc.CreateElement("p")
		p.AppendChild(doc.CreateText("a "))
		b := doc.CreateElement("b")
		b.AppendChild(doc.CreateText("bold"))
		p.AppendChild(b)
		p.AppendChild(doc.CreateText(" z"))
		root.AppendChild(p)

		buf := NewBuffer(20, 2)
		NewPainter(buf).Paint(root, 0, 0, 20, 2)
		if buf.Line(0) != "a bold z" {
			t.Errorf("line = %q", buf.Line(0))
		}
		if !buf.Get(2, 0).Style.Attr.Has(AttrBold) {
			t.Errorf("styled span should paint bold cells")
		}
		if buf.Get(0, 0).Style.Attr.Has(AttrBold) {
			t.Errorf("plain text must not inherit the span's bold")
		}
	})

	t.Run("ListMarkers", func(t *testing.T) {
		doc := NewDoc()
		ul := doc.CreateElement("ul")
		li := doc.CreateElement("li")
		li.AppendChild(doc.CreateText("item"))
		ul.AppendChild(li)
		root := doc.CreateElement("div")
		root.AppendChild(ul)
		got := paintToString(root, 12, 3)
		if got != "• item" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("InputAndCheckbox", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		in := doc.CreateElement("input")
		in.SetValue("hi")
		root.AppendChild(in)
		cb := doc.CreateElement("input")
		cb.SetAttribute("type", "checkbox")
		cb.SetChecked(true)
		root.AppendChild(cb)
		if got := paintToString(root, 20, 1); got != "[hi][x]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("HiddenSkipped", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		p := doc.CreateElement("p")
		p.SetAttribute("hidden", "")
		p.AppendChild(doc.CreateText("secret"))
		root.AppendChild(p)
		root.AppendChild(doc.CreateText("shown"))
		if got := paintToString(root, 20, 2); got != "shown" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("PresentationAttributes", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		s := doc.CreateElement("span")
		s.SetAttribute("fg", "red")
		s.SetAttribute("underline", "")
		s.AppendChild(doc.CreateText("x"))
		root.AppendChild(s)

		buf := NewBuffer(4, 1)
		NewPainter(buf).Paint(root, 0, 0, 4, 1)
		cell := buf.Get(0, 0)
		if cell.Style.FG != Red {
			t.Errorf("fg = %+v, want red", cell.Style.FG)
		}
		if !cell.Style.Attr.Has(AttrUnderline) {
			t.Errorf("underline attribute not applied")
		}
	})

	t.Run("ClipsAtRect", func(t *testing.T) {
		doc := NewDoc()
		root := doc.CreateElement("div")
		p := doc.CreateElement("p")
		p.AppendChild(doc.CreateText("0123456789"))
		root.AppendChild(p)
		buf := NewBuffer(10, 1)
		NewPainter(buf).Paint(root, 0, 0, 4, 1)
		if buf.Line(0) != "0123" {
			t.Errorf("line = %q", buf.Line(0))
		}
	})
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"BRIGHT-CYAN", BrightCyan},
		{"213", PaletteColor(213)},
		{"#ff5500", RGB(0xff, 0x55, 0x00)},
		{"", DefaultColor()},
		{"nonsense", DefaultColor()},
	}
	for _, c := range cases {
		if got := ParseColor(c.in); got != c.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
