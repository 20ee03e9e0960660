package glint

// The painter turns a node tree into buffer cells. It is a deliberately
// small flow layout: block-level tags stack vertically, everything else
// flows left to right on the current line, clipped at the paint
// rectangle. Styling comes from tag defaults plus presentation
// attributes (fg, bg, bold, dim, underline, inverse, strike).

var blockTags = map[string]bool{
	"div": true, "p": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "form": true, "section": true,
	"header": true, "footer": true, "hr": true, "table": true, "tr": true,
}

// Painter draws node trees into a buffer.
type Painter struct {
	buf *Buffer
}

// NewPainter makes a painter targeting buf.
func NewPainter(buf *Buffer) *Painter {
	return &Painter{buf: buf}
}

// Paint draws root's content into the rectangle. Content that does not
// fit is clipped, not wrapped.
func (p *Painter) Paint(root *DomNode, x, y, width, height int) {
	c := &paintCursor{buf: p.buf, x0: x, y0: y, w: width, h: height, cx: x, cy: y}
	for _, child := range root.Children() {
		p.paintNode(child, nodeStyle(root, DefaultStyle()), c)
	}
}

type paintCursor struct {
	buf    *Buffer
	x0, y0 int
	w, h   int
	cx, cy int
}

func (c *paintCursor) newline() {
	c.cx = c.x0
	c.cy++
}

func (c *paintCursor) atLineStart() bool { return c.cx == c.x0 }

func (c *paintCursor) inRect() bool { return c.cy < c.y0+c.h }

func (c *paintCursor) write(s string, st Style) {
	if !c.inRect() {
		return
	}
	remaining := c.x0 + c.w - c.cx
	if remaining <= 0 {
		return
	}
	c.cx += c.buf.WriteStringClipped(c.cx, c.cy, s, st, remaining)
}

func (p *Painter) paintNode(n *DomNode, inherited Style, c *paintCursor) {
	if !c.inRect() {
		return
	}
	if n.Kind() == KindText {
		c.write(n.Text(), inherited)
		return
	}
	if n.Kind() == KindMarker {
		return
	}
	if _, hidden := n.Attr("hidden"); hidden {
		return
	}

	st := nodeStyle(n, inherited)
	if n.doc != nil && n.doc.focused == n {
		st = st.Inverse()
	}
	block := blockTags[n.Tag()]
	if block && !c.atLineStart() {
		c.newline()
	}

	switch n.Tag() {
	case "hr":
		for c.cx < c.x0+c.w && c.inRect() {
			c.buf.Set(c.cx, c.cy, NewCell(BoxHorizontal, st))
			c.cx++
		}
	case "input":
		p.paintInput(n, st, c)
	case "select":
		c.write("[", st)
		c.write(n.Value(), st)
		c.write(" ▾]", st) // dropdown arrow
	case "button":
		c.write("[", st)
		p.paintChildren(n, st, c)
		c.write("]", st)
	case "li":
		if parent := n.Parent(); parent != nil && parent.Tag() == "ul" {
			c.write("• ", st)
		}
		p.paintChildren(n, st, c)
	default:
		p.paintChildren(n, st, c)
	}

	if block {
		c.newline()
	}
}

func (p *Painter) paintChildren(n *DomNode, st Style, c *paintCursor) {
	for _, child := range n.Children() {
		p.paintNode(child, st, c)
	}
}

func (p *Painter) paintInput(n *DomNode, st Style, c *paintCursor) {
	if t, _ := n.Attr("type"); t == "checkbox" {
		if n.Checked() {
			c.write("[x]", st)
		} else {
			c.write("[ ]", st)
		}
		return
	}
	c.write("[", st)
	v := n.Value()
	if v == "" {
		if ph, ok := n.Attr("placeholder"); ok {
			c.write(ph, st.Dim())
		}
	} else {
		c.write(v, st)
	}
	c.write("]", st)
}

// nodeStyle resolves the effective style for a node: the inherited style
// layered with tag defaults, then presentation attributes.
func nodeStyle(n *DomNode, inherited Style) Style {
	st := inherited
	if n.Kind() != KindElement {
		return st
	}

	switch n.Tag() {
	case "h1", "h2", "h3", "strong", "b", "th":
		st = st.Bold()
	case "em", "i":
		st = st.Italic()
	case "a", "u":
		st = st.Underline()
	}

	if v, ok := n.Attr("fg"); ok {
		st = st.Foreground(ParseColor(v))
	}
	if v, ok := n.Attr("bg"); ok {
		st = st.Background(ParseColor(v))
	}
	if _, ok := n.Attr("bold"); ok {
		st = st.Bold()
	}
	if _, ok := n.Attr("dim"); ok {
		st = st.Dim()
	}
	if _, ok := n.Attr("underline"); ok {
		st = st.Underline()
	}
	if _, ok := n.Attr("inverse"); ok {
		st = st.Inverse()
	}
	if _, ok := n.Attr("strike"); ok {
		st = st.Strikethrough()
	}
	return st
}
