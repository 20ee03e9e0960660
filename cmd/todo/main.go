// Command todo is a small interactive todo list. It drives a glint
// component tree over an in-memory document and paints the tree to the
// terminal through the diffing screen.
//
// Keys: type to edit, enter to add, up/down to select, space to toggle,
// backspace to erase, ctrl-d to delete the selected item, q or ctrl-c
// to quit.
package main

import (
	"fmt"
	"os"
	"strconv"

	"glint"
)

type item struct {
	id    uint64
	title string
	done  bool
}

type todo struct {
	items    []item
	input    string
	selected int
	nextID   uint64
}

func (t *todo) add() {
	if t.input == "" {
		return
	}
	t.nextID++
	t.items = append(t.items, item{id: t.nextID, title: t.input})
	t.input = ""
	t.selected = len(t.items) - 1
}

func (t *todo) toggle() {
	if t.selected >= 0 && t.selected < len(t.items) {
		t.items[t.selected].done = !t.items[t.selected].done
	}
}

func (t *todo) remove() {
	if t.selected >= 0 && t.selected < len(t.items) {
		t.items = append(t.items[:t.selected], t.items[t.selected+1:]...)
		if t.selected >= len(t.items) {
			t.selected = len(t.items) - 1
		}
	}
}

func (t *todo) move(delta int) {
	next := t.selected + delta
	if next >= 0 && next < len(t.items) {
		t.selected = next
	}
}

func (t *todo) remaining() int {
	n := 0
	for _, it := range t.items {
		if !it.done {
			n++
		}
	}
	return n
}

func render(t *todo, e *glint.ElementUpdater) {
	e.Nodes(func(n *glint.NodesUpdater) {
		n.Element("h1", func(e *glint.ElementUpdater) {
			e.Nodes(func(n *glint.NodesUpdater) {
				n.StaticText("todos")
			})
		})
		n.Element("form", func(e *glint.ElementUpdater) {
			e.Nodes(func(n *glint.NodesUpdater) {
				n.Element("input", func(e *glint.ElementUpdater) {
					e.Placeholder("what needs doing?").Value(t.input)
				})
			})
		})
		n.Element("ul", func(e *glint.ElementUpdater) {
			e.KeyedList("li", glint.CreateNew, len(t.items),
				func(i int) glint.Key { return glint.UintKey(t.items[i].id) },
				func(i int, e *glint.ElementUpdater) {
					it := t.items[i]
					e.Bool("inverse", i == t.selected).
						Bool("strike", it.done).
						Bool("dim", it.done)
					e.Nodes(func(n *glint.NodesUpdater) {
						if it.done {
							n.Text("[x] ")
						} else {
							n.Text("[ ] ")
						}
						n.Text(it.title)
					})
				})
		})
		n.Element("p", func(e *glint.ElementUpdater) {
			e.Statics().Bool("dim", true)
			e.Nodes(func(n *glint.NodesUpdater) {
				n.Text(strconv.Itoa(t.remaining()) + " left")
			})
		})
	})
}

func main() {
	screen, err := glint.NewScreen(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
	if err := screen.EnterRawMode(); err != nil {
		fmt.Fprintln(os.Stderr, "todo:", err)
		os.Exit(1)
	}
	defer screen.ExitRawMode()

	doc := glint.NewDoc()
	root := doc.CreateElement("div")
	comp := glint.MountApp(doc, root, todo{}, render)

	painter := glint.NewPainter(screen.Buffer())
	paint := func() {
		screen.Clear()
		painter.Paint(root, 1, 1, screen.Width()-2, screen.Height()-2)
		screen.Buffer().DrawBorder(0, 0, screen.Width(), screen.Height(),
			glint.BorderRounded, glint.DefaultStyle().Dim())
		screen.Flush()
	}
	paint()

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		b := buf[0]
		switch {
		case b == 'q' || b == 3: // ctrl-c
			return
		case b == '\r' || b == '\n':
			comp.Update(func(t *todo) { t.add() })
		case b == 127 || b == 8: // backspace
			comp.Update(func(t *todo) {
				if len(t.input) > 0 {
					t.input = t.input[:len(t.input)-1]
				}
			})
		case b == ' ':
			comp.Update(func(t *todo) {
				if t.input == "" {
					t.toggle()
				} else {
					t.input += " "
				}
			})
		case b == 4: // ctrl-d
			comp.Update(func(t *todo) { t.remove() })
		case b == 0x1b: // arrow escape sequence
			seq := make([]byte, 2)
			if n, _ := os.Stdin.Read(seq); n == 2 && seq[0] == '[' {
				switch seq[1] {
				case 'A':
					comp.Update(func(t *todo) { t.move(-1) })
				case 'B':
					comp.Update(func(t *todo) { t.move(1) })
				}
			}
		case b >= 0x20 && b < 0x7f:
			comp.Update(func(t *todo) { t.input += string(b) })
		}
		paint()
	}
}
