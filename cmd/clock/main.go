// Command clock hosts a glint component inside a bubbletea program: the
// component tree renders into an in-memory document, a painter turns it
// into a cell buffer each frame, and lipgloss frames the result. It
// shows the engine running on top of an event loop it does not own.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glint"
)

type clock struct {
	now    time.Time
	ticks  int
	paused bool
}

func render(c *clock, e *glint.ElementUpdater) {
	e.Nodes(func(n *glint.NodesUpdater) {
		n.Element("h1", func(e *glint.ElementUpdater) {
			e.Nodes(func(n *glint.NodesUpdater) {
				n.StaticText("clock")
			})
		})
		n.Element("p", func(e *glint.ElementUpdater) {
			e.Str("bold", "")
			e.Nodes(func(n *glint.NodesUpdater) {
				n.Text(c.now.Format("15:04:05"))
			})
		})
		n.Match(boolArm(c.paused), func(n *glint.NodesUpdater) {
			if c.paused {
				n.Element("p", func(e *glint.ElementUpdater) {
					e.Statics().Bool("dim", true)
					e.Nodes(func(n *glint.NodesUpdater) {
						n.StaticText("paused - space to resume")
					})
				})
			} else {
				n.Element("p", func(e *glint.ElementUpdater) {
					e.Nodes(func(n *glint.NodesUpdater) {
						n.Text(fmt.Sprintf("%d ticks", c.ticks))
					})
				})
			}
		})
	})
}

func boolArm(b bool) int {
	if b {
		return 1
	}
	return 0
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	doc  *glint.Doc
	root *glint.DomNode
	comp glint.Comp[clock]
}

func newModel() model {
	doc := glint.NewDoc()
	root := doc.CreateElement("div")
	comp := glint.MountApp(doc, root, clock{now: time.Now()}, render)
	return model{doc: doc, root: root, comp: comp}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.comp.Update(func(c *clock) {
			if !c.paused {
				c.now = time.Time(msg)
				c.ticks++
			}
		})
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.comp.Update(func(c *clock) { c.paused = !c.paused })
		}
	}
	return m, nil
}

var frame = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 2)

func (m model) View() string {
	buf := glint.NewBuffer(40, 8)
	glint.NewPainter(buf).Paint(m.root, 0, 0, 40, 8)
	return frame.Render(buf.String()) + "\n q quit - space pause\n"
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "clock:", err)
		os.Exit(1)
	}
}
