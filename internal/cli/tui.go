package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// InspectModel - Interactive layout tree browser
// =============================================================================

// inspectRow is one visible line of the element tree.
type inspectRow struct {
	info  scene.ElementInfo
	depth int
}

// InspectModel is the bubbletea model for browsing a resolved layout.
type InspectModel struct {
	Layout scene.Layout
	Rows   []inspectRow
	Cursor int
	Height int
	Offset int
}

// NewInspectModel creates a tree browser over a resolved layout.
func NewInspectModel(l scene.Layout) InspectModel {
	depths := make(map[string]int, len(l.Elements))
	rows := make([]inspectRow, 0, len(l.Elements))
	for _, el := range l.Elements {
		d := 0
		if el.Parent != "" {
			d = depths[el.Parent] + 1
		}
		depths[el.ID] = d
		rows = append(rows, inspectRow{info: el, depth: d})
	}
	return InspectModel{
		Layout: l,
		Rows:   rows,
		Height: 12,
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help line, and the detail panel.
		m.Height = msg.Height - 16
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s  %g×%g",
		m.Layout.Artboard.ID, m.Layout.Artboard.Width, m.Layout.Artboard.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := cursor + strings.Repeat("  ", r.depth) + style.Render(r.info.ID)
		if r.info.Kind != "" {
			line += " " + listDimStyle.Render(r.info.Kind)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.Rows) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detailView(m.Rows[m.Cursor].info))
	}

	return b.String()
}

// detailView renders the boxes and anchors of the selected element.
func (m InspectModel) detailView(el scene.ElementInfo) string {
	var b strings.Builder

	bb, cb := el.BorderBox, el.ContentBox
	b.WriteString(listDimStyle.Render("border  ") +
		StyleValue.Render(fmt.Sprintf("(%g, %g) %g×%g", bb.X, bb.Y, bb.Width, bb.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("content ") +
		StyleValue.Render(fmt.Sprintf("(%g, %g) %g×%g", cb.X, cb.Y, cb.Width, cb.Height)))
	b.WriteString("\n")

	names := make([]string, 0, len(el.Anchors))
	for a := range el.Anchors {
		names = append(names, string(a))
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p := el.Anchors[geom.Anchor(name)]
		rows = append(rows, []string{name, fmt.Sprintf("%g", p.X), fmt.Sprintf("%g", p.Y)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Anchor", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	return b.String()
}

// runInspectTUI opens the interactive tree browser over a resolved layout.
func runInspectTUI(l scene.Layout) error {
	p := tea.NewProgram(NewInspectModel(l))
	_, err := p.Run()
	return err
}
