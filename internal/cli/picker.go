package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/nugraph/pkg/catalog"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// PackageListModel is the bubbletea model for interactive catalog package
// selection.
type PackageListModel struct {
	Packages []string
	Direct   map[string]int
	Total    map[string]int
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewPackageListModel creates a list of the packages in cat.
func NewPackageListModel(cat catalog.Catalog) PackageListModel {
	names := cat.Packages()
	m := PackageListModel{
		Packages: names,
		Direct:   make(map[string]int, len(names)),
		Total:    make(map[string]int, len(names)),
		Height:   15,
	}
	for _, name := range names {
		m.Direct[name] = len(cat[name])
		m.Total[name] = len(cat.Edges(name))
	}
	return m
}

func (m PackageListModel) Init() tea.Cmd {
	return nil
}

func (m PackageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Packages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Packages) == 0 {
				return m, nil
			}
			m.Selected = m.Packages[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m PackageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Package"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Packages))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		name := m.Packages[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, name, strconv.Itoa(m.Direct[name]), strconv.Itoa(m.Total[name])})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Package", "Direct", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Packages))))

	return b.String()
}
