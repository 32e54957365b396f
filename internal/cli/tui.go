package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
)

// Designer styles
var (
	designSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	designNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	designDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Designer fields, in cursor order. The shape/radius/height rows come
// first, then one row per catalogue system.
const (
	fieldShape = iota
	fieldRadius
	fieldHeight
	fieldSystems // first system row; systems occupy fieldSystems..fieldSystems+9
)

// dimensionStep is the increment applied by ←/→ on radius and height.
const dimensionStep = 1.0

// =============================================================================
// DesignerModel - Interactive habitat designer
// =============================================================================

// DesignerModel is the bubbletea model for the interactive designer.
// It owns a single design session; every edit produces an updated session
// value, so quitting without saving loses nothing but the placements.
type DesignerModel struct {
	Session   layout.Session
	Cursor    int
	SavedPath string
	Status    string
}

// NewDesignerModel creates a designer over the given session.
func NewDesignerModel(session layout.Session) DesignerModel {
	return DesignerModel{Session: session}
}

func (m DesignerModel) Init() tea.Cmd {
	return nil
}

func (m DesignerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kinds := habitat.Kinds()
	maxCursor := fieldSystems + len(kinds) - 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < maxCursor {
				m.Cursor++
			}
		case "left", "h":
			m = m.adjust(-1)
		case "right", "l":
			m = m.adjust(1)
		case " ", "enter":
			if m.Cursor >= fieldSystems {
				kind := kinds[m.Cursor-fieldSystems]
				m.Session = m.Session.Toggle(kind)
				m.Status = ""
			}
		case "a":
			m.Session = m.Session.AutoArrange(nil)
			if len(m.Session.Placements) == 0 {
				m.Status = "no systems enabled"
			} else {
				m.Status = fmt.Sprintf("placed %d systems", len(m.Session.Placements))
			}
		case "c":
			m.Session = m.Session.ClearPlacements()
			m.Status = "placements cleared"
		case "s":
			path := defaultSavePath()
			doc := document.Encode(m.Session.Shape, m.Session.Dims, m.Session.Enabled)
			if err := document.WriteFile(doc, path); err != nil {
				m.Status = "save failed: " + err.Error()
			} else {
				m.SavedPath = path
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// adjust applies a ←/→ press to the field under the cursor.
func (m DesignerModel) adjust(dir int) DesignerModel {
	switch m.Cursor {
	case fieldShape:
		shapes := habitat.Shapes()
		idx := 0
		for i, s := range shapes {
			if s == m.Session.Shape {
				idx = i
			}
		}
		idx = (idx + dir + len(shapes)) % len(shapes)
		m.Session = m.Session.WithShape(shapes[idx])
	case fieldRadius:
		dims := m.Session.Dims
		dims.Radius += float64(dir) * dimensionStep
		if dims.Radius < 1 {
			dims.Radius = 1
		}
		m.Session = m.Session.WithDims(dims)
	case fieldHeight:
		dims := m.Session.Dims
		dims.Height += float64(dir) * dimensionStep
		if dims.Height < 1 {
			dims.Height = 1
		}
		m.Session = m.Session.WithDims(dims)
	}
	return m
}

func (m DesignerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("SOLIS Habitat Designer"))
	b.WriteString("\n")
	b.WriteString(designDimStyle.Render("↑/↓ move  ←/→ change  space toggle  a arrange  c clear  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.viewShell())
	b.WriteString("\n")
	b.WriteString(m.viewSystems())

	if len(m.Session.Placements) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewPlacements())
	}

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(designDimStyle.Render("  " + m.Status))
	}
	b.WriteString("\n")
	return b.String()
}

// viewShell renders the shape/dimension fields and the live metrics.
func (m DesignerModel) viewShell() string {
	var b strings.Builder

	metrics := m.Session.Metrics().Rounded()

	rows := []struct {
		field int
		label string
		value string
	}{
		{fieldShape, "Shape", m.Session.Shape.String()},
		{fieldRadius, "Radius", fmt.Sprintf("%.0f", m.Session.Dims.Radius)},
		{fieldHeight, "Height", fmt.Sprintf("%.0f", m.Session.Dims.Height)},
	}

	for _, row := range rows {
		cursor := "  "
		style := designNormalStyle
		if m.Cursor == row.field {
			cursor = "▸ "
			style = designSelectedStyle
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%-8s %s", row.label, row.value)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + designDimStyle.Render(fmt.Sprintf("volume %.0f · surface %.0f · crew %d",
		metrics.Volume, metrics.SurfaceArea, metrics.CrewCapacity)))
	b.WriteString("\n")
	return b.String()
}

// viewSystems renders the system checklist as a table.
func (m DesignerModel) viewSystems() string {
	kinds := habitat.Kinds()

	rows := [][]string{}
	for i, kind := range kinds {
		info := kind.Info()

		cursor := "  "
		if m.Cursor == fieldSystems+i {
			cursor = "▸ "
		}
		checked := " "
		if m.Session.IsEnabled(kind) {
			checked = StyleSuccess.Render("●")
		}
		rows = append(rows, []string{cursor, checked, info.Glyph, info.Label})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "", "System").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(kinds) {
				return lipgloss.NewStyle()
			}
			kind := kinds[row]
			isCurrent := m.Cursor == fieldSystems+row

			base := lipgloss.NewStyle()
			if isCurrent {
				base = base.Bold(true)
			}
			if m.Session.IsEnabled(kind) {
				return base.Foreground(lipgloss.Color(kind.Info().Color))
			}
			if isCurrent {
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorDim)
		})

	return t.Render() + "\n"
}

// viewPlacements renders the current placement list.
func (m DesignerModel) viewPlacements() string {
	var b strings.Builder
	b.WriteString("  " + designDimStyle.Render("placements") + "\n")
	for _, p := range m.Session.Placements {
		info := p.Kind.Info()
		b.WriteString("  " + designNormalStyle.Render(fmt.Sprintf("%-18s", info.Label)) +
			designDimStyle.Render(fmt.Sprintf("(%7.2f, %6.2f, %7.2f)", p.Position.X, p.Position.Y, p.Position.Z)) + "\n")
	}
	return b.String()
}
