package splitbutton

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/uiforge/splitbutton/pkg/theme"
)

// filterThreshold is the item count above which the menu grows a fuzzy
// filter input.
const filterThreshold = 8

// menuModel is the trigger menu overlay: an ordered item list with a
// cursor that skips disabled entries, plus an optional fuzzy filter.
type menuModel struct {
	items    []MenuItem
	filtered []MenuItem
	cursor   int
	minWidth int

	filterable  bool
	searchInput textinput.Model
}

func newMenu(items []MenuItem, minWidth int) menuModel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 48
	ti.Width = 20

	m := menuModel{
		items:       items,
		filtered:    items,
		minWidth:    minWidth,
		filterable:  len(items) > filterThreshold,
		searchInput: ti,
	}
	if m.filterable {
		m.searchInput.Focus()
	}
	m.cursor = m.firstEnabled(0, +1)
	return m
}

// firstEnabled walks from idx in the given direction to the nearest
// enabled item. Returns -1 when nothing is selectable.
func (m menuModel) firstEnabled(idx, dir int) int {
	for i := idx; i >= 0 && i < len(m.filtered); i += dir {
		if m.filtered[i].Enabled {
			return i
		}
	}
	return -1
}

func (m *menuModel) moveCursor(dir int) {
	if next := m.firstEnabled(m.cursor+dir, dir); next >= 0 {
		m.cursor = next
	}
}

// update consumes one key event. resolved reports that the interaction
// finished; value is nil on dismissal.
func (m menuModel) update(msg tea.KeyMsg) (menuModel, bool, *string) {
	switch msg.String() {
	case "esc":
		return m, true, nil
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.filtered) && m.filtered[m.cursor].Enabled {
			v := m.filtered[m.cursor].Value
			return m, true, &v
		}
		return m, false, nil
	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, false, nil
	case "down", "ctrl+n", "tab":
		m.moveCursor(+1)
		return m, false, nil
	}

	if m.filterable {
		m.searchInput, _ = m.searchInput.Update(msg)
		m.applyFilter()
	}
	return m, false, nil
}

// applyFilter narrows filtered to fuzzy matches of the search query,
// preserving match rank order.
func (m *menuModel) applyFilter() {
	query := m.searchInput.Value()
	if query == "" {
		m.filtered = m.items
	} else {
		haystack := make([]string, len(m.items))
		for i, it := range m.items {
			haystack[i] = it.Label + " " + it.Value
		}
		matches := fuzzy.Find(query, haystack)
		filtered := make([]MenuItem, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, m.items[match.Index])
		}
		m.filtered = filtered
	}
	m.cursor = m.firstEnabled(0, +1)
}

// view renders the menu panel at its minimum width.
func (m menuModel) view(th theme.Theme) string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Outline)

	itemStyle := lipgloss.NewStyle().Foreground(th.OnSurface)
	selectedStyle := lipgloss.NewStyle().
		Foreground(th.OnSecondaryContainer).
		Background(th.SecondaryContainer).
		Bold(true)
	disabledStyle := lipgloss.NewStyle().Foreground(th.Outline).Faint(true)

	width := m.minWidth
	for _, it := range m.items {
		if w := lipgloss.Width(it.Label) + 2; w > width {
			width = w
		}
	}

	var b strings.Builder
	if m.filterable {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(disabledStyle.Render("no matches"))
	}
	for i, it := range m.filtered {
		if i > 0 || m.filterable {
			b.WriteString("\n")
		}
		line := " " + it.Label + strings.Repeat(" ", max(0, width-lipgloss.Width(it.Label)-1))
		switch {
		case !it.Enabled:
			b.WriteString(disabledStyle.Render(line))
		case i == m.cursor:
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(itemStyle.Render(line))
		}
	}
	return panel.Render(b.String())
}
