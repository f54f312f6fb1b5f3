package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmate/internal/ui/theme"
)

// MenuItem is one selectable card in a Menu.
type MenuItem struct {
	Label  string
	Hint   string
	Action func() tea.Cmd
}

// Menu is a vertical list of selectable cards.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if action := m.Items[m.Selected].Action; action != nil {
				return m, action()
			}
		}
	}

	return m, nil
}

// View renders every item as a card and returns the rendered string along
// with the line on which the selected card starts.
func (m Menu) View(width int) (string, int) {
	var b strings.Builder
	lines, selectedLine := 0, 0
	for i, item := range m.Items {
		focused := i == m.Selected

		label := theme.Unselected.Render(item.Label)
		if focused {
			label = theme.Selected.Render("▸ " + item.Label)
			selectedLine = lines
		}
		body := label
		if item.Hint != "" {
			body += "\n" + theme.Hint.Render(item.Hint)
		}

		card := Card(body, width, focused)
		lines += lipgloss.Height(card)
		b.WriteString(card)
		b.WriteString("\n")
	}
	return b.String(), selectedLine
}
