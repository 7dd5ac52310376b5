package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one selectable row in a modal menu.
type MenuItem struct {
	Label string
	Value string
}

// menu is a plain cursor list: up/down to move, enter to pick, esc to
// close. Deliberately minimal, the two menus here don't need filtering
// or pagination.
type menu struct {
	title  string
	items  []MenuItem
	cursor int
}

func newMenu(title string, items []MenuItem) *menu {
	return &menu{title: title, items: items}
}

func (m *menu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menu) down() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

func (m *menu) selected() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *menu) view(width, height int, hint string) string {
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, it := range m.items {
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("▸ " + it.Label))
		} else {
			b.WriteString(menuItemStyle.Render("  " + it.Label))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(hint))

	box := menuBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
