package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// helpSection groups related bindings under a title.
type helpSection struct {
	title    string
	bindings []key.Binding
}

func (m Model) helpSections() []helpSection {
	return []helpSection{
		{
			title:    "Navigate",
			bindings: []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevPage, m.keys.NextPage, m.keys.Open, m.keys.Back},
		},
		{
			title:    "View",
			bindings: []key.Binding{m.keys.Search, m.keys.SortPost, m.keys.SortName, m.keys.SortEmail, m.keys.PageSize, m.keys.Reset},
		},
		{
			title:    "Other",
			bindings: []key.Binding{m.keys.Profile, m.keys.Help, m.keys.Quit},
		},
	}
}

// renderHelp renders the keyboard shortcut overlay.
func (m Model) renderHelp() string {
	var lines []string
	separator := mutedStyle.Render("─────────────────────────")

	for i, section := range m.helpSections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headerStyle.Render(section.title), separator)

		for _, b := range section.bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%s  %s",
				helpKeyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				normalStyle.Render(h.Desc),
			))
		}
	}

	lines = append(lines, "", mutedStyle.Render("press esc to close"))

	return "\n" + helpBoxStyle.Render(strings.Join(lines, "\n")) + "\n"
}
