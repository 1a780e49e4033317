package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/remark/internal/core/viewstate"
)

const iconDot = "•"

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m Model) renderLoading() string {
	return "\n  " + m.spinner.View() + " fetching comments…\n"
}

func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Data unavailable"))
	b.WriteString("\n\n")
	b.WriteString(normalStyle.Render(m.err.Error()))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("r reload " + iconDot + " q quit"))
	return "\n" + errorBoxStyle.Render(b.String()) + "\n"
}

// renderComments renders the list: title, search bar, rows, footer.
func (m Model) renderComments() string {
	var b strings.Builder

	state := m.engine.State()
	width := m.contentWidth()

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("remark"))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %d comments", len(m.engine.Comments()))))
	if state.Search != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s  %d match", iconDot, len(m.view.Filtered))))
	}
	b.WriteString("\n\n")

	if m.state == stateSearching {
		b.WriteString("  ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if len(m.view.Paginated) == 0 {
		b.WriteString(mutedStyle.Render("  no comments match"))
		b.WriteString("\n")
	}

	for i, c := range m.view.Paginated {
		selected := i == m.cursor && m.state != stateSearching

		border := "  "
		nameStyle := normalStyle
		if selected {
			border = selectedBorderStyle.Render("┃") + " "
			nameStyle = selectedStyle
		}

		// Line 1: [post] name • email
		postTag := postTagStyle.Render(fmt.Sprintf("[post %d]", c.PostID))
		line1 := fmt.Sprintf("%s %s %s %s",
			postTag,
			nameStyle.Render(ansi.Truncate(c.Name, max(10, width-40), "…")),
			mutedStyle.Render(iconDot),
			emailStyle.Render(c.Email),
		)

		// Line 2: body flattened and truncated to fit
		body := strings.ReplaceAll(c.Body, "\n", " ")
		line2 := bodyStyle.Render(ansi.Truncate(body, max(10, width-4), "…"))

		b.WriteString(border + line1 + "\n")
		b.WriteString(border + line2 + "\n\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	state := m.engine.State()

	parts := []string{
		fmt.Sprintf("page %d/%d", state.Page, m.view.TotalPages),
		fmt.Sprintf("size %d", state.PageSize),
	}

	if state.Sorted() {
		parts = append(parts, activeSortStyle.Render(
			fmt.Sprintf("sort %s %s", sortLabel(state.SortKey), orderArrow(state.SortOrder)),
		))
	}
	if state.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", state.Search))
	}

	line := "  " + strings.Join(parts, "  "+iconDot+"  ")
	hint := "  / search " + iconDot + " p/n/e sort " + iconDot + " ←/→ page " + iconDot + " ? help"

	return footerStyle.Render(line) + "\n" + footerStyle.Render(hint) + "\n"
}

func sortLabel(k viewstate.SortKey) string {
	switch k {
	case viewstate.SortPostID:
		return "post"
	case viewstate.SortName:
		return "name"
	case viewstate.SortEmail:
		return "email"
	default:
		return "none"
	}
}

func orderArrow(o viewstate.SortOrder) string {
	switch o {
	case viewstate.OrderAsc:
		return "↑"
	case viewstate.OrderDesc:
		return "↓"
	default:
		return ""
	}
}
