package tui

import (
	"fmt"
	"strings"
)

// renderProfile renders the feed owner's profile card.
func (m Model) renderProfile() string {
	if m.userErr != nil {
		body := errorStyle.Render("Profile unavailable") + "\n\n" +
			normalStyle.Render(m.userErr.Error())
		return "\n" + errorBoxStyle.Render(body) + "\n" +
			footerStyle.Render("  esc back "+iconDot+" q quit") + "\n"
	}

	if !m.userLoaded {
		return "\n  " + mutedStyle.Render("loading profile…") + "\n"
	}

	u := m.user

	row := func(label, value string) string {
		return profileLabelStyle.Render(label) + profileValueStyle.Render(value)
	}

	lines := []string{
		titleStyle.Render(u.Name) + mutedStyle.Render("  @"+u.Username),
		"",
		row("email", u.Email),
		row("phone", u.Phone),
		row("website", u.Website),
		row("company", u.Company.Name),
		row("", mutedStyle.Render(u.Company.CatchPhrase)),
		row("address", fmt.Sprintf("%s %s, %s %s", u.Address.Street, u.Address.Suite, u.Address.City, u.Address.Zipcode)),
	}

	return "\n" + profileBoxStyle.Render(strings.Join(lines, "\n")) + "\n" +
		footerStyle.Render("  esc back "+iconDot+" q quit") + "\n"
}
