package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// newDetailViewport builds a viewport over the glamour-rendered card
// for the selected comment.
func (m Model) newDetailViewport() viewport.Model {
	width := m.contentWidth()
	height := m.height - 4
	if height < 5 {
		height = 5
	}

	vp := viewport.New(width, height)
	vp.SetContent(m.renderDetailContent(width))
	return vp
}

func (m Model) renderDetailContent(width int) string {
	c, ok := m.selected()
	if !ok {
		return mutedStyle.Render("nothing selected")
	}

	md := fmt.Sprintf("# %s\n\n**post:** %d  \n**from:** %s\n\n---\n\n%s\n",
		c.Name, c.PostID, c.Email, c.Body)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(40, width-4)),
	)
	if err != nil {
		log.Warn().Err(err).Msg("glamour renderer init failed")
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("glamour render failed")
		return md
	}
	return out
}

func (m Model) renderDetail() string {
	footer := footerStyle.Render("  esc back " + iconDot + " ↑/↓ scroll " + iconDot + " q quit")
	return m.detail.View() + "\n" + footer + "\n"
}
