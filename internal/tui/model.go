// Package tui implements the interactive comment dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/remark/internal/core/comment"
	"github.com/colonyops/remark/internal/core/viewstate"
	"github.com/colonyops/remark/internal/remark"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateLoading UIState = iota
	stateBrowse
	stateSearching
	stateDetail
	stateProfile
	stateShowingHelp
	stateError
)

// Messages produced by the data-source commands.
type (
	commentsLoadedMsg struct{ comments []comment.Comment }
	fetchFailedMsg    struct{ err error }
	userLoadedMsg     struct{ user comment.User }
	userFailedMsg     struct{ err error }
)

// Model is the main Bubble Tea model for the dashboard.
type Model struct {
	app    *remark.App
	engine *viewstate.Engine
	view   viewstate.View

	keys  keyMap
	state UIState

	spinner     spinner.Model
	searchInput textinput.Model
	detail      viewport.Model

	cursor int // selection within the current page
	width  int
	height int

	err error

	user       comment.User
	userErr    error
	userLoaded bool

	quitting bool
}

// New creates the dashboard model. The engine is hydrated from saved
// preferences once the initial fetch completes.
func New(app *remark.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = selectedBorderStyle

	input := textinput.New()
	input.Placeholder = "search name, email, body"
	input.Prompt = "/"
	input.PromptStyle = searchPromptStyle
	input.CharLimit = 120

	if p, ok := GetPalette(app.Config.UI.Theme); ok {
		SetTheme(p)
	}

	return Model{
		app:         app,
		engine:      app.NewEngine(),
		keys:        defaultKeyMap(),
		state:       stateLoading,
		spinner:     s,
		searchInput: input,
	}
}

// Init starts the spinner and kicks off the one-shot data fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchComments(), m.fetchUser())
}

// fetchComments performs the single fire-once read of the comment feed.
func (m Model) fetchComments() tea.Cmd {
	c := m.app.Client
	timeout := m.app.Config.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		comments, err := c.Comments(ctx)
		if err != nil {
			log.Error().Err(err).Msg("initial fetch failed")
			return fetchFailedMsg{err: err}
		}
		return commentsLoadedMsg{comments: comments}
	}
}

// fetchUser loads the feed owner's profile. Failure only degrades the
// profile tab; the comment list does not depend on it.
func (m Model) fetchUser() tea.Cmd {
	c := m.app.Client
	id := m.app.Config.API.UserID
	timeout := m.app.Config.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		user, err := c.User(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int("user_id", id).Msg("profile fetch failed")
			return userFailedMsg{err: err}
		}
		return userLoadedMsg{user: user}
	}
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(20, msg.Width-8)
		if m.state == stateDetail {
			m.detail = m.newDetailViewport()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commentsLoadedMsg:
		m.engine.SetComments(msg.comments)
		m.engine.Hydrate()
		m.searchInput.SetValue(m.engine.State().Search)
		m.reDerive()
		m.state = stateBrowse
		return m, nil

	case fetchFailedMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil

	case userLoadedMsg:
		m.user = msg.user
		m.userLoaded = true
		m.userErr = nil
		return m, nil

	case userFailedMsg:
		m.userErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere except while typing a search.
	if m.state != stateSearching && key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateSearching:
		return m.handleSearchKey(msg)
	case stateBrowse:
		return m.handleBrowseKey(msg)
	case stateDetail:
		return m.handleDetailKey(msg)
	case stateProfile, stateShowingHelp:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Profile) {
			m.state = stateBrowse
		}
		return m, nil
	case stateError:
		if key.Matches(msg, m.keys.Retry) {
			m.err = nil
			m.state = stateLoading
			return m, tea.Batch(m.spinner.Tick, m.fetchComments(), m.fetchUser())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Paginated)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevPage):
		m.engine.PrevPage()
		m.reDerive()
	case key.Matches(msg, m.keys.NextPage):
		m.engine.NextPage()
		m.reDerive()
	case key.Matches(msg, m.keys.Search):
		m.state = stateSearching
		m.searchInput.SetValue(m.engine.State().Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keys.SortPost):
		m.engine.SetSort(viewstate.SortPostID)
		m.reDerive()
	case key.Matches(msg, m.keys.SortName):
		m.engine.SetSort(viewstate.SortName)
		m.reDerive()
	case key.Matches(msg, m.keys.SortEmail):
		m.engine.SetSort(viewstate.SortEmail)
		m.reDerive()
	case key.Matches(msg, m.keys.PageSize):
		m.engine.CyclePageSize()
		m.reDerive()
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.searchInput.SetValue("")
		m.reDerive()
	case key.Matches(msg, m.keys.Open):
		if len(m.view.Paginated) > 0 {
			m.detail = m.newDetailViewport()
			m.state = stateDetail
		}
	case key.Matches(msg, m.keys.Profile):
		m.state = stateProfile
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		m.engine.SetSearch(m.searchInput.Value())
		m.reDerive()
		m.searchInput.Blur()
		m.state = stateBrowse
		return m, nil
	case keyEscape:
		// Abandon the edit; the engine state is untouched.
		m.searchInput.SetValue(m.engine.State().Search)
		m.searchInput.Blur()
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// reDerive recomputes the view after a state mutation and keeps the
// cursor inside the new page.
func (m *Model) reDerive() {
	m.view = m.engine.Derive()
	if m.cursor >= len(m.view.Paginated) {
		m.cursor = max(0, len(m.view.Paginated)-1)
	}
}

// selected returns the comment under the cursor, if any.
func (m Model) selected() (comment.Comment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Paginated) {
		return comment.Comment{}, false
	}
	return m.view.Paginated[m.cursor], true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLoading:
		return m.renderLoading()
	case stateError:
		return m.renderError()
	case stateDetail:
		return m.renderDetail()
	case stateProfile:
		return m.renderProfile()
	case stateShowingHelp:
		return m.renderHelp()
	default:
		return m.renderComments()
	}
}
