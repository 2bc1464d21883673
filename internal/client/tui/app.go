package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Messages produced by commands. Content loads carry no payload: the command
// writes through a service into the state containers, and the message only
// tells the view to re-read its snapshot.
type (
	splashTickMsg struct{}
	hydratedMsg   struct{}
	loginDoneMsg  struct{ err error }
	contentMsg    struct{}
	loggedOutMsg  struct{}
)

// Model is the root bubbletea model. It owns screen routing and delegates
// per-screen behavior to the sub-models.
type Model struct {
	deps Deps

	screen screen
	width  int
	height int

	// Splash leaves only when both the minimum delay has elapsed and
	// hydration has finished, whichever comes last.
	splashDone bool
	hydrated   bool

	login   loginModel
	feed    feedModel
	post    postModel
	profile profileModel
}

// New constructs the root model.
func New(deps Deps) Model {
	if deps.SplashDelay <= 0 {
		deps.SplashDelay = time.Second
	}
	return Model{
		deps:    deps,
		screen:  screenSplash,
		login:   newLoginModel(),
		feed:    newFeedModel(),
		post:    newPostModel(),
		profile: newProfileModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(m.deps.SplashDelay, func(time.Time) tea.Msg { return splashTickMsg{} }),
		m.hydrateCmd(),
		m.feed.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.post.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case splashTickMsg:
		m.splashDone = true
		return m.maybeLeaveSplash()

	case hydratedMsg:
		m.hydrated = true
		return m.maybeLeaveSplash()

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.submitErr = msg.err.Error()
			return m, nil
		}
		return m.enterFeed()

	case loggedOutMsg:
		m.screen = screenLogin
		m.login = newLoginModel()
		return m, m.login.focusCmd()

	case contentMsg:
		// State already updated; the active screen re-reads its snapshot.
		if m.screen == screenPost {
			m.post.refresh(m.deps.State.Content.Snapshot())
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenPost:
		return m.updatePost(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenSplash:
		return m.viewSplash()
	case screenLogin:
		return m.login.view()
	case screenFeed:
		return m.feed.view(m.deps.State)
	case screenPost:
		return m.post.view()
	case screenProfile:
		return m.profile.view(m.deps.State)
	}
	return ""
}

func (m Model) viewSplash() string {
	logo := titleStyle.Render("Mogligram")
	sub := dimStyle.Render("loading…")
	body := lipgloss.JoinVertical(lipgloss.Center, logo, sub)
	if m.width == 0 {
		return body + "\n"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// maybeLeaveSplash moves off the splash once the delay has elapsed and
// hydration is done. A restored session skips the login screen entirely.
func (m Model) maybeLeaveSplash() (tea.Model, tea.Cmd) {
	if !m.splashDone || !m.hydrated {
		return m, nil
	}
	if m.deps.State.Session.IsAuthenticated() {
		return m.enterFeed()
	}
	m.screen = screenLogin
	return m, m.login.focusCmd()
}

func (m Model) enterFeed() (tea.Model, tea.Cmd) {
	m.screen = screenFeed
	return m, tea.Batch(m.loadPostsCmd(), m.loadUsersCmd(), m.feed.spinner.Tick)
}

// Commands. Each one runs on its own goroutine, so services must only touch
// the mutex-guarded containers, never the model.

func (m Model) hydrateCmd() tea.Cmd {
	return func() tea.Msg {
		m.deps.Hydrator.Run(context.Background())
		return hydratedMsg{}
	}
}

func (m Model) loginCmd(identifier, password string) tea.Cmd {
	delay := m.deps.LoginDelay
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		_, err := m.deps.Auth.Login(context.Background(), identifier, password)
		return loginDoneMsg{err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		m.deps.Auth.Logout(context.Background())
		return loggedOutMsg{}
	}
}

func (m Model) loadPostsCmd() tea.Cmd {
	return func() tea.Msg {
		m.deps.Content.LoadPosts(context.Background())
		return contentMsg{}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	return func() tea.Msg {
		m.deps.Content.LoadUsers(context.Background())
		return contentMsg{}
	}
}

func (m Model) loadPostCmd(id int) tea.Cmd {
	return func() tea.Msg {
		m.deps.Content.LoadPost(context.Background(), id)
		return contentMsg{}
	}
}
