package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/validation"
)

// feedModel renders the post list with a movable cursor. The list itself
// lives in Content State; the model only keeps view concerns.
type feedModel struct {
	cursor  int
	spinner spinner.Model
}

func newFeedModel() feedModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle
	return feedModel{spinner: sp}
}

func (m Model) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.feed.spinner, cmd = m.feed.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		snap := m.deps.State.Content.Snapshot()

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "up", "k":
			if m.feed.cursor > 0 {
				m.feed.cursor--
			}

		case "down", "j":
			if m.feed.cursor < len(snap.Posts)-1 {
				m.feed.cursor++
			}

		case "r":
			return m, tea.Batch(m.loadPostsCmd(), m.feed.spinner.Tick)

		case "enter":
			if m.feed.cursor < len(snap.Posts) {
				post := snap.Posts[m.feed.cursor]
				m.screen = screenPost
				m.post.postID = post.ID
				m.post.refresh(m.deps.State.Content.Snapshot())
				return m, tea.Batch(m.loadPostCmd(post.ID), m.feed.spinner.Tick)
			}

		case "p":
			m.screen = screenProfile
			m.profile.enterView()
			return m, nil

		case "l":
			return m, m.logoutCmd()
		}
	}
	return m, nil
}

func (m feedModel) view(st *state.State) string {
	snap := st.Content.Snapshot()
	session := st.Session.Current()

	var b strings.Builder

	identifier := ""
	if session.User != nil {
		identifier = session.User.Identifier
	}
	avatar := avatarStyle.Render(validation.DeriveInitial(identifier))
	b.WriteString(avatar + " " + headerStyle.Render("Feed") + " " + dimStyle.Render(identifier))
	b.WriteString("\n\n")

	switch {
	case snap.Loading && len(snap.Posts) == 0:
		b.WriteString(m.spinner.View() + " loading posts…\n")

	case snap.Err != "" && len(snap.Posts) == 0:
		b.WriteString(errorStyle.Render("could not load posts: "+snap.Err) + "\n")
		b.WriteString(dimStyle.Render("press r to retry") + "\n")

	case len(snap.Posts) == 0:
		b.WriteString(dimStyle.Render("no posts yet") + "\n")

	default:
		if snap.Err != "" {
			b.WriteString(errorStyle.Render("refresh failed: "+snap.Err) + "\n\n")
		}
		for i, post := range snap.Posts {
			author := fmt.Sprintf("user #%d", post.UserID)
			if u, ok := snap.Users[post.UserID]; ok {
				author = u.Name
			}
			line := fmt.Sprintf("%s  %s", post.Title, dimStyle.Render("— "+author))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if snap.Loading {
			b.WriteString("\n" + m.spinner.View() + " refreshing…\n")
		}
	}

	b.WriteString(helpStyle.Render("↑/↓: move • enter: open • r: refresh • p: profile • l: log out • q: quit"))
	return b.String()
}
