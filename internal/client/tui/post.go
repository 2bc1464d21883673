package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mogligram/mogligram/internal/client/state"
)

// postModel shows a single post with its comments in a scrollable viewport.
type postModel struct {
	postID   int
	viewport viewport.Model
	ready    bool
	loading  bool
	errMsg   string
}

func newPostModel() postModel {
	return postModel{}
}

func (p *postModel) resize(width, height int) {
	// Header and footer take three lines each.
	vh := height - 6
	if vh < 1 {
		vh = 1
	}
	if !p.ready {
		p.viewport = viewport.New(width, vh)
		p.ready = true
	} else {
		p.viewport.Width = width
		p.viewport.Height = vh
	}
}

// refresh re-renders the viewport from the latest content snapshot.
func (p *postModel) refresh(snap state.ContentSnapshot) {
	p.loading = snap.Loading
	p.errMsg = snap.Err

	if snap.CurrentPost == nil {
		return
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(snap.CurrentPost.Title))
	b.WriteString("\n\n")
	b.WriteString(snap.CurrentPost.Body)
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(snap.Comments))))
	b.WriteString("\n")
	for _, c := range snap.Comments {
		b.WriteString("\n")
		b.WriteString(selectedStyle.Render(c.Name) + " " + dimStyle.Render(c.Email))
		b.WriteString("\n")
		b.WriteString(c.Body)
		b.WriteString("\n")
	}
	if p.ready {
		p.viewport.SetContent(b.String())
	}
}

func (m Model) updatePost(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "b":
			m.screen = screenFeed
			return m, nil
		case "q":
			return m, tea.Quit
		case "r":
			return m, tea.Batch(m.loadPostCmd(m.post.postID), m.feed.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.post.viewport, cmd = m.post.viewport.Update(msg)
	return m, cmd
}

func (p postModel) view() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Post"))
	b.WriteString("\n\n")

	switch {
	case p.errMsg != "":
		b.WriteString(errorStyle.Render("could not load post: "+p.errMsg) + "\n")
		b.WriteString(dimStyle.Render("press r to retry") + "\n")
	case p.loading:
		b.WriteString(dimStyle.Render("loading…") + "\n")
	case p.ready:
		b.WriteString(p.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: scroll • esc: back • r: retry • q: quit"))
	return b.String()
}
