package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mogligram/mogligram/internal/client/models"
	"github.com/mogligram/mogligram/internal/client/state"
)

// fieldLabels maps the profile fields to their display captions, in the same
// order as state.Fields.
var fieldLabels = []string{
	"Name", "Bio", "Age", "Date of birth", "Location",
	"Phone", "Company", "Website", "Interests",
}

// profileModel has two modes: a read-only view with the completion bar, and
// an edit form with one input per field. Edits are local until saved; esc
// throws them away.
type profileModel struct {
	editing bool
	inputs  []textinput.Model
	focus   int
	bar     progress.Model

	// original is the record as it was when editing started, used to build
	// the save patch from changed fields only.
	original models.ProfileRecord
}

func newProfileModel() profileModel {
	bar := progress.New(progress.WithSolidFill(string(brandColor)))
	bar.Width = 40

	inputs := make([]textinput.Model, len(state.Fields))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		inputs[i] = in
	}
	return profileModel{inputs: inputs, bar: bar}
}

func (p *profileModel) enterView() {
	p.editing = false
}

func (p *profileModel) enterEdit(st *state.State) tea.Cmd {
	rec, _ := st.Profile.Current()
	p.original = rec
	p.editing = true
	p.focus = 0

	for i, field := range state.Fields {
		p.inputs[i].SetValue(st.Profile.Value(field))
		p.inputs[i].Blur()
	}
	return p.inputs[0].Focus()
}

// patch collects the fields whose value differs from the record at edit
// entry. An unchanged form yields the zero patch.
func (p *profileModel) patch() state.ProfilePatch {
	var patch state.ProfilePatch
	dst := map[state.Field]**string{
		state.FieldName:        &patch.Name,
		state.FieldBio:         &patch.Bio,
		state.FieldAge:         &patch.Age,
		state.FieldDateOfBirth: &patch.DateOfBirth,
		state.FieldLocation:    &patch.Location,
		state.FieldPhone:       &patch.Phone,
		state.FieldCompany:     &patch.Company,
		state.FieldWebsite:     &patch.Website,
		state.FieldInterests:   &patch.Interests,
	}
	originals := map[state.Field]string{
		state.FieldName:        p.original.Name,
		state.FieldBio:         p.original.Bio,
		state.FieldAge:         p.original.Age,
		state.FieldDateOfBirth: p.original.DateOfBirth,
		state.FieldLocation:    p.original.Location,
		state.FieldPhone:       p.original.Phone,
		state.FieldCompany:     p.original.Company,
		state.FieldWebsite:     p.original.Website,
		state.FieldInterests:   p.original.Interests,
	}

	for i, field := range state.Fields {
		value := p.inputs[i].Value()
		if value != originals[field] {
			v := value
			*dst[field] = &v
		}
	}
	return patch
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.profile.editing {
		return m.updateProfileEdit(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "b":
			m.screen = screenFeed
			return m, nil
		case "e", "enter":
			return m, m.profile.enterEdit(m.deps.State)
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateProfileEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.profile.editing = false
			return m, nil

		case tea.KeyTab, tea.KeyDown:
			return m, m.profile.moveFocus(1)

		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.profile.moveFocus(-1)

		case tea.KeyEnter:
			patch := m.profile.patch()
			m.profile.editing = false
			return m, m.saveProfileCmd(patch)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m Model) saveProfileCmd(patch state.ProfilePatch) tea.Cmd {
	return func() tea.Msg {
		m.deps.Profile.SaveProfile(context.Background(), patch)
		return contentMsg{}
	}
}

func (p *profileModel) moveFocus(delta int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + delta + len(p.inputs)) % len(p.inputs)
	return p.inputs[p.focus].Focus()
}

func (p profileModel) view(st *state.State) string {
	if p.editing {
		return p.viewEdit()
	}

	rec, percent := st.Profile.Current()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Profile"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %d%%\n", p.bar.ViewAs(float64(percent)/100), percent))
	b.WriteString("\n")

	values := []string{
		rec.Name, rec.Bio, rec.Age, rec.DateOfBirth, rec.Location,
		rec.Phone, rec.Company, rec.Website, rec.Interests,
	}
	for i, label := range fieldLabels {
		value := values[i]
		if value == "" {
			value = dimStyle.Render("—")
		}
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	b.WriteString(helpStyle.Render("e: edit • esc: back • q: quit"))
	return b.String()
}

func (p profileModel) viewEdit() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Edit profile"))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		caption := labelStyle.Render(label)
		if i == p.focus {
			caption = selectedStyle.Render(fmt.Sprintf("%-14s", label))
		}
		b.WriteString(caption + p.inputs[i].View() + "\n")
	}

	b.WriteString(helpStyle.Render("tab/↑/↓: move • enter: save • esc: cancel"))
	return b.String()
}
