package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/sixcities"
)

type formKind int

const (
	formLogin formKind = iota
	formReview
)

// form is a modal with a column of text inputs.
type form struct {
	kind       formKind
	title      string
	labels     []string
	inputs     []textinput.Model
	focus      int
	err        string
	offerID    string
	submitting bool
}

func newLoginForm() *form {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := &form{
		kind:   formLogin,
		title:  "Sign in",
		labels: []string{"E-mail", "Password"},
		inputs: []textinput.Model{email, password},
	}
	f.setFocus(0)
	return f
}

func newReviewForm(offerID string) *form {
	rating := textinput.New()
	rating.Placeholder = "1-5"
	rating.CharLimit = 1

	comment := textinput.New()
	comment.Placeholder = "Tell how was your stay, what you like and what can be improved"
	comment.CharLimit = 300

	f := &form{
		kind:    formReview,
		title:   "Your review",
		labels:  []string{"Rating", "Comment"},
		inputs:  []textinput.Model{rating, comment},
		offerID: offerID,
	}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for idx := range f.inputs {
		if idx == f.focus {
			f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
}

func (f *form) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) authData() sixcities.AuthData {
	return sixcities.AuthData{Email: f.value(0), Password: f.value(1)}
}

func (f *form) reviewForm() sixcities.ReviewForm {
	rating, _ := strconv.Atoi(f.value(0))
	return sixcities.ReviewForm{Rating: rating, Comment: f.value(1)}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.form = nil
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		f.setFocus(f.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		f.setFocus(f.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	if f.submitting {
		return m, nil
	}
	f.submitting = true
	f.err = ""

	switch f.kind {
	case formLogin:
		creds := f.authData()
		return m, m.runOp(opLogin, func(ctx context.Context) error {
			return m.ops.Login(ctx, creds)
		})
	default:
		id, review := f.offerID, f.reviewForm()
		return m, m.runOp(opReview, func(ctx context.Context) error {
			return m.ops.CreateComment(ctx, id, review)
		})
	}
}

func (m Model) renderForm() string {
	styles := m.theme.Styles()
	f := m.form

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n\n")
	for i, input := range f.inputs {
		label := styles.MutedText
		if i == f.focus {
			label = styles.AccentText
		}
		b.WriteString(label.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}
	if f.kind == formReview {
		count := len([]rune(f.value(1)))
		b.WriteString(styles.FaintText.Render(strconv.Itoa(count) + "/300 characters, at least 50"))
		b.WriteString("\n")
	}
	switch {
	case f.submitting:
		b.WriteString(styles.InfoText.Render(m.spinner.View() + " Sending..."))
	case f.err != "":
		b.WriteString(styles.DangerText.Render(f.err))
	default:
		b.WriteString(styles.FaintText.Render("enter submit · tab next field · esc cancel"))
	}

	modal := styles.FocusPanel.Padding(1, 2).Width(min(64, max(m.width-4, 20)))
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
	)
}
