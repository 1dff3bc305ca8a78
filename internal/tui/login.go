package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/form"
	"github.com/redaelm/jobdeck/internal/store"
)

// wantLoginMsg asks the root model to switch to the login view, e.g. when
// an anonymous user tries an authed action.
type wantLoginMsg struct {
	reason string
}

type loginModel struct {
	store      *store.Store
	signup     bool
	form       *form.Form
	focus      int
	submitting bool
	notice     string
}

func newLoginModel(st *store.Store) loginModel {
	return loginModel{store: st, form: form.New(form.Login())}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case actionMsg:
		switch msg.action.(type) {
		case store.LoginSucceeded:
			m.submitting = false
			m.form.Reset()
			m.focus = 0
			m.notice = ""
		case store.LoginFailed:
			m.submitting = false
		}
		return m, nil

	case wantLoginMsg:
		m.notice = msg.reason
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	fields := m.form.Fields()

	switch key := msg.String(); key {
	case "ctrl+t":
		// Toggle between login and signup, carrying the typed email over.
		email := m.form.Value("email")
		m.signup = !m.signup
		if m.signup {
			m.form = form.New(form.Signup())
		} else {
			m.form = form.New(form.Login())
		}
		m.form.Set("email", email)
		m.focus = 0
	case "tab", "down":
		m.focus = (m.focus + 1) % len(fields)
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(fields)) % len(fields)
	case "enter":
		if m.focus == len(fields)-1 {
			return m.submit()
		}
		m.focus++
	case "ctrl+s":
		return m.submit()
	default:
		f := fields[m.focus]
		m.form.Set(f.Name, editRune(m.form.Value(f.Name), key))
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if !m.form.Validate() {
		return m, nil
	}
	m.submitting = true
	m.notice = ""

	email := strings.TrimSpace(m.form.Value("email"))
	password := m.form.Value("password")

	if m.signup {
		name := strings.TrimSpace(m.form.Value("name"))
		return m, tea.Batch(
			emit(store.LoginStarted{}),
			dispatch(m.store.Signup(name, email, password)),
		)
	}
	return m, tea.Batch(
		emit(store.LoginStarted{}),
		dispatch(m.store.Login(email, password)),
	)
}

func (m loginModel) View() string {
	var b strings.Builder

	title := "sign in"
	if m.signup {
		title = "create account"
	}
	b.WriteString(" " + selectedStyle.Render(title) + "  " + dimStyle.Render("ctrl+t to switch") + "\n")
	if m.notice != "" {
		b.WriteString(" " + warnStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n")

	for i, f := range m.form.Fields() {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.form.Value(f.Name)
		if f.Name == "password" || f.Name == "confirm" {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(f.Label), value)
		if errMsg := m.form.Error(f.Name); errMsg != "" {
			b.WriteString("     " + errStyle.Render(errMsg) + "\n")
		}
	}

	b.WriteString("\n")
	auth := m.store.State().Auth
	switch {
	case m.submitting || auth.Status == store.Authenticating:
		b.WriteString(" " + dimStyle.Render("signing in..."))
	case auth.Error != "":
		b.WriteString(" " + errStyle.Render(auth.Error))
	}
	return b.String()
}

func (m loginModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+t", "login/signup") + "  " + helpEntry("esc", "back")
}
