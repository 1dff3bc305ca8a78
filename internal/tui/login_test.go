package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/domain"
)

func newTestLoginModel(t *testing.T) loginModel {
	return newLoginModel(newTestStore(t))
}

func TestLoginValidationBlocksSubmit(t *testing.T) {
	m := newTestLoginModel(t)
	m.form.Set("email", "not-an-email")
	m.form.Set("password", "hunter22")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected submit blocked on bad email")
	}
	if !strings.Contains(m.View(), "valid email") {
		t.Errorf("expected email validation message, got:\n%s", m.View())
	}
}

func TestLoginSubmitsValidCredentials(t *testing.T) {
	m := newTestLoginModel(t)
	m.form.Set("email", "dana@example.com")
	m.form.Set("password", "hunter22")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected login command for valid form")
	}
	if !m.submitting {
		t.Error("expected submitting flag while request in flight")
	}
}

func TestToggleSignupKeepsEmail(t *testing.T) {
	m := newTestLoginModel(t)
	m.form.Set("email", "dana@example.com")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.signup {
		t.Fatal("expected signup mode after ctrl+t")
	}
	if m.form.Value("email") != "dana@example.com" {
		t.Errorf("expected email carried over, got %q", m.form.Value("email"))
	}
	if len(m.form.Fields()) != 4 {
		t.Errorf("expected 4 signup fields, got %d", len(m.form.Fields()))
	}
}

func TestSignupConfirmMismatch(t *testing.T) {
	m := newTestLoginModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.form.Set("name", "Dana")
	m.form.Set("email", "dana@example.com")
	m.form.Set("password", "hunter22")
	m.form.Set("confirm", "different")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected submit blocked on password mismatch")
	}
	if !strings.Contains(m.View(), "do not match") {
		t.Errorf("expected mismatch message, got:\n%s", m.View())
	}
}

func TestPasswordMasked(t *testing.T) {
	m := newTestLoginModel(t)
	m.form.Set("password", "secret")

	if strings.Contains(m.View(), "secret") {
		t.Error("password must not render in plain text")
	}
}

func TestLoginSuccessResetsForm(t *testing.T) {
	m := newTestLoginModel(t)
	m.form.Set("email", "dana@example.com")
	m.submitting = true

	sess := domain.Session{User: domain.User{Email: "dana@example.com"}, Token: "t"}
	m, _ = m.Update(actionMsg{action: store.LoginSucceeded{Session: sess}})
	if m.submitting {
		t.Error("expected submitting flag cleared")
	}
	if m.form.Value("email") != "" {
		t.Error("expected form reset after success")
	}
}

func TestLoginFailureShowsStoreError(t *testing.T) {
	m := newTestLoginModel(t)
	m.submitting = true
	m.store.Apply(store.LoginFailed{Err: "invalid credentials"})

	m, _ = m.Update(actionMsg{action: store.LoginFailed{Err: "invalid credentials"}})
	if m.submitting {
		t.Error("expected submitting flag cleared on failure")
	}
	if !strings.Contains(m.View(), "invalid credentials") {
		t.Errorf("expected auth error in view, got:\n%s", m.View())
	}
}
