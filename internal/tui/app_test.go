package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/session"
	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// newTestStore builds a store with no reachable backend. Tests drive state
// by applying actions directly.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	c := client.New("http://127.0.0.1:0", nil)
	return store.New(c, session.NewStoreAt(t.TempDir()), 10)
}

func signIn(st *store.Store, role string) {
	st.Apply(store.SessionRestored{Session: domain.Session{
		User:  domain.User{Name: "Test User", Email: "test@example.com", Role: role},
		Token: "token",
	}})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T) App {
	a := NewApp(newTestStore(t), "dev")
	a.width = 80
	a.height = 30
	return a
}

func TestAnonymousTabDetoursToLogin(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(keyRunes("2"))
	a = model.(App)
	if a.view != viewLogin {
		t.Errorf("expected login view for anonymous tab switch, got %d", a.view)
	}
	view := a.View()
	if !strings.Contains(view, "sign in first") {
		t.Errorf("expected 'sign in first' notice, got:\n%s", view)
	}
}

func TestAdminTabRequiresAdmin(t *testing.T) {
	a := newTestApp(t)
	signIn(a.store, domain.RoleUser)

	model, _ := a.Update(keyRunes("4"))
	a = model.(App)
	if a.view == viewAdmin {
		t.Error("non-admin should not reach the admin tab")
	}
	if a.notice != "admin only" {
		t.Errorf("expected 'admin only' notice, got %q", a.notice)
	}
}

func TestAdminReachesAdminTab(t *testing.T) {
	a := newTestApp(t)
	signIn(a.store, domain.RoleAdmin)

	model, cmd := a.Update(keyRunes("4"))
	a = model.(App)
	if a.view != viewAdmin {
		t.Errorf("expected admin view, got %d", a.view)
	}
	if cmd == nil {
		t.Error("expected admin data load command")
	}
}

func TestSessionExpirySwitchesToLogin(t *testing.T) {
	a := newTestApp(t)
	signIn(a.store, domain.RoleUser)
	a.view = viewApplications

	model, _ := a.Update(actionMsg{action: store.SessionExpired{}})
	a = model.(App)
	if a.view != viewLogin {
		t.Errorf("expected login view after session expiry, got %d", a.view)
	}
	if !strings.Contains(a.notice, "session expired") {
		t.Errorf("expected expiry notice, got %q", a.notice)
	}
}

func TestLoginSucceededReturnsToPreviousView(t *testing.T) {
	a := newTestApp(t)
	a.lastView = viewJobs
	a.view = viewLogin

	sess := domain.Session{User: domain.User{Email: "test@example.com", Role: domain.RoleUser}, Token: "t"}
	model, _ := a.Update(actionMsg{action: store.LoginSucceeded{Session: sess}})
	a = model.(App)
	if a.view != viewJobs {
		t.Errorf("expected return to jobs view after login, got %d", a.view)
	}
	if !strings.Contains(a.notice, "test@example.com") {
		t.Errorf("expected signed-in notice, got %q", a.notice)
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(keyRunes("h"))
	a = model.(App)
	if !a.helpOpen {
		t.Fatal("expected help overlay open after h")
	}
	view := a.View()
	if !strings.Contains(view, "Commands") {
		t.Errorf("expected commands section in help overlay, got:\n%s", view)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.helpOpen {
		t.Error("expected help overlay closed after esc")
	}
}

func TestQuitKey(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestRefetchAfterFilterCommit(t *testing.T) {
	a := newTestApp(t)
	model, cmd := a.Update(actionMsg{action: store.SearchChanged{Query: "go"}, refetch: true})
	a = model.(App)
	if a.store.State().Jobs.Query != "go" {
		t.Errorf("expected query committed before refetch, got %q", a.store.State().Jobs.Query)
	}
	if cmd == nil {
		t.Error("expected a follow-up fetch command")
	}
}

func TestHeaderShowsIdentity(t *testing.T) {
	a := newTestApp(t)
	if !strings.Contains(a.View(), "anonymous") {
		t.Error("expected anonymous identity line")
	}

	signIn(a.store, domain.RoleAdmin)
	view := a.View()
	if !strings.Contains(view, "test@example.com") {
		t.Errorf("expected user email in header, got:\n%s", view)
	}
	if !strings.Contains(view, "admin") {
		t.Errorf("expected admin badge in header, got:\n%s", view)
	}
}

func TestSignOutKey(t *testing.T) {
	a := newTestApp(t)
	signIn(a.store, domain.RoleUser)

	_, cmd := a.Update(keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected logout command")
	}
	msg, ok := cmd().(actionMsg)
	if !ok {
		t.Fatalf("expected actionMsg, got %T", cmd())
	}
	if _, ok := msg.action.(store.LoggedOut); !ok {
		t.Errorf("expected LoggedOut action, got %T", msg.action)
	}
}
