// Package tui is the terminal UI. Views are thin: all server data lives in
// the injected store, remote work runs as store thunks wrapped in tea.Cmds,
// and every resulting action passes through the root model, which applies it
// on the UI loop before fanning it out to sub-models.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/redaelm/jobdeck/internal/browser"
	"github.com/redaelm/jobdeck/internal/store"
)

type view int

const (
	viewJobs view = iota
	viewApplications
	viewPost
	viewAdmin
	viewLogin
)

// actionMsg routes a store action to the root model. When refetch is set the
// published-jobs query is re-run after the action applies, so filter changes
// always hit the backend with the committed filter values.
type actionMsg struct {
	action  store.Action
	refetch bool
}

// emit wraps a locally produced action for the UI message loop.
func emit(a store.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: a} }
}

// refetch is emit plus a follow-up published-jobs fetch.
func refetch(a store.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: a, refetch: true} }
}

// dispatch runs a thunk off the UI loop and feeds its result back as an
// actionMsg.
func dispatch(th store.Thunk) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: th(context.Background())}
	}
}

// App is the root Bubbletea model.
type App struct {
	store        *store.Store
	view         view
	lastView     view // where esc from the login view returns to
	jobs         jobsModel
	applications applicationsModel
	post         postModel
	admin        adminModel
	login        loginModel
	helpOpen     bool
	helpCursor   int
	notice       string
	version      string
	updateNotice string
	width        int
	height       int
	frame        int // logo shimmer animation frame
}

// NewApp creates the TUI application around an already restored store.
func NewApp(st *store.Store, version string) App {
	return App{
		store:        st,
		jobs:         newJobsModel(st),
		applications: newApplicationsModel(st),
		post:         newPostModel(st),
		admin:        newAdminModel(st),
		login:        newLoginModel(st),
		version:      version,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.jobs.Init(), shimmerTickCmd(), checkVersion(a.version))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + notice(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.jobs, _ = a.jobs.Update(bodyMsg)
		a.applications, _ = a.applications.Update(bodyMsg)
		a.admin, _ = a.admin.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case versionCheckMsg:
		if msg.hasUpdate {
			a.updateNotice = "update available: " + msg.latestVersion
		}
		return a, nil

	case actionMsg:
		return a.applyAction(msg)

	case editJobMsg:
		a.post = a.post.load(msg.job)
		a.view = viewPost
		return a, nil

	case wantLoginMsg:
		a.lastView = a.view
		a.view = viewLogin
		a.login, _ = a.login.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToView(msg)
}

// applyAction folds a store action into state, then lets every sub-model
// react (cursor clamps, form resets) and handles app-level transitions.
func (a App) applyAction(msg actionMsg) (tea.Model, tea.Cmd) {
	a.store.Apply(msg.action)

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.jobs, cmd = a.jobs.Update(msg)
	cmds = append(cmds, cmd)
	a.applications, cmd = a.applications.Update(msg)
	cmds = append(cmds, cmd)
	a.post, cmd = a.post.Update(msg)
	cmds = append(cmds, cmd)
	a.admin, cmd = a.admin.Update(msg)
	cmds = append(cmds, cmd)
	a.login, cmd = a.login.Update(msg)
	cmds = append(cmds, cmd)

	switch msg.action.(type) {
	case store.SessionExpired:
		a.lastView = viewJobs
		a.view = viewLogin
		a.notice = a.store.State().Auth.Error
	case store.LoginSucceeded:
		if a.view == viewLogin {
			a.view = a.lastView
		}
		a.notice = "signed in as " + a.store.State().Auth.User.Email
		cmds = append(cmds, emit(store.ApplicationsRequested{}), dispatch(a.store.FetchMyApplications()))
	case store.LoggedOut:
		if a.view != viewJobs {
			a.view = viewJobs
		}
		a.notice = "signed out"
	}

	if msg.refetch {
		cmds = append(cmds, dispatch(a.store.FetchPublishedJobs(1)))
	}
	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay captures all keys when open
	if a.helpOpen {
		switch msg.String() {
		case "h", "esc":
			a.helpOpen = false
		case "q", "ctrl+c":
			return a, tea.Quit
		case "j", "down":
			if a.helpCursor < len(helpItems)-1 {
				a.helpCursor++
			}
		case "k", "up":
			if a.helpCursor > 0 {
				a.helpCursor--
			}
		case "enter":
			item := helpItems[a.helpCursor]
			if item.url != "" {
				browser.Open(item.url) //nolint:errcheck // best-effort browser open
			}
		}
		return a, nil
	}

	if !a.isEditing() {
		switch msg.String() {
		case "h":
			a.helpOpen = true
			a.helpCursor = 0
			return a, nil
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			if a.view != viewJobs {
				a.view = viewJobs
				a.notice = ""
			}
			return a, nil
		case "2":
			return a.openTab(viewApplications)
		case "3":
			return a.openTab(viewPost)
		case "4":
			return a.openTab(viewAdmin)
		case "s":
			if a.store.State().Auth.IsAuthenticated {
				return a, dispatch(a.store.Logout())
			}
			a.lastView = a.view
			a.view = viewLogin
			a.notice = ""
			return a, nil
		}
	}
	if msg.String() == "esc" && a.view == viewLogin {
		a.view = a.lastView
		a.notice = ""
		return a, nil
	}
	if msg.String() == "esc" && a.view == viewPost && !a.post.submitted {
		a.view = viewJobs
		return a, nil
	}

	return a.routeToView(msg)
}

// openTab switches to an authed tab, detouring through login when the
// session does not allow it.
func (a App) openTab(v view) (tea.Model, tea.Cmd) {
	if a.view == v {
		return a, nil
	}
	auth := a.store.State().Auth
	if !auth.IsAuthenticated {
		a.lastView = a.view
		a.view = viewLogin
		a.login, _ = a.login.Update(wantLoginMsg{reason: "sign in first"})
		return a, nil
	}
	if (v == viewPost || v == viewAdmin) && !auth.User.IsAdmin() {
		a.notice = "admin only"
		return a, nil
	}
	a.view = v
	a.notice = ""
	switch v {
	case viewApplications:
		return a, a.applications.Init()
	case viewAdmin:
		return a, a.admin.Init()
	}
	return a, nil
}

func (a App) isEditing() bool {
	switch a.view {
	case viewJobs:
		return a.jobs.editing()
	case viewPost, viewLogin:
		return true
	}
	return false
}

func (a App) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewJobs:
		a.jobs, cmd = a.jobs.Update(msg)
	case viewApplications:
		a.applications, cmd = a.applications.Update(msg)
	case viewPost:
		a.post, cmd = a.post.Update(msg)
	case viewAdmin:
		a.admin, cmd = a.admin.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	// Identity line below the logo
	auth := a.store.State().Auth
	var identity string
	if auth.IsAuthenticated {
		identity = metaStyle.Render(auth.User.Email) + " " + RoleBadge(auth.User.Role)
	} else {
		identity = metaStyle.Render("anonymous · s to sign in")
	}
	if a.updateNotice != "" {
		identity += "  " + goldStyle.Render(a.updateNotice)
	}

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	idWidth := lipgloss.Width(identity)
	idPad := (a.width - idWidth) / 2
	if idPad < 0 {
		idPad = 0
	}
	header += "\n" + strings.Repeat(" ", idPad) + identity

	// Tab bar: 4 equal-width columns spread across the terminal
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Jobs", viewJobs},
		{"2", "Applications", viewApplications},
		{"3", "Post", viewPost},
		{"4", "Admin", viewAdmin},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		switch {
		case t.v == a.view:
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		case (t.v == viewPost || t.v == viewAdmin) && !auth.User.IsAdmin():
			label = metaStyle.Render(t.key) + " " + inputPlaceholderStyle.Render(t.name)
		default:
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	centeredTabs := tabBar.String()

	// Body + per-view help
	var body string
	var help string
	switch a.view {
	case viewJobs:
		body = a.jobs.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + a.jobs.helpKeys() + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewApplications:
		body = a.applications.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + a.applications.helpKeys() + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewPost:
		body = a.post.View()
		help = " " + a.post.helpKeys()
	case viewAdmin:
		body = a.admin.View()
		help = " " + helpEntry("1-4", "tabs") + "  " + a.admin.helpKeys() + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewLogin:
		body = a.login.View()
		help = " " + a.login.helpKeys()
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Notice line between body and help
	noticeLine := ""
	if a.notice != "" {
		noticeLine = " " + dimStyle.Render(a.notice)
	}

	// Chrome budget: header(2) + tabs(1) + notice(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, centeredTabs, body, noticeLine, help)
}
