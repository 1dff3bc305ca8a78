package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/domain"
)

type appScope int

const (
	scopeMine appScope = iota
	scopeAll
	scopeGrouped
)

type applicationsModel struct {
	store     *store.Store
	scope     appScope
	cursor    int
	statusMsg string
	width     int
	height    int
}

func newApplicationsModel(st *store.Store) applicationsModel {
	return applicationsModel{store: st}
}

func (m applicationsModel) Init() tea.Cmd {
	return tea.Batch(emit(store.ApplicationsRequested{}), m.load())
}

func (m applicationsModel) load() tea.Cmd {
	switch m.scope {
	case scopeAll:
		return dispatch(m.store.FetchAllApplications())
	case scopeGrouped:
		return dispatch(m.store.FetchGroupedApplications())
	}
	return dispatch(m.store.FetchMyApplications())
}

// rows returns the flat application list for the current scope. Grouped
// scope renders its own structure.
func (m applicationsModel) rows() []domain.Application {
	s := m.store.State().Applications
	if m.scope == scopeAll {
		return s.All
	}
	return s.Mine
}

func (m applicationsModel) Update(msg tea.Msg) (applicationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case actionMsg:
		switch msg.action.(type) {
		case store.MyApplicationsLoaded, store.AllApplicationsLoaded, store.GroupedApplicationsLoaded:
			if n := m.rowCount(); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			} else if n == 0 {
				m.cursor = 0
			}
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m applicationsModel) rowCount() int {
	if m.scope == scopeGrouped {
		return len(m.store.State().Applications.Grouped)
	}
	return len(m.rows())
}

func (m applicationsModel) handleKey(msg tea.KeyMsg) (applicationsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "w":
		// Scope toggle, admin only. Users only ever see their own.
		if !m.store.State().Auth.User.IsAdmin() {
			return m, nil
		}
		m.scope = (m.scope + 1) % 3
		m.cursor = 0
		m.statusMsg = ""
		return m, tea.Batch(emit(store.ApplicationsRequested{}), m.load())
	case "r":
		m.statusMsg = ""
		return m, tea.Batch(emit(store.ApplicationsRequested{}), m.load())
	case "c":
		if app, ok := m.selected(); ok && app.CVLink != "" {
			if err := clipboard.WriteAll(app.CVLink); err != nil {
				m.statusMsg = "copy failed: " + err.Error()
			} else {
				m.statusMsg = "CV link copied"
			}
		}
	case "v":
		return m.setStatus(domain.ApplicationReviewed)
	case "a":
		return m.setStatus(domain.ApplicationAccepted)
	case "x":
		return m.setStatus(domain.ApplicationRejected)
	}
	return m, nil
}

// selected returns the application under the cursor for flat scopes.
func (m applicationsModel) selected() (domain.Application, bool) {
	if m.scope == scopeGrouped {
		return domain.Application{}, false
	}
	rows := m.rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return domain.Application{}, false
	}
	return rows[m.cursor], true
}

func (m applicationsModel) setStatus(status string) (applicationsModel, tea.Cmd) {
	if !m.store.State().Auth.User.IsAdmin() || m.scope != scopeAll {
		return m, nil
	}
	app, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.statusMsg = "marked " + status
	return m, emit(store.ApplicationStatusChanged{ID: app.ID, Status: status})
}

func (m applicationsModel) View() string {
	var b strings.Builder
	s := m.store.State().Applications

	if m.store.State().Auth.User.IsAdmin() {
		labels := []string{"mine", "all", "by job"}
		parts := make([]string, len(labels))
		for i, l := range labels {
			if appScope(i) == m.scope {
				parts[i] = selectedStyle.Render(l)
			} else {
				parts[i] = metaStyle.Render(l)
			}
		}
		b.WriteString(" " + strings.Join(parts, dimStyle.Render(" · ")) + "  " +
			dimStyle.Render("w switch") + "\n\n")
	}

	if s.Loading && m.rowCount() == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if s.Error != "" {
		b.WriteString(" " + errStyle.Render("error: "+s.Error) + "\n")
		return b.String()
	}

	if m.scope == scopeGrouped {
		m.viewGrouped(&b, s.Grouped)
	} else {
		m.viewFlat(&b, m.rows())
	}

	if m.statusMsg != "" {
		b.WriteString("\n " + okStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m applicationsModel) viewFlat(b *strings.Builder, rows []domain.Application) {
	if len(rows) == 0 {
		if m.scope == scopeMine {
			b.WriteString("\n " + dimStyle.Render("no applications yet. find a job and press a") + "\n")
		} else {
			b.WriteString("\n " + dimStyle.Render("no applications") + "\n")
		}
		return
	}

	for i, app := range rows {
		cursor := " "
		titleStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			titleStyle = selectedStyle
		}

		title := app.JobTitle
		if title == "" {
			title = fmt.Sprintf("job #%d", app.JobID)
		}
		row := fmt.Sprintf(" %s %s  %s  %s",
			cursor,
			titleStyle.Render(truncStr(title, 36)),
			dimStyle.Render(truncStr(app.Company, 20)),
			ApplicationStatusStyle(app.Status).Render(app.Status))

		if m.scope == scopeAll && app.UserName != "" {
			row += "  " + metaStyle.Render(app.UserName)
		}
		row += "  " + metaStyle.Render(formatTime(app.AppliedDate))
		b.WriteString(row + "\n")
	}
}

func (m applicationsModel) viewGrouped(b *strings.Builder, groups []domain.JobApplicants) {
	if len(groups) == 0 {
		b.WriteString("\n " + dimStyle.Render("no applications") + "\n")
		return
	}

	for i, g := range groups {
		cursor := " "
		titleStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			titleStyle = selectedStyle
		}
		fmt.Fprintf(b, " %s %s  %s  %s\n",
			cursor,
			titleStyle.Render(truncStr(g.Job.Title, 40)),
			dimStyle.Render(g.Job.Company),
			metaStyle.Render(fmt.Sprintf("%d applicants", len(g.Applications))))

		if i == m.cursor {
			for _, app := range g.Applications {
				name := app.UserName
				if name == "" {
					name = app.UserEmail
				}
				fmt.Fprintf(b, "     %s  %s  %s\n",
					normalStyle.Render(truncStr(name, 24)),
					ApplicationStatusStyle(app.Status).Render(app.Status),
					metaStyle.Render(formatTime(app.AppliedDate)))
			}
		}
	}
}

func (m applicationsModel) helpKeys() string {
	keys := helpEntry("j/k", "nav") + "  " + helpEntry("c", "copy cv") + "  " + helpEntry("r", "refresh")
	if m.store.State().Auth.User.IsAdmin() {
		keys = helpEntry("j/k", "nav") + "  " + helpEntry("w", "scope")
		if m.scope == scopeAll {
			keys += "  " + helpEntry("v/a/x", "review")
		}
		keys += "  " + helpEntry("c", "copy cv") + "  " + helpEntry("r", "refresh")
	}
	return keys
}
