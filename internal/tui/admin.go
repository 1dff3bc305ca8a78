package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// sparkLevels are the bar glyphs for trend charts, lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

type adminModel struct {
	store  *store.Store
	cursor int
	width  int
	height int
}

func newAdminModel(st *store.Store) adminModel {
	return adminModel{store: st}
}

func (m adminModel) Init() tea.Cmd {
	return tea.Batch(
		emit(store.UsersRequested{}),
		emit(store.AnalyticsRequested{}),
		dispatch(m.store.FetchUsers()),
		dispatch(m.store.FetchAnalytics()),
		dispatch(m.store.FetchAdminJobs(1)),
	)
}

func (m adminModel) Update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case actionMsg:
		if _, ok := msg.action.(store.UsersLoaded); ok {
			if n := len(m.store.State().Users.All); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.store.State().Users.All)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			return m, m.Init()
		}
	}
	return m, nil
}

func (m adminModel) View() string {
	var b strings.Builder
	s := m.store.State()

	// Dashboard counters + trends
	b.WriteString(" " + sectionHeaderStyle.Render("dashboard") + "\n")
	switch {
	case s.Analytics.Loading && s.Analytics.Snapshot == nil:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case s.Analytics.Error != "":
		b.WriteString(" " + errStyle.Render("error: "+s.Analytics.Error) + "\n")
	case s.Analytics.Snapshot != nil:
		snap := s.Analytics.Snapshot
		fmt.Fprintf(&b, " %s %s   %s %s   %s %s\n",
			selectedStyle.Render(fmt.Sprintf("%d", snap.Jobs)), dimStyle.Render("jobs"),
			selectedStyle.Render(fmt.Sprintf("%d", snap.Applications)), dimStyle.Render("applications"),
			selectedStyle.Render(fmt.Sprintf("%d", snap.Users)), dimStyle.Render("users"))
		if line := trendLine("jobs", snap.JobsLast6Months); line != "" {
			b.WriteString(line)
		}
		if line := trendLine("apps", snap.ApplicationsLast6Months); line != "" {
			b.WriteString(line)
		}
	}

	// All jobs, drafts included
	b.WriteString("\n " + sectionHeaderStyle.Render("all jobs") + "\n")
	switch {
	case len(s.Jobs.All) == 0 && s.Jobs.Loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case len(s.Jobs.All) == 0:
		b.WriteString(" " + dimStyle.Render("no jobs") + "\n")
	default:
		for _, j := range s.Jobs.All {
			fmt.Fprintf(&b, "  %s  %s  %s\n",
				normalStyle.Render(fmt.Sprintf("%-28s", truncStr(j.Title, 28))),
				JobStatusStyle(j.Status).Render(j.Status),
				dimStyle.Render(formatDeadline(j.Deadline)))
		}
	}

	// Users table
	b.WriteString("\n " + sectionHeaderStyle.Render("users") + "\n")
	switch {
	case s.Users.Loading && len(s.Users.All) == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case s.Users.Error != "":
		b.WriteString(" " + errStyle.Render("error: "+s.Users.Error) + "\n")
	case len(s.Users.All) == 0:
		b.WriteString(" " + dimStyle.Render("no users") + "\n")
	default:
		for i, u := range s.Users.All {
			cursor := " "
			nameStyle := normalStyle
			if i == m.cursor {
				cursor = accentStyle.Render("▸")
				nameStyle = selectedStyle
			}
			fmt.Fprintf(&b, " %s %s  %s  %s\n",
				cursor,
				nameStyle.Render(fmt.Sprintf("%-20s", truncStr(u.Name, 20))),
				dimStyle.Render(fmt.Sprintf("%-28s", truncStr(u.Email, 28))),
				RoleBadge(u.Role))
		}
	}
	return b.String()
}

// trendLine renders one six-month series as labeled spark bars.
func trendLine(label string, series []domain.MonthCount) string {
	if len(series) == 0 {
		return ""
	}
	peak := 0
	for _, mc := range series {
		if mc.Count > peak {
			peak = mc.Count
		}
	}

	var bars strings.Builder
	for _, mc := range series {
		if peak == 0 || mc.Count == 0 {
			bars.WriteString(barDimStyle.Render(string(sparkLevels[0])))
			continue
		}
		idx := (mc.Count*(len(sparkLevels)-1) + peak - 1) / peak
		if idx >= len(sparkLevels) {
			idx = len(sparkLevels) - 1
		}
		bars.WriteString(barStyle.Render(string(sparkLevels[idx])))
	}

	first := series[0].Month
	last := series[len(series)-1].Month
	return fmt.Sprintf(" %s %s  %s\n",
		metaStyle.Render(fmt.Sprintf("%-5s", label)),
		bars.String(),
		dimStyle.Render(first+" .. "+last))
}

func (m adminModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("r", "refresh")
}
