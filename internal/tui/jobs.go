package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/form"
	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// editJobMsg asks the root model to open the posting form prefilled with a
// job. Emitted from the detail view when an admin presses e.
type editJobMsg struct {
	job domain.Job
}

type jobsMode int

const (
	jobsList jobsMode = iota
	jobsDetail
	jobsApply
)

type jobsModel struct {
	store       *store.Store
	mode        jobsMode
	cursor      int
	searching   bool
	searchInput string
	locCycle    int
	applyForm   *form.Form
	applyFocus  int
	applying    bool
	statusMsg   string
	width       int
	height      int
}

func newJobsModel(st *store.Store) jobsModel {
	return jobsModel{store: st, applyForm: form.New(form.Application())}
}

func (m jobsModel) Init() tea.Cmd {
	return tea.Batch(
		emit(store.JobsRequested{}),
		dispatch(m.store.FetchPublishedJobs(1)),
		dispatch(m.store.FetchLocations()),
	)
}

// jobs returns the rows this view renders: the published list narrowed by
// the in-memory fallback filter while a backend-filtered fetch is in flight.
func (m jobsModel) jobs() []domain.Job {
	return m.store.State().Jobs.Filtered
}

func (m jobsModel) Update(msg tea.Msg) (jobsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case actionMsg:
		switch msg.action.(type) {
		case store.PublishedJobsLoaded, store.SearchChanged:
			if n := len(m.jobs()); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			} else if n == 0 {
				m.cursor = 0
			}
		case store.ApplicationSubmitted:
			m.applying = false
			m.statusMsg = "application sent"
			m.applyForm.Reset()
			m.applyFocus = 0
			if m.mode == jobsApply {
				m.mode = jobsDetail
			}
		case store.MyApplicationsLoaded:
			if a := msg.action.(store.MyApplicationsLoaded); a.Err != "" && m.applying {
				m.applying = false
				m.statusMsg = a.Err
			}
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m jobsModel) editing() bool {
	return m.searching || m.mode == jobsApply
}

func (m jobsModel) handleKey(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	switch m.mode {
	case jobsApply:
		return m.handleApplyKey(msg)
	case jobsDetail:
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m jobsModel) handleListKey(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	key := msg.String()

	if m.searching {
		switch key {
		case "enter":
			m.searching = false
			return m, tea.Batch(
				emit(store.JobsRequested{}),
				refetch(store.SearchChanged{Query: m.searchInput}),
			)
		case "esc":
			m.searching = false
			m.searchInput = ""
			return m, refetch(store.SearchChanged{Query: ""})
		default:
			m.searchInput = editRune(m.searchInput, key)
			// Live fallback filter while typing; the backend query runs
			// on enter.
			return m, emit(store.SearchChanged{Query: m.searchInput})
		}
	}

	jobs := m.jobs()
	switch key {
	case "j", "down":
		if m.cursor < len(jobs)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		m.statusMsg = ""
	case "l":
		locations := m.store.State().Jobs.Locations
		if len(locations) == 0 {
			return m, nil
		}
		cycle := append([]string{""}, locations...)
		m.locCycle = (m.locCycle + 1) % len(cycle)
		m.cursor = 0
		return m, tea.Batch(
			emit(store.JobsRequested{}),
			refetch(store.LocationFilterChanged{Location: cycle[m.locCycle]}),
		)
	case "left", "p":
		if page := m.store.State().Jobs.Page; page > 1 {
			return m, tea.Batch(
				emit(store.JobsRequested{}),
				dispatch(m.store.FetchPublishedJobs(page-1)),
			)
		}
	case "right", "n":
		page := m.store.State().Jobs.Page
		if page < 1 {
			page = 1
		}
		return m, tea.Batch(
			emit(store.JobsRequested{}),
			dispatch(m.store.FetchPublishedJobs(page+1)),
		)
	case "r":
		return m, tea.Batch(
			emit(store.JobsRequested{}),
			dispatch(m.store.FetchPublishedJobs(max(m.store.State().Jobs.Page, 1))),
			dispatch(m.store.FetchLocations()),
		)
	case "enter":
		if len(jobs) > 0 && m.cursor < len(jobs) {
			m.mode = jobsDetail
			m.statusMsg = ""
			return m, dispatch(m.store.FetchJob(jobs[m.cursor].ID))
		}
	}
	return m, nil
}

func (m jobsModel) handleDetailKey(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	job := m.store.State().Jobs.Selected
	switch msg.String() {
	case "esc", "backspace":
		m.mode = jobsList
		m.statusMsg = ""
	case "a":
		if job == nil {
			return m, nil
		}
		if !m.store.State().Auth.IsAuthenticated {
			return m, func() tea.Msg { return wantLoginMsg{reason: "log in to apply"} }
		}
		m.mode = jobsApply
		m.applyForm.Reset()
		m.applyFocus = 0
		m.statusMsg = ""
	case "e":
		if job != nil && m.store.State().Auth.User.IsAdmin() {
			j := *job
			return m, func() tea.Msg { return editJobMsg{job: j} }
		}
	case "d":
		if job != nil && m.store.State().Auth.User.IsAdmin() {
			id := job.ID
			m.mode = jobsList
			return m, dispatch(m.store.DeleteJob(id))
		}
	}
	return m, nil
}

func (m jobsModel) handleApplyKey(msg tea.KeyMsg) (jobsModel, tea.Cmd) {
	fields := m.applyForm.Fields()
	key := msg.String()

	switch key {
	case "esc":
		m.mode = jobsDetail
		m.applying = false
	case "tab", "down":
		m.applyFocus = (m.applyFocus + 1) % len(fields)
	case "shift+tab", "up":
		m.applyFocus = (m.applyFocus - 1 + len(fields)) % len(fields)
	case "ctrl+s":
		return m.submitApplication()
	case "enter":
		f := fields[m.applyFocus]
		if f.Multiline {
			m.applyForm.Set(f.Name, m.applyForm.Value(f.Name)+"\n")
		} else {
			m.applyFocus = (m.applyFocus + 1) % len(fields)
		}
	default:
		f := fields[m.applyFocus]
		m.applyForm.Set(f.Name, editRune(m.applyForm.Value(f.Name), key))
	}
	return m, nil
}

func (m jobsModel) submitApplication() (jobsModel, tea.Cmd) {
	job := m.store.State().Jobs.Selected
	if job == nil {
		return m, nil
	}
	if !m.applyForm.Validate() {
		return m, nil
	}
	m.applying = true
	m.statusMsg = ""
	req := client.ApplyRequest{
		JobID:       job.ID,
		CVLink:      strings.TrimSpace(m.applyForm.Value("cvLink")),
		CoverLetter: strings.TrimSpace(m.applyForm.Value("coverLetter")),
	}
	return m, dispatch(m.store.SubmitApplication(req))
}

func (m jobsModel) View() string {
	switch m.mode {
	case jobsDetail:
		return m.viewDetail()
	case jobsApply:
		return m.viewApply()
	}
	return m.viewList()
}

func (m jobsModel) viewList() string {
	var b strings.Builder
	s := m.store.State().Jobs

	// Search / filter line
	if m.searching {
		cursor := accentStyle.Render("█")
		b.WriteString(" " + searchStyle.Render("/") + m.searchInput + cursor + "\n")
	} else if s.Query != "" || s.Location != "" {
		parts := []string{}
		if s.Query != "" {
			parts = append(parts, searchStyle.Render(s.Query))
		}
		if s.Location != "" {
			parts = append(parts, dimStyle.Render(s.Location))
		}
		b.WriteString(" " + strings.Join(parts, dimStyle.Render(" · ")) + "\n")
	}

	jobs := m.jobs()
	if s.Loading && len(jobs) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if s.Error != "" {
		b.WriteString(" " + errStyle.Render("error: "+s.Error) + "\n")
		return b.String()
	}
	if len(jobs) == 0 {
		b.WriteString("\n " + dimStyle.Render("no jobs match. press / to change the search") + "\n")
		return b.String()
	}

	for i, job := range jobs {
		cursor := " "
		titleStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			titleStyle = selectedStyle
		}

		title := titleStyle.Render(truncStr(job.Title, 40))
		company := dimStyle.Render(truncStr(job.Company, 20))
		location := metaStyle.Render(job.Location)
		deadline := metaStyle.Render(formatDeadline(job.Deadline))

		fmt.Fprintf(&b, " %s %s  %s  %s  %s\n", cursor, title, company, location, deadline)
		if i == m.cursor && job.Description != "" {
			b.WriteString("   " + dimStyle.Render(truncStr(summarize(job.Description), 70)) + "\n")
		}
	}

	// Pagination line
	page := s.Page
	if page < 1 {
		page = 1
	}
	b.WriteString("\n " + metaStyle.Render(fmt.Sprintf("page %d", page)) + "  " +
		dimStyle.Render("l cycle location · ←/→ page") + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m jobsModel) viewDetail() string {
	job := m.store.State().Jobs.Selected
	if job == nil {
		if m.store.State().Jobs.Error != "" {
			return " " + errStyle.Render("error: "+m.store.State().Jobs.Error) + "\n"
		}
		return " " + dimStyle.Render("loading...") + "\n"
	}

	width := m.width - 4
	if width < 20 || width > 100 {
		width = 72
	}

	var b strings.Builder
	fmt.Fprintf(&b, " %s\n", selectedStyle.Render(job.Title))
	fmt.Fprintf(&b, " %s %s %s\n",
		normalStyle.Render(job.Company),
		metaStyle.Render("·"),
		dimStyle.Render(job.Location))
	fmt.Fprintf(&b, " %s  %s\n\n",
		JobStatusStyle(job.Status).Render(job.Status),
		metaStyle.Render(formatDeadline(job.Deadline)))

	for _, line := range strings.Split(wrapText(job.Description, width), "\n") {
		b.WriteString(" " + normalStyle.Render(line) + "\n")
	}

	b.WriteString("\n " + metaStyle.Render("posted "+formatTime(job.CreatedAt)) + "\n")
	if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}
	return b.String()
}

func (m jobsModel) viewApply() string {
	job := m.store.State().Jobs.Selected
	var b strings.Builder
	if job != nil {
		fmt.Fprintf(&b, " %s %s\n\n", dimStyle.Render("applying to"), selectedStyle.Render(job.Title))
	}

	for i, f := range m.applyForm.Fields() {
		cursor := " "
		style := metaStyle
		if i == m.applyFocus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.applyForm.Value(f.Name)
		display := value
		if i == m.applyFocus {
			display += "█"
		}
		if f.Multiline {
			fmt.Fprintf(&b, " %s %s:\n", cursor, style.Render(f.Label))
			for _, line := range strings.Split(display, "\n") {
				b.WriteString("     " + line + "\n")
			}
		} else {
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(f.Label), display)
		}
		if errMsg := m.applyForm.Error(f.Name); errMsg != "" {
			b.WriteString("     " + errStyle.Render(errMsg) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.applying:
		b.WriteString(" " + dimStyle.Render("sending..."))
	case m.statusMsg != "":
		b.WriteString(" " + errStyle.Render(m.statusMsg))
	}
	return b.String()
}

func (m jobsModel) helpKeys() string {
	switch m.mode {
	case jobsDetail:
		keys := helpEntry("a", "apply") + "  " + helpEntry("esc", "back")
		if m.store.State().Auth.User.IsAdmin() {
			keys = helpEntry("a", "apply") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("esc", "back")
		}
		return keys
	case jobsApply:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
	}
	if m.searching {
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "clear")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("l", "location") + "  " + helpEntry("enter", "open") + "  " + helpEntry("r", "refresh")
}
