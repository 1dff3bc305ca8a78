package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/form"
	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

const deadlineLayout = "2006-01-02"

// postModel is the create/edit job form. Admin only; the root model gates
// the tab.
type postModel struct {
	store     *store.Store
	form      *form.Form
	focus     int
	status    string // draft or published, cycled with h/l
	editID    int64  // 0 = creating
	submitted bool
	statusMsg string
}

func newPostModel(st *store.Store) postModel {
	return postModel{
		store:  st,
		form:   form.New(form.Job()),
		status: domain.JobStatusDraft,
	}
}

func (m postModel) Init() tea.Cmd {
	return nil
}

// load prefills the form from an existing job for editing.
func (m postModel) load(job domain.Job) postModel {
	m.form.Reset()
	m.form.Set("title", job.Title)
	m.form.Set("company", job.Company)
	m.form.Set("location", job.Location)
	m.form.Set("description", job.Description)
	if job.Deadline != nil {
		m.form.Set("deadline", job.Deadline.Format(deadlineLayout))
	}
	m.status = job.Status
	m.editID = job.ID
	m.focus = 0
	m.submitted = false
	m.statusMsg = ""
	return m
}

func (m postModel) Update(msg tea.Msg) (postModel, tea.Cmd) {
	switch msg := msg.(type) {
	case actionMsg:
		switch a := msg.action.(type) {
		case store.JobCreated:
			m.submitted = false
			m.statusMsg = fmt.Sprintf("job #%d created", a.Job.ID)
			m.form.Reset()
			m.status = domain.JobStatusDraft
			m.focus = 0
		case store.JobUpdated:
			if m.editID != 0 {
				m.submitted = false
				m.statusMsg = fmt.Sprintf("job #%d updated", a.Job.ID)
			}
		case store.AdminJobsLoaded:
			if a.Err != "" && m.submitted {
				m.submitted = false
				m.statusMsg = a.Err
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m postModel) updateKeys(msg tea.KeyMsg) (postModel, tea.Cmd) {
	fields := m.form.Fields()
	// One extra virtual row below the schema fields for the status cycle.
	numRows := len(fields) + 1
	statusRow := len(fields)

	switch key := msg.String(); key {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numRows
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numRows) % numRows
	case "enter":
		if m.focus < len(fields) && fields[m.focus].Multiline {
			f := fields[m.focus]
			m.form.Set(f.Name, m.form.Value(f.Name)+"\n")
		} else {
			m.focus = (m.focus + 1) % numRows
		}
	default:
		if m.focus == statusRow {
			if key == "h" || key == "l" {
				if m.status == domain.JobStatusDraft {
					m.status = domain.JobStatusPublished
				} else {
					m.status = domain.JobStatusDraft
				}
			}
			return m, nil
		}
		f := fields[m.focus]
		m.form.Set(f.Name, editRune(m.form.Value(f.Name), key))
	}
	return m, nil
}

func (m postModel) submit() (postModel, tea.Cmd) {
	if !m.form.Validate() {
		return m, nil
	}

	var deadline *time.Time
	raw := strings.TrimSpace(m.form.Value("deadline"))
	t, err := time.Parse(deadlineLayout, raw)
	if err != nil {
		m.statusMsg = "deadline must be YYYY-MM-DD"
		return m, nil
	}
	deadline = &t

	m.submitted = true
	m.statusMsg = ""
	req := client.JobRequest{
		Title:       strings.TrimSpace(m.form.Value("title")),
		Company:     strings.TrimSpace(m.form.Value("company")),
		Location:    strings.TrimSpace(m.form.Value("location")),
		Description: strings.TrimSpace(m.form.Value("description")),
		Deadline:    deadline,
		Status:      m.status,
	}
	if m.editID != 0 {
		return m, dispatch(m.store.UpdateJob(m.editID, req))
	}
	return m, dispatch(m.store.CreateJob(req))
}

func (m postModel) View() string {
	var b strings.Builder

	if m.editID != 0 {
		fmt.Fprintf(&b, " %s %s\n\n", dimStyle.Render("editing"), selectedStyle.Render(fmt.Sprintf("job #%d", m.editID)))
	} else {
		b.WriteString(" " + dimStyle.Render("new job posting") + "\n\n")
	}

	fields := m.form.Fields()
	for i, f := range fields {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.form.Value(f.Name)
		display := value
		if i == m.focus {
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
		if errMsg := m.form.Error(f.Name); errMsg != "" {
			b.WriteString("     " + errStyle.Render(errMsg) + "\n")
		}
	}

	// Status cycle row
	cursor := " "
	style := metaStyle
	if m.focus == len(fields) {
		cursor = ">"
		style = selectedStyle
	}
	fmt.Fprintf(&b, " %s %s: %s  %s\n", cursor, style.Render("Status"),
		JobStatusStyle(m.status).Render(m.status), dimStyle.Render("(h/l to cycle)"))

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("saving..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg))
	}
	return b.String()
}

func (m postModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("h/l", "status") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
}
