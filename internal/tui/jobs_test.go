package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/pkg/domain"
)

func newTestJobsModel(t *testing.T) jobsModel {
	m := newJobsModel(newTestStore(t))
	m.width = 80
	m.height = 30
	return m
}

func makeTestJob(id int64, title, company, location string) domain.Job {
	return domain.Job{
		ID:        id,
		Title:     title,
		Company:   company,
		Location:  location,
		Status:    domain.JobStatusPublished,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
}

func loadJobs(m jobsModel, jobs ...domain.Job) jobsModel {
	m.store.Apply(store.PublishedJobsLoaded{Jobs: jobs, Page: 1})
	m, _ = m.Update(actionMsg{action: store.PublishedJobsLoaded{Jobs: jobs, Page: 1}})
	return m
}

func TestJobsListRenders(t *testing.T) {
	m := newTestJobsModel(t)
	m = loadJobs(m,
		makeTestJob(1, "Go Developer", "Acme", "Oslo"),
		makeTestJob(2, "Data Engineer", "Initech", "Berlin"),
	)

	view := m.View()
	if !strings.Contains(view, "Go Developer") {
		t.Errorf("expected 'Go Developer' in jobs view, got:\n%s", view)
	}
	if !strings.Contains(view, "Initech") {
		t.Errorf("expected 'Initech' in jobs view, got:\n%s", view)
	}
}

func TestJobsListSummarizesSelectedDescription(t *testing.T) {
	m := newTestJobsModel(t)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	job.Description = "Ship the jobs API.\nOn-call one week\r\nper quarter."
	m = loadJobs(m, job, makeTestJob(2, "Data Engineer", "Initech", "Berlin"))

	view := m.View()
	if !strings.Contains(view, "Ship the jobs API. On-call one week per quarter.") {
		t.Errorf("expected collapsed description under the selected row, got:\n%s", view)
	}

	// Only the row under the cursor carries a summary.
	m, _ = m.Update(keyRunes("j"))
	if strings.Contains(m.View(), "Ship the jobs API.") {
		t.Errorf("expected summary to follow the cursor, got:\n%s", m.View())
	}
}

func TestJobsEmptyState(t *testing.T) {
	m := newTestJobsModel(t)
	m = loadJobs(m)

	view := m.View()
	if !strings.Contains(view, "no jobs match") {
		t.Errorf("expected empty-state hint, got:\n%s", view)
	}
}

func TestJobsSearchFallbackFiltersWhileTyping(t *testing.T) {
	m := newTestJobsModel(t)
	m = loadJobs(m,
		makeTestJob(1, "Go Developer", "Acme", "Oslo"),
		makeTestJob(2, "Designer", "Initech", "Berlin"),
	)

	m, _ = m.Update(keyRunes("/"))
	if !m.searching {
		t.Fatal("expected search input active after /")
	}

	// Each keystroke emits a SearchChanged; apply it like the root model.
	for _, ch := range "go" {
		var cmd tea.Cmd
		m, cmd = m.Update(keyRunes(string(ch)))
		if cmd == nil {
			t.Fatal("expected a filter action per keystroke")
		}
		msg := cmd().(actionMsg)
		m.store.Apply(msg.action)
		m, _ = m.Update(msg)
	}

	rows := m.jobs()
	if len(rows) != 1 || rows[0].Title != "Go Developer" {
		t.Errorf("expected fallback filter to keep only the Go job, got %v", rows)
	}
}

func TestJobsSearchCommitRefetches(t *testing.T) {
	m := newTestJobsModel(t)
	m.searching = true
	m.searchInput = "go"

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Error("expected search input closed after enter")
	}
	if cmd == nil {
		t.Fatal("expected commit command after enter")
	}
}

func TestJobsLocationCycle(t *testing.T) {
	m := newTestJobsModel(t)
	m.store.Apply(store.LocationsLoaded{Locations: []string{"Berlin", "Oslo"}})

	m, cmd := m.Update(keyRunes("l"))
	if cmd == nil {
		t.Fatal("expected location filter command")
	}
	if m.locCycle != 1 {
		t.Errorf("expected locCycle 1 after first l, got %d", m.locCycle)
	}
}

func TestJobsEnterOpensDetail(t *testing.T) {
	m := newTestJobsModel(t)
	m = loadJobs(m, makeTestJob(1, "Go Developer", "Acme", "Oslo"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != jobsDetail {
		t.Errorf("expected detail mode, got %d", m.mode)
	}
	if cmd == nil {
		t.Error("expected job detail fetch command")
	}
}

func TestJobsDetailRenders(t *testing.T) {
	m := newTestJobsModel(t)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	job.Description = "Build terminal tools in Go."
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	view := m.View()
	if !strings.Contains(view, "Go Developer") || !strings.Contains(view, "terminal tools") {
		t.Errorf("expected job detail content, got:\n%s", view)
	}
}

func TestApplyRequiresLogin(t *testing.T) {
	m := newTestJobsModel(t)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	m, cmd := m.Update(keyRunes("a"))
	if m.mode == jobsApply {
		t.Error("anonymous user should not reach the apply form")
	}
	if cmd == nil {
		t.Fatal("expected a login request message")
	}
	if _, ok := cmd().(wantLoginMsg); !ok {
		t.Errorf("expected wantLoginMsg, got %T", cmd())
	}
}

func TestApplyFormValidationBlocksSubmit(t *testing.T) {
	m := newTestJobsModel(t)
	signIn(m.store, domain.RoleUser)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	m, _ = m.Update(keyRunes("a"))
	if m.mode != jobsApply {
		t.Fatal("expected apply form for authed user")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected submit blocked on empty form")
	}
	view := m.View()
	if !strings.Contains(view, "valid URL") {
		t.Errorf("expected CV link validation message, got:\n%s", view)
	}
}

func TestApplySubmitValidForm(t *testing.T) {
	m := newTestJobsModel(t)
	signIn(m.store, domain.RoleUser)
	job := makeTestJob(7, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsApply
	m.applyForm.Set("cvLink", "https://cv.example.com/me.pdf")
	m.applyForm.Set("coverLetter", strings.Repeat("I would be a great fit. ", 4))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected submit command for a valid form")
	}
	if !m.applying {
		t.Error("expected applying flag set while request in flight")
	}
}

func TestAdminDeleteFromDetail(t *testing.T) {
	m := newTestJobsModel(t)
	signIn(m.store, domain.RoleAdmin)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	m, cmd := m.Update(keyRunes("d"))
	if cmd == nil {
		t.Fatal("expected delete command for admin")
	}
	if m.mode != jobsList {
		t.Error("expected return to list after delete")
	}
}

func TestEditEmitsEditJobMsg(t *testing.T) {
	m := newTestJobsModel(t)
	signIn(m.store, domain.RoleAdmin)
	job := makeTestJob(3, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	_, cmd := m.Update(keyRunes("e"))
	if cmd == nil {
		t.Fatal("expected edit message for admin")
	}
	msg, ok := cmd().(editJobMsg)
	if !ok {
		t.Fatalf("expected editJobMsg, got %T", cmd())
	}
	if msg.job.ID != 3 {
		t.Errorf("expected job 3 in edit message, got %d", msg.job.ID)
	}
}

func TestNonAdminCannotDelete(t *testing.T) {
	m := newTestJobsModel(t)
	signIn(m.store, domain.RoleUser)
	job := makeTestJob(1, "Go Developer", "Acme", "Oslo")
	m.store.Apply(store.JobSelected{Job: &job})
	m.mode = jobsDetail

	_, cmd := m.Update(keyRunes("d"))
	if cmd != nil {
		t.Error("expected no delete command for non-admin")
	}
}
