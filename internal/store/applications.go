package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// ApplicationsState is the applications slice. All (admin view) and Mine
// (current user's) are separate collections on purpose: mixing them once
// caused an admin's list to leak into the user view.
type ApplicationsState struct {
	All     []domain.Application
	Mine    []domain.Application
	ForJob  []domain.Application
	Grouped []domain.JobApplicants
	Loading bool
	Error   string
}

// -- actions --

// ApplicationsRequested sets the loading flag before an applications fetch.
type ApplicationsRequested struct{}

// AllApplicationsLoaded commits the admin applications list.
type AllApplicationsLoaded struct {
	Applications []domain.Application
	Err          string
}

// MyApplicationsLoaded commits the current user's applications.
type MyApplicationsLoaded struct {
	Applications []domain.Application
	Err          string
}

// JobApplicationsLoaded commits the applications for one job.
type JobApplicationsLoaded struct {
	JobID        int64
	Applications []domain.Application
	Err          string
}

// GroupedApplicationsLoaded commits the admin jobs-with-applicants view.
type GroupedApplicationsLoaded struct {
	Grouped []domain.JobApplicants
	Err     string
}

// ApplicationSubmitted appends a freshly created application to both the
// admin and the user collections.
type ApplicationSubmitted struct{ Application domain.Application }

// ApplicationStatusChanged updates one application's review status.
type ApplicationStatusChanged struct {
	ID     uuid.UUID
	Status string
}

func (ApplicationsRequested) isAction()     {}
func (AllApplicationsLoaded) isAction()     {}
func (MyApplicationsLoaded) isAction()      {}
func (JobApplicationsLoaded) isAction()     {}
func (GroupedApplicationsLoaded) isAction() {}
func (ApplicationSubmitted) isAction()      {}
func (ApplicationStatusChanged) isAction()  {}

// -- reducer --

func reduceApplications(s ApplicationsState, a Action) ApplicationsState {
	switch a := a.(type) {
	case ApplicationsRequested:
		s.Loading = true
		s.Error = ""
	case AllApplicationsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.All = a.Applications
		s.Error = ""
	case MyApplicationsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.Mine = a.Applications
		s.Error = ""
	case JobApplicationsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.ForJob = a.Applications
		s.Error = ""
	case GroupedApplicationsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.Grouped = a.Grouped
		s.Error = ""
	case ApplicationSubmitted:
		s.All = append(append([]domain.Application{}, s.All...), a.Application)
		s.Mine = append(append([]domain.Application{}, s.Mine...), a.Application)
	case ApplicationStatusChanged:
		s.All = setStatus(s.All, a.ID, a.Status)
		s.ForJob = setStatus(s.ForJob, a.ID, a.Status)
	case LoggedOut, SessionExpired:
		s = ApplicationsState{}
	}
	return s
}

func setStatus(apps []domain.Application, id uuid.UUID, status string) []domain.Application {
	out := append([]domain.Application{}, apps...)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

// -- thunks --

// SubmitApplication submits a job application. The view validates the form
// first; this thunk only runs with clean input.
func (s *Store) SubmitApplication(req client.ApplyRequest) Thunk {
	return func(ctx context.Context) Action {
		app, err := s.client.Apply(ctx, req)
		if err != nil {
			return s.failure(err, func(msg string) Action { return MyApplicationsLoaded{Err: msg} })
		}
		return ApplicationSubmitted{Application: *app}
	}
}

// FetchMyApplications fetches the current user's applications. Under the
// client's default list policy errors arrive as an empty list.
func (s *Store) FetchMyApplications() Thunk {
	return func(ctx context.Context) Action {
		apps, err := s.client.MyApplications(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return MyApplicationsLoaded{Err: msg} })
		}
		return MyApplicationsLoaded{Applications: apps}
	}
}

// FetchAllApplications fetches every application. Admin only.
func (s *Store) FetchAllApplications() Thunk {
	return func(ctx context.Context) Action {
		apps, err := s.client.AllApplications(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return AllApplicationsLoaded{Err: msg} })
		}
		return AllApplicationsLoaded{Applications: apps}
	}
}

// FetchJobApplications fetches the applications for one job.
func (s *Store) FetchJobApplications(jobID int64) Thunk {
	return func(ctx context.Context) Action {
		apps, err := s.client.ApplicationsForJob(ctx, jobID)
		if err != nil {
			return s.failure(err, func(msg string) Action { return JobApplicationsLoaded{JobID: jobID, Err: msg} })
		}
		return JobApplicationsLoaded{JobID: jobID, Applications: apps}
	}
}

// FetchGroupedApplications fetches the jobs-with-applicants admin view.
func (s *Store) FetchGroupedApplications() Thunk {
	return func(ctx context.Context) Action {
		grouped, err := s.client.AdminJobsApplications(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return GroupedApplicationsLoaded{Err: msg} })
		}
		return GroupedApplicationsLoaded{Grouped: grouped}
	}
}
