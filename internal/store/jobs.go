package store

import (
	"context"

	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// JobsState is the jobs slice. Published holds the backend-filtered listing;
// All is the admin-only unfiltered list. Filtered is the legacy in-memory
// fallback view over Published, recomputed on every query change.
type JobsState struct {
	Published []domain.Job
	All       []domain.Job
	Filtered  []domain.Job
	Selected  *domain.Job
	Locations []string
	Query     string
	Location  string
	Page      int
	Loading   bool
	Error     string
}

// -- actions --

// JobsRequested sets the loading flag before a jobs fetch.
type JobsRequested struct{}

// PublishedJobsLoaded commits a published-jobs page, or an error string.
type PublishedJobsLoaded struct {
	Jobs []domain.Job
	Page int
	Err  string
}

// AdminJobsLoaded commits the unfiltered admin job list, or an error string.
type AdminJobsLoaded struct {
	Jobs []domain.Job
	Err  string
}

// JobSelected commits a job-detail fetch result.
type JobSelected struct {
	Job *domain.Job
	Err string
}

// LocationsLoaded commits the distinct-locations list.
type LocationsLoaded struct {
	Locations []string
	Err       string
}

// SearchChanged stores a new search query and recomputes the fallback
// filter. The view follows up with a FetchPublishedJobs thunk so the
// backend applies the filter properly.
type SearchChanged struct{ Query string }

// LocationFilterChanged stores a new location filter.
type LocationFilterChanged struct{ Location string }

// JobCreated appends a newly created job.
type JobCreated struct{ Job domain.Job }

// JobUpdated replaces a job in place. Last write wins.
type JobUpdated struct{ Job domain.Job }

// JobDeleted removes a job.
type JobDeleted struct{ ID int64 }

func (JobsRequested) isAction()         {}
func (PublishedJobsLoaded) isAction()   {}
func (AdminJobsLoaded) isAction()       {}
func (JobSelected) isAction()           {}
func (LocationsLoaded) isAction()       {}
func (SearchChanged) isAction()         {}
func (LocationFilterChanged) isAction() {}
func (JobCreated) isAction()            {}
func (JobUpdated) isAction()            {}
func (JobDeleted) isAction()            {}

// -- reducer --

func reduceJobs(s JobsState, a Action) JobsState {
	switch a := a.(type) {
	case JobsRequested:
		s.Loading = true
		s.Error = ""
	case PublishedJobsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.Published = a.Jobs
		s.Page = a.Page
		s.Filtered = FilterJobs(a.Jobs, s.Query)
		s.Error = ""
	case AdminJobsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.All = a.Jobs
		s.Error = ""
	case JobSelected:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.Selected = a.Job
	case LocationsLoaded:
		if a.Err == "" {
			s.Locations = a.Locations
		}
	case SearchChanged:
		s.Query = a.Query
		s.Filtered = FilterJobs(s.Published, a.Query)
	case LocationFilterChanged:
		s.Location = a.Location
	case JobCreated:
		s.All = append(append([]domain.Job{}, s.All...), a.Job)
		if a.Job.Status == domain.JobStatusPublished {
			s.Published = append(append([]domain.Job{}, s.Published...), a.Job)
			s.Filtered = FilterJobs(s.Published, s.Query)
		}
	case JobUpdated:
		s.All = replaceJob(s.All, a.Job)
		s.Published = replaceJob(s.Published, a.Job)
		s.Filtered = FilterJobs(s.Published, s.Query)
		if s.Selected != nil && s.Selected.ID == a.Job.ID {
			job := a.Job
			s.Selected = &job
		}
	case JobDeleted:
		s.All = removeJob(s.All, a.ID)
		s.Published = removeJob(s.Published, a.ID)
		s.Filtered = FilterJobs(s.Published, s.Query)
		if s.Selected != nil && s.Selected.ID == a.ID {
			s.Selected = nil
		}
	case LoggedOut, SessionExpired:
		// Admin data is gone with the session; public listings stay.
		s.All = nil
	}
	return s
}

// FilterJobs is the legacy client-side fallback: case-insensitive substring
// match on title, company or location over an already-fetched list. The
// backend query filter is the primary path.
func FilterJobs(jobs []domain.Job, query string) []domain.Job {
	if query == "" {
		return jobs
	}
	filtered := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.MatchesQuery(query) {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

func replaceJob(jobs []domain.Job, job domain.Job) []domain.Job {
	out := append([]domain.Job{}, jobs...)
	for i := range out {
		if out[i].ID == job.ID {
			out[i] = job
		}
	}
	return out
}

func removeJob(jobs []domain.Job, id int64) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != id {
			out = append(out, j)
		}
	}
	return out
}

// -- thunks --

// FetchPublishedJobs fetches one page of published jobs using the current
// search and location filters. Filter values are captured now, so a filter
// typed after dispatch does not leak into an in-flight request.
func (s *Store) FetchPublishedJobs(page int) Thunk {
	filters := client.JobFilters{Search: s.state.Jobs.Query, Location: s.state.Jobs.Location}
	pageSize := s.pageSize
	return func(ctx context.Context) Action {
		jobs, err := s.client.ListPublishedJobs(ctx, page, pageSize, filters)
		if err != nil {
			return s.failure(err, func(msg string) Action { return PublishedJobsLoaded{Err: msg} })
		}
		return PublishedJobsLoaded{Jobs: jobs, Page: page}
	}
}

// FetchAdminJobs fetches the unfiltered job list. Admin only.
func (s *Store) FetchAdminJobs(page int) Thunk {
	pageSize := s.pageSize
	return func(ctx context.Context) Action {
		jobs, err := s.client.ListJobs(ctx, page, pageSize)
		if err != nil {
			return s.failure(err, func(msg string) Action { return AdminJobsLoaded{Err: msg} })
		}
		return AdminJobsLoaded{Jobs: jobs}
	}
}

// FetchJob fetches one job's detail.
func (s *Store) FetchJob(id int64) Thunk {
	return func(ctx context.Context) Action {
		job, err := s.client.GetJob(ctx, id)
		if err != nil {
			return s.failure(err, func(msg string) Action { return JobSelected{Err: msg} })
		}
		return JobSelected{Job: job}
	}
}

// FetchLocations fetches the distinct location list for the filter cycle.
func (s *Store) FetchLocations() Thunk {
	return func(ctx context.Context) Action {
		locations, err := s.client.ListLocations(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return LocationsLoaded{Err: msg} })
		}
		return LocationsLoaded{Locations: locations}
	}
}

// CreateJob creates a job posting.
func (s *Store) CreateJob(req client.JobRequest) Thunk {
	return func(ctx context.Context) Action {
		job, err := s.client.CreateJob(ctx, req)
		if err != nil {
			return s.failure(err, func(msg string) Action { return AdminJobsLoaded{Err: msg} })
		}
		return JobCreated{Job: *job}
	}
}

// UpdateJob replaces a job's fields.
func (s *Store) UpdateJob(id int64, req client.JobRequest) Thunk {
	return func(ctx context.Context) Action {
		job, err := s.client.UpdateJob(ctx, id, req)
		if err != nil {
			return s.failure(err, func(msg string) Action { return AdminJobsLoaded{Err: msg} })
		}
		return JobUpdated{Job: *job}
	}
}

// DeleteJob deletes a job posting.
func (s *Store) DeleteJob(id int64) Thunk {
	return func(ctx context.Context) Action {
		if err := s.client.DeleteJob(ctx, id); err != nil {
			return s.failure(err, func(msg string) Action { return AdminJobsLoaded{Err: msg} })
		}
		return JobDeleted{ID: id}
	}
}
