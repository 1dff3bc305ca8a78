package store

import (
	"context"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// AnalyticsState is the admin analytics slice.
type AnalyticsState struct {
	Snapshot *domain.AnalyticsSnapshot
	Loading  bool
	Error    string
}

// AnalyticsRequested sets the loading flag before an analytics fetch.
type AnalyticsRequested struct{}

// AnalyticsLoaded commits the analytics snapshot.
type AnalyticsLoaded struct {
	Snapshot *domain.AnalyticsSnapshot
	Err      string
}

func (AnalyticsRequested) isAction() {}
func (AnalyticsLoaded) isAction()    {}

func reduceAnalytics(s AnalyticsState, a Action) AnalyticsState {
	switch a := a.(type) {
	case AnalyticsRequested:
		s.Loading = true
		s.Error = ""
	case AnalyticsLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.Snapshot = a.Snapshot
		s.Error = ""
	case LoggedOut, SessionExpired:
		s = AnalyticsState{}
	}
	return s
}

// FetchAnalytics fetches the admin dashboard snapshot.
func (s *Store) FetchAnalytics() Thunk {
	return func(ctx context.Context) Action {
		snap, err := s.client.Analytics(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return AnalyticsLoaded{Err: msg} })
		}
		return AnalyticsLoaded{Snapshot: snap}
	}
}
