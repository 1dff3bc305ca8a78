// Package store is the client's single source of truth for server data,
// split into independent slices (auth, jobs, applications, users,
// analytics). Mutation flows one way: a view dispatches an Action, the pure
// Reduce function folds it into a new State snapshot, the view re-renders.
//
// Remote work happens in Thunks: closures that perform one API call and
// return the resulting Action. A thunk never lets an error escape; failures
// come back as actions carrying an error string. Thunks capture their inputs
// when created (on the UI loop) so running them on another goroutine never
// reads live state.
//
// The Store itself is an explicit container handed to whoever needs it.
// There is no package-level instance. Apply must only be called from one
// goroutine (the UI event loop); that serialization is what makes reducer
// updates atomic.
package store

import (
	"context"

	"github.com/redaelm/jobdeck/internal/session"
	"github.com/redaelm/jobdeck/pkg/client"
)

// Action is a state-transition message. Concrete actions live in the slice
// files alongside their reducers.
type Action interface {
	isAction()
}

// Thunk performs I/O and reports the outcome as an Action.
type Thunk func(ctx context.Context) Action

// State is one immutable snapshot of all slices.
type State struct {
	Auth         AuthState
	Jobs         JobsState
	Applications ApplicationsState
	Users        UsersState
	Analytics    AnalyticsState
}

// Reduce folds an action into a state snapshot. Pure: no I/O, no mutation
// of the input.
func Reduce(s State, a Action) State {
	s.Auth = reduceAuth(s.Auth, a)
	s.Jobs = reduceJobs(s.Jobs, a)
	s.Applications = reduceApplications(s.Applications, a)
	s.Users = reduceUsers(s.Users, a)
	s.Analytics = reduceAnalytics(s.Analytics, a)
	return s
}

// Store binds a state snapshot to the API client and session storage its
// thunks need.
type Store struct {
	client   *client.Client
	session  *session.Store
	pageSize int
	state    State
}

// New creates a store. pageSize controls job-list pagination.
func New(c *client.Client, sess *session.Store, pageSize int) *Store {
	return &Store{client: c, session: sess, pageSize: pageSize}
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// Apply dispatches an action through Reduce. Call only from the UI loop.
func (s *Store) Apply(a Action) {
	if a == nil {
		return
	}
	s.state = Reduce(s.state, a)
}

// failure converts a thunk error into the right action: session expiry
// clears persisted storage and resets auth; anything else is wrapped into
// the slice's own error action.
func (s *Store) failure(err error, wrap func(msg string) Action) Action {
	if client.IsSessionExpired(err) {
		if s.session != nil {
			s.session.Clear() //nolint:errcheck // best-effort; worst case the next 401 clears again
		}
		return SessionExpired{}
	}
	return wrap(err.Error())
}
