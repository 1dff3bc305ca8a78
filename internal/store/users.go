package store

import (
	"context"

	"github.com/redaelm/jobdeck/pkg/domain"
)

// UsersState is the admin users slice.
type UsersState struct {
	All     []domain.User
	Loading bool
	Error   string
}

// UsersRequested sets the loading flag before a users fetch.
type UsersRequested struct{}

// UsersLoaded commits the admin users list.
type UsersLoaded struct {
	Users []domain.User
	Err   string
}

func (UsersRequested) isAction() {}
func (UsersLoaded) isAction()    {}

func reduceUsers(s UsersState, a Action) UsersState {
	switch a := a.(type) {
	case UsersRequested:
		s.Loading = true
		s.Error = ""
	case UsersLoaded:
		s.Loading = false
		if a.Err != "" {
			s.Error = a.Err
			return s
		}
		s.All = a.Users
		s.Error = ""
	case LoggedOut, SessionExpired:
		s = UsersState{}
	}
	return s
}

// FetchUsers fetches the registered users. Admin only.
func (s *Store) FetchUsers() Thunk {
	return func(ctx context.Context) Action {
		users, err := s.client.ListUsers(ctx)
		if err != nil {
			return s.failure(err, func(msg string) Action { return UsersLoaded{Err: msg} })
		}
		return UsersLoaded{Users: users}
	}
}
