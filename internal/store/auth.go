package store

import (
	"context"
	"errors"

	"github.com/redaelm/jobdeck/pkg/client"
	"github.com/redaelm/jobdeck/pkg/domain"
)

// AuthStatus is the session lifecycle state.
type AuthStatus int

const (
	// Anonymous means no session: never logged in, logged out, or expired.
	Anonymous AuthStatus = iota
	// Authenticating means a login/signup call is in flight.
	Authenticating
	// Authenticated means user and token are present and the token was
	// unexpired when checked.
	Authenticated
)

// AuthState is the auth slice. IsAuthenticated is true iff both User and
// Token are set and the token was unexpired at restore/login time; the
// reducer keeps that in lockstep with Status.
type AuthState struct {
	Status          AuthStatus
	User            domain.User
	Token           string
	IsAuthenticated bool
	Error           string
}

// -- actions --

// LoginStarted marks a login or signup submission in flight.
type LoginStarted struct{}

// LoginSucceeded commits a fresh session. The thunk has already persisted it.
type LoginSucceeded struct{ Session domain.Session }

// LoginFailed records a rejected login/signup. Persisted storage is untouched.
type LoginFailed struct{ Err string }

// LoggedOut resets to anonymous after an explicit logout.
type LoggedOut struct{}

// SessionRestored commits a session restored from durable storage at startup.
type SessionRestored struct{ Session domain.Session }

// SessionExpired resets to anonymous after the backend rejected a stored
// token. Emitted by Store.failure for any slice's thunk.
type SessionExpired struct{}

func (LoginStarted) isAction()    {}
func (LoginSucceeded) isAction()  {}
func (LoginFailed) isAction()     {}
func (LoggedOut) isAction()       {}
func (SessionRestored) isAction() {}
func (SessionExpired) isAction()  {}

// -- reducer --

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case LoginStarted:
		s.Status = Authenticating
		s.Error = ""
	case LoginSucceeded:
		s = authenticated(a.Session)
	case SessionRestored:
		s = authenticated(a.Session)
	case LoginFailed:
		// Back to anonymous; whatever was persisted before stays as is.
		s.Status = Anonymous
		s.User = domain.User{}
		s.Token = ""
		s.IsAuthenticated = false
		s.Error = a.Err
	case LoggedOut:
		s = AuthState{}
	case SessionExpired:
		s = AuthState{Error: "session expired, please log in again"}
	}
	return s
}

func authenticated(sess domain.Session) AuthState {
	return AuthState{
		Status:          Authenticated,
		User:            sess.User,
		Token:           sess.Token,
		IsAuthenticated: true,
	}
}

// -- thunks --

// loginError reduces a rejected auth call to the backend's own message, so
// the login form shows "invalid credentials" rather than the wrapped chain.
func loginError(err error) string {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}

// Login authenticates with credentials, persisting the session on success.
// A rejected login leaves persisted storage untouched.
func (s *Store) Login(email, password string) Thunk {
	return func(ctx context.Context) Action {
		sess, err := s.client.Login(ctx, email, password)
		if err != nil {
			return LoginFailed{Err: loginError(err)}
		}
		if err := s.session.Save(*sess); err != nil {
			return LoginFailed{Err: err.Error()}
		}
		return LoginSucceeded{Session: *sess}
	}
}

// Signup registers a new account, persisting the session on success.
func (s *Store) Signup(name, email, password string) Thunk {
	return func(ctx context.Context) Action {
		sess, err := s.client.Register(ctx, name, email, password)
		if err != nil {
			return LoginFailed{Err: loginError(err)}
		}
		if err := s.session.Save(*sess); err != nil {
			return LoginFailed{Err: err.Error()}
		}
		return LoginSucceeded{Session: *sess}
	}
}

// GoogleLogin exchanges a Google identity token for a session.
func (s *Store) GoogleLogin(idToken string) Thunk {
	return func(ctx context.Context) Action {
		sess, err := s.client.LoginWithGoogle(ctx, idToken)
		if err != nil {
			return LoginFailed{Err: loginError(err)}
		}
		if err := s.session.Save(*sess); err != nil {
			return LoginFailed{Err: err.Error()}
		}
		return LoginSucceeded{Session: *sess}
	}
}

// Logout clears persisted storage and resets the auth slice.
func (s *Store) Logout() Thunk {
	return func(_ context.Context) Action {
		s.session.Clear() //nolint:errcheck // best-effort; state resets regardless
		return LoggedOut{}
	}
}

// RestoreSession loads the persisted session at startup, re-validating the
// token's expiry locally. Expired or absent sessions leave the store
// anonymous; expired ones are also cleared from storage by the session
// package. Synchronous: meant to run before the UI starts.
func (s *Store) RestoreSession() error {
	sess, err := s.session.Restore()
	if err != nil {
		return err
	}
	if sess != nil {
		s.Apply(SessionRestored{Session: *sess})
	}
	return nil
}
