// Package session persists the authenticated session (bearer token plus
// user object) under the user's home directory so it survives restarts.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/redaelm/jobdeck/pkg/domain"
)

const (
	tokenFile = "token"
	userFile  = "user"

	// TokenEnvVar overrides the stored token when set. Useful for scripts
	// and CI; it is never written back to disk.
	TokenEnvVar = "JOBDECK_TOKEN"
)

// Store reads and writes the persisted session. The token and user live in
// separate files (`~/.jobdeck/token` raw, `~/.jobdeck/user` JSON); a crash
// between the two writes costs at worst a re-login.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at ~/.jobdeck.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	return &Store{dir: filepath.Join(home, ".jobdeck")}, nil
}

// NewStoreAt returns a Store rooted at dir. Used by tests.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Token returns the current bearer token using precedence: env var > file >
// empty. Implements client.TokenSource.
func (s *Store) Token() string {
	if tok := os.Getenv(TokenEnvVar); tok != "" {
		return tok
	}
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save persists the session. The token is written first so an interrupted
// save leaves a usable (if user-less) state for Token().
func (s *Store) Save(sess domain.Session) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(sess.Token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	data, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0600); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Idempotent: clearing an already
// cleared store is a no-op.
func (s *Store) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// Restore loads the persisted session and re-validates it locally, without a
// network call, by decoding the token's exp claim. An absent session returns
// (nil, nil). A token that is expired, undecodable, or missing its exp claim
// counts as expired: storage is cleared and (nil, nil) returned, so the
// caller starts anonymous.
func (s *Store) Restore() (*domain.Session, error) {
	tokenData, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenData))

	userData, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Token without user: incomplete write, start over.
			return nil, s.Clear()
		}
		return nil, fmt.Errorf("read user: %w", err)
	}

	exp, err := tokenExpiry(token)
	if err != nil || !exp.After(time.Now()) {
		return nil, s.Clear()
	}

	var user domain.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, s.Clear()
	}
	return &domain.Session{User: user, Token: token}, nil
}
