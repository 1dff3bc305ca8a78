package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redaelm/jobdeck/pkg/domain"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func testUser() domain.User {
	return domain.User{
		ID:    uuid.New(),
		Name:  "Sara",
		Email: "sara@example.com",
		Role:  domain.RoleUser,
	}
}

func TestSaveAndRestore(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	user := testUser()
	token := signedToken(t, time.Now().Add(time.Hour))

	require.NoError(t, s.Save(domain.Session{User: user, Token: token}))

	sess, err := s.Restore()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, user, sess.User)
	assert.Equal(t, token, s.Token())
}

func TestRestore_ExpiredTokenClearsStorage(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	require.NoError(t, s.Save(domain.Session{
		User:  testUser(),
		Token: signedToken(t, time.Now().Add(-time.Minute)),
	}))

	sess, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess, "expired session must restore as anonymous")

	_, err = os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(err), "token file must be removed")
	_, err = os.Stat(filepath.Join(dir, "user"))
	assert.True(t, os.IsNotExist(err), "user file must be removed")
	assert.Empty(t, s.Token())
}

func TestRestore_MalformedTokenClearsStorage(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	require.NoError(t, s.Save(domain.Session{User: testUser(), Token: "not-a-jwt"}))

	sess, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Empty(t, s.Token())
}

func TestRestore_MissingExpClaimCountsAsExpired(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, s.Save(domain.Session{User: testUser(), Token: tok}))

	sess, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestore_NoSession(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	sess, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestRestore_TokenWithoutUserResets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte(signedToken(t, time.Now().Add(time.Hour))), 0600))

	s := NewStoreAt(dir)
	sess, err := s.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Empty(t, s.Token())
}

func TestClear_Idempotent(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	require.NoError(t, s.Save(domain.Session{User: testUser(), Token: "tok"}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "second clear must be a no-op")
	assert.Empty(t, s.Token())
}

func TestToken_EnvOverride(t *testing.T) {
	s := NewStoreAt(t.TempDir())
	require.NoError(t, s.Save(domain.Session{User: testUser(), Token: "file-token"}))

	t.Setenv(TokenEnvVar, "env-token")
	assert.Equal(t, "env-token", s.Token())
}
