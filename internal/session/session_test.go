package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelhub/internal/database"
	"jewelhub/internal/models"
)

func TestNewSessionIsLoading(t *testing.T) {
	s := New()
	assert.True(t, s.Loading)
	assert.False(t, s.Authenticated())
}

func TestResellerOnlyForResellerUsers(t *testing.T) {
	s := New()
	s.SetReseller(&models.Reseller{ID: 1})
	assert.Nil(t, s.Reseller, "no user yet")

	s.SetUser(&models.User{Role: models.RoleReseller})
	s.SetReseller(&models.Reseller{ID: 1})
	require.NotNil(t, s.Reseller)

	s.SetUser(&models.User{Role: models.RoleAdmin})
	assert.Nil(t, s.Reseller)

	s.SetReseller(&models.Reseller{ID: 2})
	assert.Nil(t, s.Reseller)
}

func TestLogoutKeepsLoading(t *testing.T) {
	s := New()
	s.SetToken("t")
	s.SetUser(&models.User{Role: models.RoleReseller})
	s.SetReseller(&models.Reseller{ID: 1})
	s.SetLoading(false)

	s.Logout()
	assert.Empty(t, s.Token)
	assert.Nil(t, s.User)
	assert.Nil(t, s.Reseller)
	assert.False(t, s.Loading)
}

func TestStorePersistsOnlyToken(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	store := NewStore(db, time.Hour)

	s := New()
	s.SetToken("abc")
	s.SetUser(&models.User{ID: 9, Role: models.RoleReseller})
	s.SetReseller(&models.Reseller{ID: 3})
	require.NoError(t, store.Save(ctx, "v1", s))

	raw, err := db.Get(ctx, "auth-storage:v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(raw))

	loaded, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.Token)
	assert.Nil(t, loaded.User)
	assert.Nil(t, loaded.Reseller)

	loaded.Logout()
	require.NoError(t, store.Save(ctx, "v1", loaded))
	_, err = db.Get(ctx, "auth-storage:v1")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestSigner(t *testing.T) {
	s := NewSigner("secret")
	signed := s.Sign("visitor-1")

	v, err := s.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "visitor-1", v)

	_, err = s.Verify(signed + "0")
	assert.ErrorIs(t, err, ErrBadSignature)
	_, err = NewSigner("other").Verify(signed)
	assert.ErrorIs(t, err, ErrBadSignature)
	_, err = s.Verify("nodot")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestCookieMaxAge(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.Equal(t, 7200, CookieMaxAge(token, now, time.Minute))
	assert.Equal(t, -1, CookieMaxAge(token, now.Add(3*time.Hour), time.Minute))
	assert.Equal(t, 60, CookieMaxAge("not-a-jwt", now, time.Minute))
}
