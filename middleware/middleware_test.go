package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lapillo/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type fakeStore struct {
	admin models.AdminUser
	err   error
}

func (f fakeStore) AdminByID(ctx context.Context, id string) (models.AdminUser, error) {
	if f.err != nil {
		return models.AdminUser{}, f.err
	}
	if id != f.admin.ID {
		return models.AdminUser{}, errors.New("not found")
	}
	return f.admin, nil
}

func signToken(t *testing.T, secret []byte, subject string, exp time.Time) string {
	t.Helper()
	claims := &Claims{
		Email: "marco@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func runAuth(t *testing.T, header string, store AdminStore) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	called := false
	auth := NewAuth(testSecret, store)
	handler := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		admin, ok := AdminFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "admin-1", admin.ID)
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	handler(w, r, nil)
	return w, called
}

func TestAuthenticateValidToken(t *testing.T) {
	store := fakeStore{admin: models.AdminUser{ID: "admin-1", Email: "marco@example.com"}}
	token := signToken(t, testSecret, "admin-1", time.Now().Add(time.Hour))

	w, called := runAuth(t, "Bearer "+token, store)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	w, called := runAuth(t, "", fakeStore{})
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateWrongScheme(t *testing.T) {
	w, called := runAuth(t, "Basic abc123", fakeStore{})
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateTamperedToken(t *testing.T) {
	store := fakeStore{admin: models.AdminUser{ID: "admin-1"}}
	token := signToken(t, []byte("other-secret"), "admin-1", time.Now().Add(time.Hour))

	w, called := runAuth(t, "Bearer "+token, store)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	store := fakeStore{admin: models.AdminUser{ID: "admin-1"}}
	token := signToken(t, testSecret, "admin-1", time.Now().Add(-time.Minute))

	w, called := runAuth(t, "Bearer "+token, store)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateUnknownAdmin(t *testing.T) {
	store := fakeStore{admin: models.AdminUser{ID: "someone-else"}}
	token := signToken(t, testSecret, "admin-1", time.Now().Add(time.Hour))

	w, called := runAuth(t, "Bearer "+token, store)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminFromContextEmpty(t *testing.T) {
	_, ok := AdminFromContext(context.Background())
	assert.False(t, ok)
}
