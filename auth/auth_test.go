package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lapillo/db"
	"lapillo/middleware"
	"lapillo/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

type fakeStore struct {
	admin models.AdminUser
}

func (f fakeStore) AdminByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	if email != f.admin.Email {
		return models.AdminUser{}, db.ErrNotFound
	}
	return f.admin, nil
}

func testAdmin(t *testing.T, password string) models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.AdminUser{
		ID:           "admin-1",
		Email:        "marco@example.com",
		PasswordHash: string(hash),
		Name:         "Marco",
	}
}

func doLogin(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, r, nil)
	return w
}

func TestLoginSuccess(t *testing.T) {
	admin := testAdmin(t, "segreto")
	h := NewHandler(testSecret, fakeStore{admin: admin})

	w := doLogin(h, `{"email":"marco@example.com","password":"segreto"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "marco@example.com", resp["email"])
	assert.Equal(t, "Marco", resp["name"])
	assert.NotEmpty(t, resp["token"])

	// The token must verify against the same secret and carry the admin id.
	claims := &middleware.Claims{}
	_, err := jwt.ParseWithClaims(resp["token"], claims, func(*jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{admin: testAdmin(t, "segreto")})
	w := doLogin(h, `{"email":"marco@example.com","password":"sbagliata"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{admin: testAdmin(t, "segreto")})
	w := doLogin(h, `{"email":"nessuno@example.com","password":"segreto"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUndifferentiatedFailures(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{admin: testAdmin(t, "segreto")})

	wrongPass := doLogin(h, `{"email":"marco@example.com","password":"sbagliata"}`)
	unknown := doLogin(h, `{"email":"nessuno@example.com","password":"segreto"}`)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{admin: testAdmin(t, "segreto")})
	w := doLogin(h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{admin: testAdmin(t, "segreto")})
	w := doLogin(h, `{"email":"marco@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeWithoutIdentity(t *testing.T) {
	h := NewHandler(testSecret, fakeStore{})
	r := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	w := httptest.NewRecorder()
	h.Me(w, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
