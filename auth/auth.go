package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lapillo/middleware"
	"lapillo/models"
	"lapillo/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// AdminStore is the login-side lookup.
type AdminStore interface {
	AdminByEmail(ctx context.Context, email string) (models.AdminUser, error)
}

type Handler struct {
	secret []byte
	store  AdminStore
}

func NewHandler(secret []byte, store AdminStore) *Handler {
	return &Handler{secret: secret, store: store}
}

// Login verifies email+password and issues a bearer token. Unknown email and
// wrong password are indistinguishable 401s.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := h.store.AdminByEmail(r.Context(), input.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.IssueToken(admin)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"email": admin.Email,
		"name":  admin.Name,
	})
}

// Me returns the identity resolved by the auth middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
	})
}

// IssueToken signs an HS256 bearer token with subject = admin id.
func (h *Handler) IssueToken(admin models.AdminUser) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}
