package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lapillo/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims: subject carries the admin id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type contextKey string

const adminKey contextKey = "admin"

// AdminStore resolves the token subject to an admin identity.
type AdminStore interface {
	AdminByID(ctx context.Context, id string) (models.AdminUser, error)
}

// Auth verifies bearer tokens on /admin routes.
type Auth struct {
	Secret []byte
	Store  AdminStore
}

func NewAuth(secret []byte, store AdminStore) *Auth {
	return &Auth{Secret: secret, Store: store}
}

func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(header[7:], claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.Secret, nil
		})
		if err != nil || !token.Valid {
			// Expired vs. malformed only matters for logs; the caller sees 401 either way.
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		admin, err := a.Store.AdminByID(r.Context(), claims.Subject)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminKey, admin)
		next(w, r.WithContext(ctx), ps)
	}
}

// AdminFromContext returns the authenticated admin stored by Authenticate.
func AdminFromContext(ctx context.Context) (models.AdminUser, bool) {
	admin, ok := ctx.Value(adminKey).(models.AdminUser)
	return admin, ok
}
