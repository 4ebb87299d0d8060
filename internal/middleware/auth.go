package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	cookieName    = "auth_token"
	cookieExpires = 365 * 24 * time.Hour
)

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// AuthMiddleware resolves a caller identity before any handler runs. A valid
// auth cookie yields the existing user id; otherwise a fresh identity is
// minted and a signed cookie is set. Handlers only ever read the resolved id
// from the request context.
type AuthMiddleware struct {
	secret []byte
	logger *zap.Logger
}

func NewAuthMiddleware(secret string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		logger: logger,
	}
}

func (a *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := a.resolveUserID(r)

		if userID == "" {
			userID = uuid.New().String()

			token, err := a.GenerateToken(userID)
			if err != nil {
				a.logger.Error("Failed to generate auth token", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(cookieExpires),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *AuthMiddleware) resolveUserID(r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	userID, err := a.ParseToken(cookie.Value)
	if err != nil {
		a.logger.Warn("Invalid auth token", zap.Error(err))
		return ""
	}

	return userID
}

func (a *AuthMiddleware) GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cookieExpires)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(a.secret)
}

func (a *AuthMiddleware) ParseToken(tokenString string) (string, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || parsed.UserID == "" {
		return "", errors.New("invalid token")
	}

	return parsed.UserID, nil
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
