package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/service"
)

const KeyJwtSessionCookieName = "jwt_session"

// JWTMiddleware authenticates the request from the session cookie or a
// bearer header and stores the parsed claims in the request context under
// service.KeyCtxUserCredClaims.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		var claims service.UserCredentialClaims
		token, err := jwt.ParseWithClaims(
			tokenString,
			&claims,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(os.Getenv(service.KeyJWTSecret)), nil
			},
		)
		if err != nil || !token.Valid {
			log.Warnf("rejected request with invalid session token, %v", err)
			http.Error(w, "token is not valid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(KeyJwtSessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if after, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return after
	}
	return ""
}
