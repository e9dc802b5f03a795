package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelforge/studio-api/internal/model"
)

// sessionClaims is the verified shape of a bearer token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Session resolves the bearer token into a session and attaches it to the
// request context. A request without an Authorization header proceeds
// anonymously; a header that fails verification is rejected outright so a
// tampered token never degrades into a guest request.
func Session(secret, issuer string) Middleware {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeUnauthorized(w, "malformed authorization header")
				return
			}

			claims := &sessionClaims{}
			opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
			if issuer != "" {
				opts = append(opts, jwt.WithIssuer(issuer))
			}
			token, err := jwt.ParseWithClaims(raw, claims, keyFunc, opts...)
			if err != nil || !token.Valid || claims.Subject == "" {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			roles := make([]model.Role, 0, len(claims.Roles))
			for _, role := range claims.Roles {
				roles = append(roles, model.Role(role))
			}
			session := &model.Session{
				UserID:    claims.Subject,
				UserEmail: claims.Email,
				UserRoles: roles,
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom extracts the session from context; nil means anonymous.
func SessionFrom(ctx context.Context) *model.Session {
	if s, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return s
	}
	return nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"ok":false,"errorCode":"UNAUTHORIZED","errorMessage":%q}`, message)))
}
