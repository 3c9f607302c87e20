package admin_auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"storefront/pkg/logger"
)

const (
	RoleAdmin = "admin"

	clockSkew = 30 * time.Second
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware пропускает только запросы с HS256 токеном и role=admin.
// Выпуск токенов здесь не делается.
func Middleware(log handlerLogger, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(auth, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				unauthorized(w, "invalid_request", "missing bearer token")
				return
			}

			var claims Claims
			token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims,
				func(*jwt.Token) (any, error) { return secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithLeeway(clockSkew),
			)
			if err != nil || !token.Valid {
				log.Warn("admin token rejected",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				unauthorized(w, "invalid_token", "invalid jwt")
				return
			}

			if claims.Role != RoleAdmin {
				writeError(w, http.StatusForbidden, "insufficient_scope", "admin role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	writeError(w, http.StatusUnauthorized, code, desc)
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": desc,
	})
}
