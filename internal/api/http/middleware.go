package http

import (
	"net/http"
	"strings"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/security"
)

// AuthMiddleware resolves the bearer token to a full user record and injects
// it into the request context. Handlers behind Wrap can assume an actor.
type AuthMiddleware struct {
	tokenManager security.TokenManager
	userRepo     repository.UserRepository
}

func NewAuthMiddleware(tokenManager security.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager, userRepo: userRepo}
}

func (m *AuthMiddleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Authorization token is not provided"})
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Invalid token"})
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Failed to resolve user"})
			return
		}
		if user == nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "User not found"})
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := authHeader
	if len(token) > 7 && strings.EqualFold(token[0:7], "Bearer ") {
		token = token[7:]
	}
	return token, token != ""
}

// CORSMiddleware answers preflight requests and stamps the configured
// origins on every response.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
