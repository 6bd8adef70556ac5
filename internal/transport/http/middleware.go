package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/auth"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type claimsContextKey struct{}

// authenticate проверяет заголовок Authorization и кладёт клеймы токена
// в контекст запроса.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			writeErr(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := h.tokens.Parse(tokenString)
		if err != nil {
			h.writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFrom достаёт клеймы, положенные authenticate. Вызов вне
// аутентифицированного маршрута — ошибка программирования.
func claimsFrom(ctx context.Context) (auth.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey{}).(auth.Claims)
	if !ok {
		return auth.Claims{}, domain.Unauthorized("missing bearer token")
	}
	return claims, nil
}

// statusRecorder запоминает статус ответа для лога запроса.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}
