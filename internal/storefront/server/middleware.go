package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/xela07ax/mrfashion-backend/internal/infra/auth"
	"go.uber.org/zap"
)

// RoleChecker — интерфейс role gate. Реализуется AuthService:
// каждый вызов — свежее чтение записи пользователя из БД,
// токен никогда не является источником прав.
type RoleChecker interface {
	HasRole(ctx context.Context, email, role string) (bool, error)
}

// requireRole пропускает дальше только пользователей с указанной ролью.
// Ставится строго после bearer-middleware. Отсутствие записи пользователя —
// deny-by-default. Статус отказа зависит от auth.soft_role_deny:
// жёсткий 403 либо 200 с тем же сообщением (режим совместимости
// с историческим поведением фронта).
func (s *Server) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				// Сюда можно попасть только при неправильной сборке цепочки
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			allowed, err := s.roles.HasRole(r.Context(), principal.Email, role)
			if err != nil {
				s.logger.Error("role lookup failed", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !allowed {
				status := http.StatusForbidden
				if s.cfg.Auth.SoftRoleDeny {
					status = http.StatusOK
				}
				s.logger.Warn("role denied",
					zap.String("email", principal.Email),
					zap.String("required_role", role),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				w.Write([]byte(`{"message":"forbidden: ` + role + ` role required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// metricsMiddleware снимает latency/traffic/errors по каждому маршруту.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()

		s.metrics.TotalRequests.WithLabelValues(route, r.Method).Inc()
		s.metrics.RequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		switch {
		case status == http.StatusUnauthorized:
			s.metrics.ErrorTotal.WithLabelValues("auth_missing").Inc()
		case status == http.StatusForbidden:
			s.metrics.ErrorTotal.WithLabelValues("auth_invalid").Inc()
		case status == http.StatusBadRequest:
			s.metrics.ErrorTotal.WithLabelValues("validation").Inc()
		case status == http.StatusNotFound:
			s.metrics.ErrorTotal.WithLabelValues("not_found").Inc()
		case status >= 500:
			s.metrics.ErrorTotal.WithLabelValues("internal").Inc()
		}
	})
}
