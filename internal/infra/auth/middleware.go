package auth

import (
	"net/http"
	"strings"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"go.uber.org/zap"
)

// NewMiddleware возвращает bearer-middleware для защищённого периметра.
// Ни один запрос не проходит дальше без валидной подписи:
//   - нет заголовка Authorization → 401
//   - подпись не сошлась или токен истёк → 403
//
// При успехе Principal кладётся в контекст для downstream-хендлеров.
func NewMiddleware(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				denyJSON(w, http.StatusUnauthorized, "no token")
				return
			}

			tokenStr := extractBearer(authHeader)
			claims, err := v.VerifyToken(tokenStr)
			if err != nil {
				logger.Warn("auth failure", zap.Error(err))
				denyJSON(w, http.StatusForbidden, "invalid token")
				return
			}

			principal := &domain.Principal{Email: claims.Email, Claims: claims}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// extractBearer достаёт токен из "Bearer <token>".
// Любая другая форма заголовка даёт пустую строку и валится на верификации.
func extractBearer(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}

func denyJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + msg + `"}`))
}
