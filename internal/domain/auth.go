package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims — полезная нагрузка access-токена.
// Токен несёт только идентичность (email), но не права:
// роль перечитывается из БД на каждом привилегированном запросе.
type Claims struct {
	Email string `json:"email"`
	// Profile — произвольные поля, которые клиент прислал при логине.
	// Схема не фиксирована, храним как есть.
	Profile map[string]any `json:"profile,omitempty"`
	jwt.RegisteredClaims
}

// Principal — аутентифицированная личность текущего запроса.
// Живёт только в request context, нигде не сохраняется.
type Principal struct {
	Email  string
	Claims *Claims
}

// TokenRequest — тело POST /authentication.
// Email обязателен, остальные поля уходят в Profile как есть.
type TokenRequest struct {
	Email   string         `json:"email" validate:"required,email"`
	Profile map[string]any `json:"profile,omitempty"`
}

// TokenResponse — ответ эндпоинта аутентификации.
type TokenResponse struct {
	Token string `json:"token"`
}
