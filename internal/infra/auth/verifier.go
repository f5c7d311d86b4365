package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// TokenValidator — интерфейс проверки токена для middleware.
type TokenValidator interface {
	VerifyToken(tokenStr string) (*domain.Claims, error)
}

// Verifier содержит общую логику проверки HS256.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyToken реализует интерфейс TokenValidator.
// Проверяет подпись и expiry; валидность определяется только ими,
// никакого состояния на сервере токен не имеет.
func (v *Verifier) VerifyToken(tokenStr string) (*domain.Claims, error) {
	if len(v.secret) == 0 {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	return claims, nil
}
