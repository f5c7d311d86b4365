package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// ErrNoSecret возвращается, когда подписывающий секрет не задан.
// Проверка намеренно отложена до вызова: сервис стартует и без секрета,
// не работают только операции с токенами.
var ErrNoSecret = errors.New("signing secret is not configured")

// Signer выпускает access-токены, подписанные симметричным секретом (HS256).
type Signer struct {
	secret   []byte
	tokenTTL time.Duration
	issuer   string
}

func NewSigner(secret string, tokenTTL time.Duration) *Signer {
	return &Signer{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		issuer:   "mrfashion-api",
	}
}

// Sign выпускает токен для identity claim. Повторный выпуск для того же
// email даёт новый независимый токен; старые живут до собственного expiry.
func (s *Signer) Sign(email string, profile map[string]any) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := &domain.Claims{
		Email:   email,
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
