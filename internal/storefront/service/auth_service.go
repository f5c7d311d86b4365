package service

import (
	"context"
	"fmt"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/infra/auth"
)

// UserProvider описывает требования auth-слоя к хранилищу пользователей.
type UserProvider interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthService struct {
	users  UserProvider
	signer *auth.Signer
}

func NewAuthService(users UserProvider, signer *auth.Signer) *AuthService {
	return &AuthService{
		users:  users,
		signer: signer,
	}
}

// IssueToken выпускает access-токен для identity claim.
// Никакой проверки существования пользователя здесь нет: токен несёт
// только идентичность, права выясняются на каждом запросе через HasRole.
func (s *AuthService) IssueToken(ctx context.Context, req *domain.TokenRequest) (*domain.TokenResponse, error) {
	token, err := s.signer.Sign(req.Email, req.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.TokenResponse{Token: token}, nil
}

// HasRole перечитывает запись пользователя из БД и сверяет роль.
// Отсутствие записи — deny-by-default: смена роли после выпуска токена
// вступает в силу немедленно, токеном её не подделать.
func (s *AuthService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == role, nil
}
