package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// UserRepository описывает требования сервиса к хранилищу пользователей.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
	UpdateUserRole(ctx context.Context, id, role string) (*domain.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register — идемпотентное создание по ключу email.
// Повторный вызов возвращает существующую запись (created=false),
// дубликат не создается.
func (s *UserService) Register(ctx context.Context, u *domain.User) (user *domain.User, created bool, err error) {
	existing, err := s.repo.GetUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	u.ID = uuid.New().String()
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

// GetByEmail возвращает (nil, nil), если записи нет — хендлер отдаст пустое тело,
// как это делал исходный эндпоинт /user/:email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.UpdateResult, error) {
	return s.repo.UpdateUserRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return s.repo.DeleteUser(ctx, id)
}
