package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// WishlistRepository описывает требования сервиса к хранилищу вишлистов.
type WishlistRepository interface {
	FindWishlistItem(ctx context.Context, email, productID string) (*domain.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, item *domain.WishlistItem) error
	ListWishlistByEmail(ctx context.Context, email string) ([]domain.WishlistItem, error)
	DeleteWishlistItem(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type WishlistService struct {
	repo WishlistRepository
}

func NewWishlistService(repo WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Add — идемпотентное добавление по паре (email, product_id).
func (s *WishlistService) Add(ctx context.Context, item *domain.WishlistItem) (result *domain.WishlistItem, created bool, err error) {
	existing, err := s.repo.FindWishlistItem(ctx, item.Email, item.ProductID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	item.ID = uuid.New().String()
	if err := s.repo.CreateWishlistItem(ctx, item); err != nil {
		return nil, false, err
	}
	return item, true, nil
}

func (s *WishlistService) List(ctx context.Context, email string) ([]domain.WishlistItem, error) {
	return s.repo.ListWishlistByEmail(ctx, email)
}

func (s *WishlistService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return s.repo.DeleteWishlistItem(ctx, id)
}
