package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

// ProductRepository описывает требования сервиса к хранилищу товаров.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p *domain.Product) error
	ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	GetProductsBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error)
	DistinctFacets(ctx context.Context) (*domain.Facets, error)
	UpdateProduct(ctx context.Context, id string, req *domain.UpdateProductRequest) (*domain.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type ProductService struct {
	repo  ProductRepository
	cache *FacetCache
}

func NewProductService(repo ProductRepository, cache *FacetCache) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ProductService) Create(ctx context.Context, p *domain.Product) (*domain.InsertResult, error) {
	p.ID = uuid.New().String()
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &domain.InsertResult{InsertedID: p.ID}, nil
}

// Catalog возвращает отфильтрованные товары плюс фасеты по всей коллекции.
// Фасеты не зависят от активного фильтра: фронт строит по ним полные
// списки чекбоксов brand/category.
func (s *ProductService) Catalog(ctx context.Context, f domain.ProductFilter) (*domain.Catalog, error) {
	products, err := s.repo.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}

	facets := s.cache.Get(ctx)
	if facets == nil {
		facets, err = s.repo.DistinctFacets(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, facets)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return &domain.Catalog{
		Products:   products,
		Brands:     facets.Brands,
		Categories: facets.Categories,
	}, nil
}

func (s *ProductService) BySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error) {
	return s.repo.GetProductsBySeller(ctx, sellerEmail)
}

func (s *ProductService) Update(ctx context.Context, id string, req *domain.UpdateProductRequest) (*domain.UpdateResult, error) {
	res, err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return res, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return res, nil
}
