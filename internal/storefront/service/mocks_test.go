package service

// Ручные моки хранилищ в памяти; сетевых зависимостей в тестах сервиса нет.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	users       []domain.User
	createCalls int
	updateCalls int
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(_ context.Context) ([]domain.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, u *domain.User) error {
	m.createCalls++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users = append(m.users, *u)
	return nil
}

func (m *mockUserRepo) UpdateUserRole(_ context.Context, id, role string) (*domain.UpdateResult, error) {
	m.updateCalls++
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			return &domain.UpdateResult{Matched: 1, Modified: 1}, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (m *mockUserRepo) DeleteUser(_ context.Context, id string) (*domain.DeleteResult, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return &domain.DeleteResult{Deleted: 1}, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

type mockProductRepo struct {
	products    []domain.Product
	facetsCalls int
}

func (m *mockProductRepo) CreateProduct(_ context.Context, p *domain.Product) error {
	m.products = append(m.products, *p)
	return nil
}

// ListProducts повторяет контракт SQL-слоя: title/category — вхождение без
// учёта регистра, brand — точное совпадение.
func (m *mockProductRepo) ListProducts(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if f.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
			continue
		}
		if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) GetProductsBySeller(_ context.Context, sellerEmail string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if p.SellerEmail == sellerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) DistinctFacets(_ context.Context) (*domain.Facets, error) {
	m.facetsCalls++
	seenBrand := map[string]bool{}
	seenCat := map[string]bool{}
	facets := &domain.Facets{}
	for _, p := range m.products {
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			facets.Brands = append(facets.Brands, p.Brand)
		}
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
	}
	return facets, nil
}

func (m *mockProductRepo) UpdateProduct(_ context.Context, id string, req *domain.UpdateProductRequest) (*domain.UpdateResult, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Title = *req.Title
			m.products[i].Brand = *req.Brand
			m.products[i].Category = *req.Category
			m.products[i].Price = *req.Price
			m.products[i].Stock = *req.Stock
			m.products[i].Description = *req.Description
			return &domain.UpdateResult{Matched: 1, Modified: 1}, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

func (m *mockProductRepo) DeleteProduct(_ context.Context, id string) (*domain.DeleteResult, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return &domain.DeleteResult{Deleted: 1}, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

type mockWishlistRepo struct {
	items       []domain.WishlistItem
	createCalls int
}

func (m *mockWishlistRepo) FindWishlistItem(_ context.Context, email, productID string) (*domain.WishlistItem, error) {
	for i := range m.items {
		if m.items[i].Email == email && m.items[i].ProductID == productID {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (m *mockWishlistRepo) CreateWishlistItem(_ context.Context, item *domain.WishlistItem) error {
	m.createCalls++
	m.items = append(m.items, *item)
	return nil
}

func (m *mockWishlistRepo) ListWishlistByEmail(_ context.Context, email string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, item := range m.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockWishlistRepo) DeleteWishlistItem(_ context.Context, id string) (*domain.DeleteResult, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &domain.DeleteResult{Deleted: 1}, nil
		}
	}
	return nil, fmt.Errorf("wishlist item %s: %w", id, domain.ErrNotFound)
}

// noCache — кэш фасетов, выключенный отсутствием redis-клиента.
func noCache() *FacetCache {
	return NewFacetCache(nil, time.Minute, zap.NewNop(), nil)
}
