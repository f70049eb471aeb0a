package service

import (
	"context"

	"github.com/matromatro/casa-pao-backend-frontend/internal/checkout"
	"github.com/matromatro/casa-pao-backend-frontend/internal/domain"
	"github.com/matromatro/casa-pao-backend-frontend/internal/repository"
)

// MockRepository implements repository.RepoInterface for testing
type MockRepository struct {
	Products     map[int64]*domain.Product
	ProductsErr  error
	CreateErr    error
	CreatedOrder *domain.Order // Captures the order passed to CreateOrder
	StoredOrder  *domain.Order
	GetErr       error
	nextID       int64
}

var _ repository.RepoInterface = (*MockRepository)(nil)

func (m *MockRepository) ListActiveProducts(_ context.Context) ([]*domain.Product, error) {
	if m.ProductsErr != nil {
		return nil, m.ProductsErr
	}
	var out []*domain.Product
	for _, p := range m.Products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockRepository) GetProductsByIDs(_ context.Context, ids []int64) (map[int64]*domain.Product, error) {
	if m.ProductsErr != nil {
		return nil, m.ProductsErr
	}
	found := make(map[int64]*domain.Product)
	for _, id := range ids {
		if p, ok := m.Products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (m *MockRepository) SeedProducts(_ context.Context, _ []domain.Product) (int, error) {
	return 0, nil
}

func (m *MockRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	order.ID = m.nextID
	m.CreatedOrder = order
	return nil
}

func (m *MockRepository) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.StoredOrder == nil || m.StoredOrder.ID != id {
		return nil, repository.ErrOrderNotFound
	}
	return m.StoredOrder, nil
}

func (m *MockRepository) Close() error {
	return nil
}

func (m *MockRepository) RunMigrations() error {
	return nil
}

// MockCheckout implements checkout.Provider for testing
type MockCheckout struct {
	URL       string
	Err       error
	GotItems  []checkout.LineItem
	CallCount int
}

func (m *MockCheckout) CreateSession(_ context.Context, items []checkout.LineItem) (string, error) {
	m.CallCount++
	m.GotItems = items
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
