package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matromatro/casa-pao-backend-frontend/internal/domain"
	db "github.com/matromatro/casa-pao-backend-frontend/internal/repository"
)

func setupTestDB(t *testing.T) *db.Repository {
	// Use in-memory database for tests
	repo, err := db.NewRepository(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return repo
}

func seedCatalog(t *testing.T, repo *db.Repository) {
	t.Helper()
	inserted, err := repo.SeedProducts(context.Background(), db.DefaultCatalog)
	require.NoError(t, err)
	require.Equal(t, len(db.DefaultCatalog), inserted)
}

func TestSeedProducts_InsertsDefaultsOnce(t *testing.T) {
	repo := setupTestDB(t)

	inserted, err := repo.SeedProducts(context.Background(), db.DefaultCatalog)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Second seed is a no-op on a populated catalog.
	inserted, err = repo.SeedProducts(context.Background(), db.DefaultCatalog)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	products, err := repo.ListActiveProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListActiveProducts_SkipsInactive(t *testing.T) {
	repo := setupTestDB(t)

	catalog := []domain.Product{
		{ID: 1, Name: "Burger", Price: 25.00, Fulfillment: domain.FulfillmentPickup, Active: true},
		{ID: 2, Name: "Old item", Price: 9.00, Fulfillment: domain.FulfillmentPickup, Active: false},
	}
	_, err := repo.SeedProducts(context.Background(), catalog)
	require.NoError(t, err)

	products, err := repo.ListActiveProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Burger", products[0].Name)
	assert.Equal(t, 25.00, products[0].Price)
}

func TestGetProductsByIDs(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	products, err := repo.GetProductsByIDs(context.Background(), []int64{1, 999})
	require.NoError(t, err)

	assert.Len(t, products, 1)
	require.Contains(t, products, int64(1))
	assert.Equal(t, 5.00, products[1].Price)
	assert.NotContains(t, products, int64(999))
}

func TestGetProductsByIDs_EmptyInput(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	products, err := repo.GetProductsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	order := &domain.Order{
		Customer: domain.CustomerInfo{Name: "Ana", Phone: "555-1234", Address: "Rua A 1"},
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Pacote", Quantity: 2, UnitPrice: 5.00},
		},
		Total:  10.00,
		Status: domain.OrderStatusCreated,
		Mode:   domain.FulfillmentPickup,
	}

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	stored, err := repo.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Equal(t, "Ana", stored.Customer.Name)
	assert.Equal(t, 10.00, stored.Total)
	assert.Equal(t, domain.OrderStatusCreated, stored.Status)
	assert.Equal(t, domain.FulfillmentPickup, stored.Mode)
	assert.Empty(t, stored.DeliveryDate)
	assert.Empty(t, stored.CheckoutURL)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, int64(1), stored.Items[0].ProductID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 5.00, stored.Items[0].UnitPrice)
}

func TestCreateOrder_DeliveryFields(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	order := &domain.Order{
		Customer:     domain.CustomerInfo{Name: "Bea", Phone: "555-9", Address: "Rua B 2"},
		Items:        []domain.OrderItem{{ProductID: 2, ProductName: "Entrega", Quantity: 1, UnitPrice: 14.00}},
		Total:        14.00,
		Status:       domain.OrderStatusCreated,
		Mode:         domain.FulfillmentDelivery,
		DeliveryDate: "2026-09-04",
	}

	require.NoError(t, repo.CreateOrder(context.Background(), order))

	stored, err := repo.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-04", stored.DeliveryDate)
	assert.Equal(t, domain.FulfillmentDelivery, stored.Mode)
}

func TestCreateOrder_AtomicOnBadItem(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	// The second item violates the foreign key, so the whole order must roll
	// back, including the already-inserted order row and first item.
	order := &domain.Order{
		Customer: domain.CustomerInfo{Name: "Cai", Phone: "555-2", Address: "Rua C 3"},
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Pacote", Quantity: 1, UnitPrice: 5.00},
			{ProductID: 999, ProductName: "ghost", Quantity: 1, UnitPrice: 1.00},
		},
		Total:  6.00,
		Status: domain.OrderStatusCreated,
		Mode:   domain.FulfillmentPickup,
	}

	err := repo.CreateOrder(context.Background(), order)
	require.Error(t, err)
	assert.Zero(t, order.ID)

	_, err = repo.GetOrder(context.Background(), 1)
	assert.ErrorIs(t, err, db.ErrOrderNotFound)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	_, err := repo.GetOrder(context.Background(), 42)
	assert.ErrorIs(t, err, db.ErrOrderNotFound)
}

func TestCreateOrder_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	seedCatalog(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order := &domain.Order{
		Customer: domain.CustomerInfo{Name: "Dan", Phone: "555-3", Address: "Rua D 4"},
		Items:    []domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 5.00}},
		Total:    5.00,
		Status:   domain.OrderStatusCreated,
		Mode:     domain.FulfillmentPickup,
	}

	err := repo.CreateOrder(ctx, order)
	assert.Error(t, err)
}
