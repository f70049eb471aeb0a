package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matromatro/casa-pao-backend-frontend/internal/checkout"
	"github.com/matromatro/casa-pao-backend-frontend/internal/domain"
	"github.com/matromatro/casa-pao-backend-frontend/internal/repository"
)

type SubmitItem struct {
	ProductID int64
	Quantity  int
}

type SubmitOrderRequest struct {
	Customer domain.CustomerInfo
	Mode     domain.Fulfillment
	Items    []SubmitItem
}

type OrderService interface {
	Submit(ctx context.Context, request *SubmitOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type OrderServiceImpl struct {
	repo     repository.RepoInterface
	checkout checkout.Provider
	now      func() time.Time
}

// NewOrderService wires the order flow. provider may be nil, in which case
// orders are created without a payment session.
func NewOrderService(repo repository.RepoInterface, provider checkout.Provider) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:     repo,
		checkout: provider,
		now:      time.Now,
	}
}

// Submit validates the submission, prices it against the current catalog and
// persists it atomically. The total is always computed here from stored
// prices, never taken from the client.
func (s *OrderServiceImpl) Submit(ctx context.Context, request *SubmitOrderRequest) (*domain.Order, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(request.Items))
	seen := make(map[int64]bool, len(request.Items))
	for _, item := range request.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var total float64
	orderItems := make([]domain.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, ErrUnknownProduct
		}
		if !product.Active {
			return nil, ErrInactiveProduct
		}
		if product.Fulfillment != request.Mode {
			return nil, ErrModeMismatch
		}

		total += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		})
	}

	order := &domain.Order{
		Customer: request.Customer,
		Items:    orderItems,
		Total:    total,
		Status:   domain.OrderStatusCreated,
		Mode:     request.Mode,
	}

	if request.Mode == domain.FulfillmentDelivery {
		order.DeliveryDate = nextFriday(s.now()).Format(deliveryDateLayout)
	}

	if s.checkout != nil {
		lineItems := make([]checkout.LineItem, 0, len(orderItems))
		for _, item := range orderItems {
			lineItems = append(lineItems, checkout.LineItem{
				Name:      item.ProductName,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
		url, err := s.checkout.CreateSession(ctx, lineItems)
		if err != nil {
			return nil, fmt.Errorf("checkout session: %w", err)
		}
		order.CheckoutURL = url
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (s *OrderServiceImpl) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderServiceImpl) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

func validateRequest(request *SubmitOrderRequest) error {
	if strings.TrimSpace(request.Customer.Name) == "" ||
		strings.TrimSpace(request.Customer.Phone) == "" ||
		strings.TrimSpace(request.Customer.Address) == "" {
		return ErrMissingCustomerField
	}
	if !request.Mode.IsValid() {
		return ErrInvalidMode
	}
	if len(request.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range request.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
