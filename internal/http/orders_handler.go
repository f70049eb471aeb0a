package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matromatro/casa-pao-backend-frontend/internal/domain"
	"github.com/matromatro/casa-pao-backend-frontend/internal/service"
)

type OrdersHandler struct {
	svc service.OrderService
}

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

type OrderItemDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequestDTO struct {
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Mode            string         `json:"mode"`
	Items           []OrderItemDTO `json:"items"`
}

type OrderLineDTO struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type OrderResponseDTO struct {
	OrderID      int64          `json:"order_id"`
	Total        float64        `json:"total"`
	Status       string         `json:"status"`
	Mode         string         `json:"mode"`
	DeliveryDate string         `json:"delivery_date,omitempty"`
	CheckoutURL  string         `json:"checkout_url,omitempty"`
	Items        []OrderLineDTO `json:"items,omitempty"`
	CreatedAt    string         `json:"created_at"`
}

// POST /orders
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := make([]service.SubmitItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.SubmitItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.svc.Submit(r.Context(), &service.SubmitOrderRequest{
		Customer: domain.CustomerInfo{
			Name:    req.CustomerName,
			Phone:   req.CustomerPhone,
			Address: req.CustomerAddress,
		},
		Mode:  domain.Fulfillment(req.Mode),
		Items: items,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, convertOrder(order))
}

// GET /orders/{order_id}
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be an integer")
		return
	}

	order, getErr := h.svc.Get(r.Context(), orderID)
	if getErr != nil {
		handleServiceError(w, getErr)
		return
	}

	respondJSON(w, http.StatusOK, convertOrder(order))
}

func convertOrder(o *domain.Order) OrderResponseDTO {
	lines := make([]OrderLineDTO, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, OrderLineDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return OrderResponseDTO{
		OrderID:      o.ID,
		Total:        o.Total,
		Status:       o.Status.String(),
		Mode:         o.Mode.String(),
		DeliveryDate: o.DeliveryDate,
		CheckoutURL:  o.CheckoutURL,
		Items:        lines,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}
