package domain

import "time"

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCancelled
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

type CustomerInfo struct {
	Name    string `json:"customer_name"`
	Phone   string `json:"customer_phone"`
	Address string `json:"customer_address"`
}

type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type Order struct {
	ID       int64
	Customer CustomerInfo
	Items    []OrderItem
	Total    float64
	Status   OrderStatus
	Mode     Fulfillment

	// DeliveryDate is an ISO date (YYYY-MM-DD), empty for pickup orders.
	DeliveryDate string

	// CheckoutURL is set only when a hosted payment session was created.
	CheckoutURL string

	CreatedAt time.Time
}
