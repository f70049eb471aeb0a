package domain

// Fulfillment describes how an order reaches the customer. Each product is
// sold for exactly one fulfillment mode, and an order may only contain
// products matching its own mode.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

func (f Fulfillment) IsValid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

func (f Fulfillment) String() string {
	return string(f)
}

type Product struct {
	ID          int64
	Name        string
	Price       float64
	Fulfillment Fulfillment
	Active      bool
}
