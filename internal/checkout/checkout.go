// Package checkout hands payment off to a hosted third-party page. It is
// optional: when disabled, orders are created without a payment session and
// settled offline.
package checkout

import "context"

// LineItem is one cart line as the payment provider needs it: the display
// name and the unit price the order was totalled with.
type LineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Provider creates a hosted payment session for the given line items and
// returns the URL the customer should be redirected to.
type Provider interface {
	CreateSession(ctx context.Context, items []LineItem) (string, error)
}
