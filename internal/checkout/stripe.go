package checkout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type StripeProvider struct {
	api        *client.API
	breaker    *gobreaker.CircuitBreaker[string]
	successURL string
	cancelURL  string
	currency   string
}

// NewStripeProvider builds a provider for Stripe hosted checkout. The circuit
// breaker opens after repeated Stripe failures so a provider outage fails
// submissions fast instead of stacking up 30s timeouts.
func NewStripeProvider(secret, successURL, cancelURL, currency string) *StripeProvider {
	api := &client.API{}
	api.Init(secret, nil)

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "stripe-checkout",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &StripeProvider{
		api:        api,
		breaker:    breaker,
		successURL: successURL,
		cancelURL:  cancelURL,
		currency:   currency,
	}
}

func (p *StripeProvider) CreateSession(ctx context.Context, items []LineItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(p.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(toUnitAmount(it.UnitPrice)),
			},
			Quantity: stripe.Int64(int64(it.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	params.Context = ctx

	url, err := p.breaker.Execute(func() (string, error) {
		sess, err := p.api.CheckoutSessions.New(params)
		if err != nil {
			return "", err
		}
		return sess.URL, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment session: %w", err)
	}

	return url, nil
}

// toUnitAmount converts a price to the provider's minor currency unit.
func toUnitAmount(price float64) int64 {
	return int64(math.Round(price * 100))
}
