package payment

import (
	"context"
	"os"

	stripe "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
)

// stripeLineItemLister is the production LineItemLister, backed by the Stripe
// Checkout session API.
type stripeLineItemLister struct{}

func NewStripeLineItemLister() LineItemLister {
	return &stripeLineItemLister{}
}

func (l *stripeLineItemLister) ListLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Context = ctx

	var items []*stripe.LineItem
	iter := session.ListLineItems(params)
	for iter.Next() {
		items = append(items, iter.LineItem())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
