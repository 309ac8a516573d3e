// Package gateway wraps the card processor used for wallet top-ups.
package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

var cents = decimal.NewFromInt(100)

// Charger charges a tokenized card and returns the processor's reference
// for the charge.
type Charger interface {
	Charge(ctx context.Context, cardToken string, amount decimal.Decimal) (string, error)
}

type stripeGateway struct{}

// NewStripeGateway configures the Stripe client from STRIPE_SECRET_KEY.
func NewStripeGateway() Charger {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &stripeGateway{}
}

func (g *stripeGateway) Charge(ctx context.Context, cardToken string, amount decimal.Decimal) (string, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amount.Mul(cents).IntPart()),
		Currency:    stripe.String(string(stripe.CurrencyBRL)),
		Description: stripe.String("wallet top-up"),
	}
	params.Context = ctx
	if err := params.SetSource(cardToken); err != nil {
		return "", fmt.Errorf("invalid card token: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", fmt.Errorf("card charge failed: %w", err)
	}
	return ch.ID, nil
}
