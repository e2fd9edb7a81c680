package subscription

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v79"
	checkout "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	sub "github.com/stripe/stripe-go/v79/subscription"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// StripeSource resolves entitlements from Stripe subscriptions: any active
// subscription on the user's Stripe customer counts as the "pro" grant.
type StripeSource struct {
	priceID     string
	frontendURL string
}

// NewStripeSource wires the Stripe API key and returns a Source backed by
// Stripe Checkout subscriptions.
func NewStripeSource(apiKey, priceID, frontendURL string) *StripeSource {
	stripe.Key = apiKey
	return &StripeSource{
		priceID:     priceID,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// Entitlements lists the customer's active subscriptions. A user with no
// Stripe customer has simply never purchased; that is empty grants, not an
// error.
func (s *StripeSource) Entitlements(ctx context.Context, p *types.Profile) (Grants, error) {
	if p.StripeCustomerID == "" {
		return Grants{}, nil
	}

	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(p.StripeCustomerID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	params.Context = ctx

	iter := sub.List(params)
	for iter.Next() {
		if iter.Subscription() != nil {
			return Grants{Active: []string{GrantPro}}, nil
		}
	}
	if err := iter.Err(); err != nil {
		return Grants{}, err
	}
	return Grants{}, nil
}

// EnsureCustomer returns the user's Stripe customer ID, creating the customer
// on first use.
func (s *StripeSource) EnsureCustomer(ctx context.Context, p *types.Profile) (string, error) {
	if p.StripeCustomerID != "" {
		return p.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Metadata: map[string]string{"user_id": p.UserID},
	}
	params.Context = ctx

	cust, err := customer.New(params)
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

// CheckoutURL creates a subscription checkout session and returns its URL.
func (s *StripeSource) CheckoutURL(ctx context.Context, customerID string) (string, error) {
	if s.priceID == "" || s.frontendURL == "" {
		return "", errors.New("billing not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.frontendURL + "/billing/success"),
		CancelURL:  stripe.String(s.frontendURL + "/billing/cancel"),
	}
	params.Context = ctx

	sess, err := checkout.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
