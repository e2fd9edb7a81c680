package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/ascendlabs/coach-roadmap-service/internal/entitlement"
	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/subscription"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/types"
	"github.com/ascendlabs/coach-roadmap-service/utils"
)

// BillingProvider is the payment-processor surface the billing endpoints
// need. *subscription.StripeSource satisfies it.
type BillingProvider interface {
	EnsureCustomer(ctx context.Context, p *types.Profile) (string, error)
	CheckoutURL(ctx context.Context, customerID string) (string, error)
	Entitlements(ctx context.Context, p *types.Profile) (subscription.Grants, error)
}

// CheckoutHandler creates a checkout session for the pro subscription and
// returns its URL for the client to open.
func CheckoutHandler(profiles profile.ReadWriter, billing BillingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		if billing == nil {
			http.Error(w, "Billing is not configured", http.StatusNotImplemented)
			return
		}

		p, err := profiles.Get(r.Context(), userID)
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "Profile not found, complete onboarding first", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to load profile: %v", err), http.StatusInternalServerError)
			return
		}

		customerID, err := billing.EnsureCustomer(r.Context(), p)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to create billing customer: %v", err), http.StatusBadGateway)
			return
		}
		if customerID != p.StripeCustomerID {
			if _, err := profiles.Update(r.Context(), userID, func(p *types.Profile) {
				p.StripeCustomerID = customerID
			}); err != nil {
				http.Error(w, fmt.Sprintf("Failed to save billing customer: %v", err), http.StatusInternalServerError)
				return
			}
		}

		url, err := billing.CheckoutURL(r.Context(), customerID)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to create checkout session: %v", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"checkout_url": url})
	}
}

// RestoreHandler re-queries the payment processor and syncs the cached
// subscription status. The client calls it after a checkout completes and
// from its "restore purchases" button.
func RestoreHandler(profiles profile.ReadWriter, billing BillingProvider, gate *entitlement.Gate, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		if billing == nil {
			http.Error(w, "Billing is not configured", http.StatusNotImplemented)
			return
		}

		p, err := profiles.Get(r.Context(), userID)
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "Profile not found, complete onboarding first", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to load profile: %v", err), http.StatusInternalServerError)
			return
		}

		grants, err := billing.Entitlements(r.Context(), p)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to query subscription: %v", err), http.StatusBadGateway)
			return
		}

		updated, err := gate.SyncFromPurchase(r.Context(), userID, grants)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to sync subscription: %v", err), http.StatusInternalServerError)
			return
		}

		if updated.SubscriptionStatus != p.SubscriptionStatus {
			utils.SendEvent(r.Context(), redisClient, "subscription.changed", map[string]interface{}{
				"user_id": userID,
				"from":    string(p.SubscriptionStatus),
				"to":      string(updated.SubscriptionStatus),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gate.Check(r.Context(), userID))
	}
}
