// Package entitlement decides whether a user may request an AI-personalized
// rewrite of their plan. Free users are metered against a limit; the "pro"
// grant bypasses metering entirely. Collaborator failures never surface as
// errors: the gate degrades to the last-persisted subscription status.
package entitlement

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/subscription"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// DefaultFreeLimit is the number of customizations a free-tier user gets.
const DefaultFreeLimit = 3

type Gate struct {
	profiles  profile.ReadWriter
	source    subscription.Source
	freeLimit int
}

func NewGate(profiles profile.ReadWriter, source subscription.Source, freeLimit int) *Gate {
	if freeLimit <= 0 {
		freeLimit = DefaultFreeLimit
	}
	return &Gate{profiles: profiles, source: source, freeLimit: freeLimit}
}

// Check reports whether the user may customize right now. The subscription
// source is re-queried on every check rather than cached; if it is
// unreachable the gate falls open to the profile's persisted status instead
// of blocking all usage.
func (g *Gate) Check(ctx context.Context, userID string) types.EntitlementStatus {
	p, err := g.profiles.Get(ctx, userID)
	if err != nil {
		if err != profile.ErrNotFound {
			log.Printf("entitlement: profile load failed for %s: %v", userID, err)
		}
		// No persisted state yet: a fresh free-tier allowance.
		p = &types.Profile{UserID: userID, SubscriptionStatus: types.SubscriptionFree}
	}

	grants, err := g.source.Entitlements(ctx, p)
	if err != nil {
		log.Printf("entitlement: subscription source unreachable for %s, using cached status: %v", userID, err)
		if p.SubscriptionStatus == types.SubscriptionPro {
			return types.EntitlementStatus{Allowed: true, Remaining: types.UnlimitedCustomizations, IsPro: true}
		}
	} else if grants.Has(subscription.GrantPro) {
		return types.EntitlementStatus{Allowed: true, Remaining: types.UnlimitedCustomizations, IsPro: true}
	}

	limit := p.CustomizationLimit
	if limit <= 0 {
		limit = g.freeLimit
	}
	remaining := limit - p.CustomizationsUsed
	if remaining < 0 {
		remaining = 0
	}
	return types.EntitlementStatus{Allowed: remaining > 0, Remaining: remaining, IsPro: false}
}

// RecordUsage consumes one customization from the free allowance and appends
// an audit log entry. Pro users pass through without mutation. A false return
// is the sole denial signal; it is an expected outcome, not an error.
func (g *Gate) RecordUsage(ctx context.Context, userID, fromTimeline, toTimeline string) bool {
	status := g.Check(ctx, userID)
	if status.IsPro {
		return true
	}
	if status.Remaining <= 0 {
		return false
	}

	_, err := g.profiles.Update(ctx, userID, func(p *types.Profile) {
		if p.CustomizationLimit <= 0 {
			p.CustomizationLimit = g.freeLimit
		}
		p.CustomizationLogs = append(p.CustomizationLogs, types.CustomizationLog{
			ID:           uuid.New().String(),
			Timestamp:    time.Now().Unix(),
			FromTimeline: fromTimeline,
			ToTimeline:   toTimeline,
			UserID:       userID,
		})
		p.CustomizationsUsed++
	})
	if err != nil {
		log.Printf("entitlement: usage record failed for %s: %v", userID, err)
		return false
	}
	return true
}

// SyncFromPurchase updates the persisted subscription status after a
// purchase, restore or login event. The first free-to-pro transition raises
// the limit to the unbounded sentinel; the historical usage count is kept.
func (g *Gate) SyncFromPurchase(ctx context.Context, userID string, grants subscription.Grants) (*types.Profile, error) {
	return g.profiles.Update(ctx, userID, func(p *types.Profile) {
		if grants.Has(subscription.GrantPro) {
			p.SubscriptionStatus = types.SubscriptionPro
			if p.CustomizationLimit < types.UnlimitedCustomizations {
				p.CustomizationLimit = types.UnlimitedCustomizations
			}
		} else {
			p.SubscriptionStatus = types.SubscriptionFree
		}
	})
}
