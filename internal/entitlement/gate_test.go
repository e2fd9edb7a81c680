package entitlement

import (
	"context"
	"errors"
	"testing"

	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/subscription"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

func seedProfile(t *testing.T, store profile.ReadWriter, p *types.Profile) {
	t.Helper()
	if err := store.Save(context.Background(), p); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func TestRecordUsage_Monotonicity(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemory()
	seedProfile(t, store, &types.Profile{
		UserID:             "u1",
		SubscriptionStatus: types.SubscriptionFree,
		CustomizationLimit: 5,
	})
	gate := NewGate(store, &subscription.Static{}, DefaultFreeLimit)

	for i := 0; i < 5; i++ {
		if !gate.RecordUsage(ctx, "u1", "1-3m", "3-6m") {
			t.Fatalf("usage %d should be allowed", i+1)
		}
	}

	p, _ := store.Get(ctx, "u1")
	if p.CustomizationsUsed != 5 {
		t.Fatalf("expected used=5, got %d", p.CustomizationsUsed)
	}
	if len(p.CustomizationLogs) != 5 {
		t.Errorf("expected 5 audit entries, got %d", len(p.CustomizationLogs))
	}

	if gate.RecordUsage(ctx, "u1", "1-3m", "3-6m") {
		t.Fatal("sixth usage should be denied")
	}
	p, _ = store.Get(ctx, "u1")
	if p.CustomizationsUsed != 5 {
		t.Errorf("denied usage must not increment counter, got %d", p.CustomizationsUsed)
	}
	if len(p.CustomizationLogs) != 5 {
		t.Errorf("denied usage must not append audit entries, got %d", len(p.CustomizationLogs))
	}
}

func TestRecordUsage_ProBypass(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemory()
	seedProfile(t, store, &types.Profile{
		UserID:             "u1",
		SubscriptionStatus: types.SubscriptionFree,
		CustomizationsUsed: 7,
		CustomizationLimit: 3,
	})
	source := &subscription.Static{GrantsByUser: map[string]subscription.Grants{
		"u1": {Active: []string{subscription.GrantPro}},
	}}
	gate := NewGate(store, source, DefaultFreeLimit)

	status := gate.Check(ctx, "u1")
	if !status.IsPro || !status.Allowed {
		t.Fatalf("expected pro status, got %+v", status)
	}

	for i := 0; i < 10; i++ {
		if !gate.RecordUsage(ctx, "u1", "3-6m", "6-12m") {
			t.Fatal("pro usage should always be allowed")
		}
	}
	p, _ := store.Get(ctx, "u1")
	if p.CustomizationsUsed != 7 {
		t.Errorf("pro usage must not mutate the counter, got %d", p.CustomizationsUsed)
	}
}

func TestCheck_FallsOpenToCachedStatus(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemory()
	seedProfile(t, store, &types.Profile{
		UserID:             "cached-pro",
		SubscriptionStatus: types.SubscriptionPro,
	})
	seedProfile(t, store, &types.Profile{
		UserID:             "cached-free",
		SubscriptionStatus: types.SubscriptionFree,
		CustomizationsUsed: 1,
		CustomizationLimit: 3,
	})
	gate := NewGate(store, &subscription.Static{Err: errors.New("service unreachable")}, DefaultFreeLimit)

	status := gate.Check(ctx, "cached-pro")
	if !status.IsPro || !status.Allowed {
		t.Errorf("expected cached pro to pass, got %+v", status)
	}

	status = gate.Check(ctx, "cached-free")
	if status.IsPro {
		t.Errorf("cached free user must not report pro: %+v", status)
	}
	if !status.Allowed || status.Remaining != 2 {
		t.Errorf("expected degraded free check with remaining=2, got %+v", status)
	}
}

func TestCheck_NewUserGetsDefaultAllowance(t *testing.T) {
	gate := NewGate(profile.NewMemory(), &subscription.Static{}, 4)

	status := gate.Check(context.Background(), "nobody")
	if !status.Allowed || status.Remaining != 4 || status.IsPro {
		t.Errorf("expected fresh free allowance of 4, got %+v", status)
	}
}

func TestSyncFromPurchase(t *testing.T) {
	ctx := context.Background()
	store := profile.NewMemory()
	seedProfile(t, store, &types.Profile{
		UserID:             "u1",
		SubscriptionStatus: types.SubscriptionFree,
		CustomizationsUsed: 2,
		CustomizationLimit: 3,
	})
	gate := NewGate(store, &subscription.Static{}, DefaultFreeLimit)

	p, err := gate.SyncFromPurchase(ctx, "u1", subscription.Grants{Active: []string{subscription.GrantPro}})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if p.SubscriptionStatus != types.SubscriptionPro {
		t.Errorf("expected pro status, got %q", p.SubscriptionStatus)
	}
	if p.CustomizationLimit != types.UnlimitedCustomizations {
		t.Errorf("expected unbounded limit, got %d", p.CustomizationLimit)
	}
	if p.CustomizationsUsed != 2 {
		t.Errorf("historical usage must be retained, got %d", p.CustomizationsUsed)
	}

	p, err = gate.SyncFromPurchase(ctx, "u1", subscription.Grants{})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if p.SubscriptionStatus != types.SubscriptionFree {
		t.Errorf("expected free status after losing the grant, got %q", p.SubscriptionStatus)
	}
	if p.CustomizationsUsed != 2 {
		t.Errorf("usage count must never decrease, got %d", p.CustomizationsUsed)
	}
}
