package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
)

// ListProfiles prints every stored profile ID with a one-line summary. Used
// from the CLI for operational inspection.
func ListProfiles() error {
	ctx := context.Background()
	store := profile.NewStore(RedisClient)

	ids, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(ids) == 0 {
		log.Println("No profiles found")
		return nil
	}

	fmt.Printf("Found %d profile(s):\n", len(ids))
	for _, id := range ids {
		p, err := store.Get(ctx, id)
		if err != nil {
			fmt.Printf("  %s  <unreadable: %v>\n", id, err)
			continue
		}
		fmt.Printf("  %s  timeline=%s goal=%q status=%s customizations=%d\n",
			p.UserID, p.TransitionTimeline, p.CareerGoal, p.SubscriptionStatus, p.CustomizationsUsed)
	}
	return nil
}

// ShowProfile prints one profile document as indented JSON.
func ShowProfile(userID string) error {
	ctx := context.Background()
	store := profile.NewStore(RedisClient)

	p, err := store.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", userID, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
