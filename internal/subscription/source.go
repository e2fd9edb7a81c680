// Package subscription resolves a user's active entitlement grants. The only
// grant this service consumes is "pro"; anything else is passed through for
// future tiers.
package subscription

import (
	"context"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// GrantPro is the entitlement that unlocks unlimited plan customization.
const GrantPro = "pro"

// Grants is the set of active entitlement grants for a user.
type Grants struct {
	Active []string `json:"active"`
}

// Has reports whether a grant is active.
func (g Grants) Has(name string) bool {
	for _, grant := range g.Active {
		if grant == name {
			return true
		}
	}
	return false
}

// Source answers entitlement queries against the external subscription
// provider. Implementations must treat a user with no purchase history as
// having no grants, not as an error.
type Source interface {
	Entitlements(ctx context.Context, p *types.Profile) (Grants, error)
}

// Static is a fixed-grant Source for local development and tests.
type Static struct {
	GrantsByUser map[string]Grants
	Err          error
}

func (s *Static) Entitlements(ctx context.Context, p *types.Profile) (Grants, error) {
	if s.Err != nil {
		return Grants{}, s.Err
	}
	return s.GrantsByUser[p.UserID], nil
}
