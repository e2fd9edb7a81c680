package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/ascendlabs/coach-roadmap-service/internal/entitlement"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
)

// EntitlementHandler reports whether the user may run another customization
// and how many remain on the free tier.
func EntitlementHandler(gate *entitlement.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		status := gate.Check(r.Context(), userID)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	}
}
