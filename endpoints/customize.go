package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/ascendlabs/coach-roadmap-service/internal/catalog"
	"github.com/ascendlabs/coach-roadmap-service/internal/customizer"
	"github.com/ascendlabs/coach-roadmap-service/internal/entitlement"
	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/types"
	"github.com/ascendlabs/coach-roadmap-service/utils"
)

// customizeRequest carries the user's answers plus an optional new timeline.
// When Timeline is set the plan is regenerated on that timeline before the
// rewrite, so "customize" doubles as the timeline-change flow.
type customizeRequest struct {
	Timeline string                 `json:"timeline,omitempty"`
	Answers  types.CustomizeAnswers `json:"answers"`
}

type customizeResponse struct {
	Kind           types.CustomizeKind `json:"kind"`
	SucceededCount int                 `json:"succeeded_count"`
	FailedPhases   []int               `json:"failed_phases,omitempty"`
	Cause          types.FailureCause  `json:"cause,omitempty"`
	Remaining      int                 `json:"remaining"`
}

// CustomizeHandler runs the metered AI rewrite flow: entitlement check, plan
// regeneration, per-phase rewrite, overlay persistence, usage recording.
func CustomizeHandler(profiles profile.ReadWriter, gate *entitlement.Gate, cust *customizer.Customizer, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		var req customizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
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

		status := gate.Check(r.Context(), userID)
		if !status.Allowed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error":     "customization_limit_reached",
				"remaining": 0,
				"is_pro":    status.IsPro,
			})
			return
		}

		fromTimeline := p.TransitionTimeline
		toTimeline := fromTimeline
		if req.Timeline != "" {
			toTimeline = req.Timeline
		}

		plan := catalog.GetPlan(toTimeline, p.CareerGoal, p.TargetRole)
		result := cust.Customize(r.Context(), customizer.UserContext{
			Name:       p.Name,
			Timeline:   toTimeline,
			Goal:       p.CareerGoal,
			TargetRole: p.TargetRole,
		}, plan, req.Answers)

		if result.Kind != types.CustomizeFailure {
			if _, err := profiles.Update(r.Context(), userID, func(p *types.Profile) {
				if req.Timeline != "" {
					p.TransitionTimeline = req.Timeline
					// New timeline means new task ids; the old overlay no
					// longer matches anything.
					p.CustomizedPhases = nil
				}
				if p.CustomizedPhases == nil {
					p.CustomizedPhases = make(map[int]types.PhaseOverlay)
				}
				for number, overlay := range result.Overlay {
					p.CustomizedPhases[number] = overlay
				}
			}); err != nil {
				http.Error(w, fmt.Sprintf("Failed to save customization: %v", err), http.StatusInternalServerError)
				return
			}
			gate.RecordUsage(r.Context(), userID, fromTimeline, toTimeline)
			utils.SendEvent(r.Context(), redisClient, "roadmap.customized", map[string]interface{}{
				"user_id":   userID,
				"kind":      string(result.Kind),
				"succeeded": result.SucceededCount,
			})
		}

		remaining := gate.Check(r.Context(), userID).Remaining
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(customizeResponse{
			Kind:           result.Kind,
			SucceededCount: result.SucceededCount,
			FailedPhases:   result.FailedPhases,
			Cause:          result.Cause,
			Remaining:      remaining,
		})
	}
}
