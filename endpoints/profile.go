package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ascendlabs/coach-roadmap-service/internal/catalog"
	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// onboardingRequest is the client payload that creates or updates a profile.
type onboardingRequest struct {
	Name               string `json:"name"`
	TransitionTimeline string `json:"transition_timeline"`
	CareerGoal         string `json:"career_goal"`
	TargetRole         string `json:"target_role"`
	StartDate          string `json:"start_date"`
}

// ProfileHandler reads and writes the authenticated user's profile.
func ProfileHandler(profiles profile.ReadWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			p, err := profiles.Get(r.Context(), userID)
			if errors.Is(err, profile.ErrNotFound) {
				http.Error(w, "Profile not found", http.StatusNotFound)
				return
			}
			if err != nil {
				http.Error(w, fmt.Sprintf("Failed to load profile: %v", err), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(p)

		case http.MethodPost:
			var req onboardingRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			if req.TransitionTimeline == "" {
				http.Error(w, "transition_timeline is required", http.StatusBadRequest)
				return
			}
			if req.StartDate != "" {
				if _, err := time.Parse(time.RFC3339, req.StartDate); err != nil {
					http.Error(w, "start_date must be RFC 3339", http.StatusBadRequest)
					return
				}
			}

			saved, err := upsertProfile(r, profiles, userID, req)
			if err != nil {
				http.Error(w, fmt.Sprintf("Failed to save profile: %v", err), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(saved)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// upsertProfile applies the onboarding inputs, creating the profile when it
// does not exist yet. Changing the timeline or goal invalidates nothing: the
// plan is regenerated on every read, and the completion map keys are
// timeline-scoped so stale entries simply stop matching.
func upsertProfile(r *http.Request, profiles profile.ReadWriter, userID string, req onboardingRequest) (*types.Profile, error) {
	now := time.Now()
	apply := func(p *types.Profile) {
		if req.Name != "" {
			p.Name = req.Name
		}
		p.TransitionTimeline = req.TransitionTimeline
		p.CareerGoal = req.CareerGoal
		p.TargetRole = req.TargetRole
		if req.StartDate != "" {
			p.StartDate = req.StartDate
		} else if p.StartDate == "" {
			p.StartDate = now.Format(time.RFC3339)
		}
	}

	updated, err := profiles.Update(r.Context(), userID, apply)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, profile.ErrNotFound) {
		return nil, err
	}

	fresh := &types.Profile{
		UserID:    userID,
		CreatedAt: now.Unix(),
	}
	apply(fresh)
	if err := profiles.Save(r.Context(), fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// OptionsHandler exposes the valid onboarding choices so the client does not
// hardcode them.
func OptionsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]string{
		"timelines": catalog.Timelines(),
		"goals":     catalog.Goals(),
	})
}
