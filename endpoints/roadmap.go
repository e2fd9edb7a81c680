package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/roadmap"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// RoadmapHandler returns the authenticated user's roadmap: the regenerated
// plan with customizations and completion flags applied, plus the derived
// progress figures.
func RoadmapHandler(profiles profile.ReadWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
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

		view := roadmap.BuildView(p, time.Now())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// ToggleTaskHandler flips the completion flag for one task. The flag lives in
// the profile's completion map keyed by task id, so it survives plan
// regeneration.
func ToggleTaskHandler(profiles profile.ReadWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}

		taskID := mux.Vars(r)["taskID"]
		if taskID == "" {
			http.Error(w, "Task ID required", http.StatusBadRequest)
			return
		}

		updated, err := profiles.Update(r.Context(), userID, func(p *types.Profile) {
			if p.TaskCompletion == nil {
				p.TaskCompletion = make(map[string]bool)
			}
			p.TaskCompletion[taskID] = !p.TaskCompletion[taskID]
		})
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to update task: %v", err), http.StatusInternalServerError)
			return
		}

		view := roadmap.BuildView(updated, time.Now())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"task_id":         taskID,
			"is_completed":    updated.TaskCompletion[taskID],
			"overall_percent": view.OverallPercent,
		})
	}
}
