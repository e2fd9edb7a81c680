// Package roadmap assembles the user-facing roadmap view: the plan template
// regenerated from the profile's inputs, with the customization overlay and
// completion flags applied, plus the derived progress figures.
package roadmap

import (
	"time"

	"github.com/ascendlabs/coach-roadmap-service/internal/catalog"
	"github.com/ascendlabs/coach-roadmap-service/internal/progress"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// PhaseProgress is the derived status of one phase.
type PhaseProgress struct {
	Number            int             `json:"number"`
	Status            progress.Status `json:"status"`
	CompletionPercent int             `json:"completion_percent"`
	Week              int             `json:"week"`
}

// View is the full roadmap payload returned to clients.
type View struct {
	Plan           types.RoadmapPlan `json:"plan"`
	CurrentDay     int               `json:"current_day"`
	CurrentPhase   int               `json:"current_phase"` // 1-based phase number
	WeekInPhase    int               `json:"week_in_phase"`
	OverallPercent int               `json:"overall_percent"`
	Phases         []PhaseProgress   `json:"phases"`
}

// BuildPlan regenerates the plan template for a profile and applies the
// customization overlay and the completion map on top.
func BuildPlan(p *types.Profile) types.RoadmapPlan {
	plan := catalog.GetPlan(p.TransitionTimeline, p.CareerGoal, p.TargetRole)
	applyOverlay(&plan, p.CustomizedPhases)
	applyCompletion(&plan, p.TaskCompletion)
	return plan
}

// BuildView builds the plan and derives the progress figures at the given
// reference time.
func BuildView(p *types.Profile, now time.Time) View {
	plan := BuildPlan(p)

	start := startDate(p)
	day := progress.CurrentDay(now, start)
	currentIndex := progress.CurrentPhaseIndex(day, plan)

	view := View{
		Plan:           plan,
		CurrentDay:     day,
		CurrentPhase:   plan.Phases[currentIndex].Number,
		WeekInPhase:    progress.WeekInPhase(day, plan.Phases[currentIndex], plan),
		OverallPercent: progress.OverallCompletionPercent(plan),
	}
	for i, phase := range plan.Phases {
		view.Phases = append(view.Phases, PhaseProgress{
			Number:            phase.Number,
			Status:            progress.PhaseStatus(i, currentIndex, phase),
			CompletionPercent: progress.PhaseCompletionPercent(phase),
			Week:              progress.WeekInPhase(day, phase, plan),
		})
	}
	return view
}

// startDate parses the profile's start date, falling back to the profile
// creation time when the field is missing or malformed.
func startDate(p *types.Profile) time.Time {
	if p.StartDate != "" {
		if t, err := time.Parse(time.RFC3339, p.StartDate); err == nil {
			return t
		}
	}
	return time.Unix(p.CreatedAt, 0)
}

func applyOverlay(plan *types.RoadmapPlan, overlay map[int]types.PhaseOverlay) {
	if len(overlay) == 0 {
		return
	}
	for pi := range plan.Phases {
		phase := &plan.Phases[pi]
		custom, ok := overlay[phase.Number]
		if !ok {
			continue
		}
		if len(custom.Objectives) > 0 {
			phase.Objectives = append([]string(nil), custom.Objectives...)
		}
		texts := make(map[string]string, len(custom.Tasks))
		for _, task := range custom.Tasks {
			texts[task.ID] = task.Text
		}
		for ti := range phase.Tasks {
			if text, ok := texts[phase.Tasks[ti].ID]; ok && text != "" {
				phase.Tasks[ti].Text = text
			}
		}
	}
}

func applyCompletion(plan *types.RoadmapPlan, completion map[string]bool) {
	if len(completion) == 0 {
		return
	}
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Tasks {
			if done, ok := completion[plan.Phases[pi].Tasks[ti].ID]; ok {
				plan.Phases[pi].Tasks[ti].IsCompleted = done
			}
		}
	}
}
