// Package catalog generates roadmap plan templates from the onboarding
// inputs. Plans are hardcoded and versioned with the application; GetPlan is a
// pure function and callers regenerate the plan on every read.
package catalog

import (
	"fmt"
	"strings"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// Timeline buckets captured during onboarding.
const (
	Timeline1To3Months   = "1-3m"
	Timeline3To6Months   = "3-6m"
	Timeline6To12Months  = "6-12m"
	TimelineOver12Months = "12m+"
)

// Career goals the onboarding wizard offers. Freelance/Startup and the salary
// negotiation goal get their own phase catalogs; the rest share the base
// catalog with goal-specific objective wording.
const (
	GoalSwitchingToTech   = "Switching to Tech"
	GoalFindingNewJob     = "Finding a New Job"
	GoalChangingIndustry  = "Changing Industries"
	GoalLeadership        = "Leadership & Management"
	GoalFreelanceStartup  = "Freelance/Startup"
	GoalSalaryNegotiation = "Salary Negotiation & Promotion"
)

// Timelines lists every supported bucket in display order.
func Timelines() []string {
	return []string{Timeline1To3Months, Timeline3To6Months, Timeline6To12Months, TimelineOver12Months}
}

// Goals lists every supported career goal in display order.
func Goals() []string {
	return []string{
		GoalSwitchingToTech,
		GoalFindingNewJob,
		GoalChangingIndustry,
		GoalLeadership,
		GoalFreelanceStartup,
		GoalSalaryNegotiation,
	}
}

// GetPlan builds the roadmap plan for the given inputs. There is no error
// path: an unknown timeline falls back to the 3-6m plan, an unknown goal
// leaves the objectives untouched, and a targetRole that does not match the
// plan name template is a no-op.
func GetPlan(timeline, goal, targetRole string) types.RoadmapPlan {
	var plan types.RoadmapPlan

	switch goal {
	case GoalFreelanceStartup:
		plan = freelancePlan(timeline)
	case GoalSalaryNegotiation:
		plan = negotiationPlan(timeline)
	default:
		switch timeline {
		case Timeline1To3Months:
			plan = sprintPlan()
		case Timeline6To12Months:
			plan = sustainablePlan()
		case TimelineOver12Months:
			plan = strategicPlan()
		default:
			// 3-6m is the documented fallback for unmapped timelines.
			plan = balancedPlan()
		}
		applyGoalWording(&plan, goal)
	}

	if targetRole != "" {
		plan.Name = strings.Replace(plan.Name, "Career", targetRole, 1)
	}

	return plan
}

// isQuickTimeline splits the four buckets into the two pacing groups used by
// the specialized catalogs.
func isQuickTimeline(timeline string) bool {
	return timeline == Timeline1To3Months || timeline == Timeline3To6Months
}

// goalWording maps each shared-catalog goal to its objective text
// substitutions. This is plain substring replacement applied once to fresh
// template text; it only fires where the base wording actually appears.
var goalWording = map[string][]struct{ from, to string }{
	GoalSwitchingToTech: {
		{"transferable skills", "technical skills and projects"},
		{"your industry", "the tech industry"},
		{"professional network", "network in tech communities"},
	},
	GoalFindingNewJob: {
		{"transferable skills", "resume-ready achievements"},
		{"your industry", "your target companies"},
	},
	GoalChangingIndustry: {
		{"transferable skills", "cross-industry strengths"},
		{"your industry", "your target industry"},
	},
	GoalLeadership: {
		{"transferable skills", "leadership and people skills"},
		{"professional network", "network of mentors and sponsors"},
	},
}

func applyGoalWording(plan *types.RoadmapPlan, goal string) {
	subs, ok := goalWording[goal]
	if !ok {
		return
	}
	for pi := range plan.Phases {
		objectives := plan.Phases[pi].Objectives
		for oi, objective := range objectives {
			for _, sub := range subs {
				objective = strings.ReplaceAll(objective, sub.from, sub.to)
			}
			objectives[oi] = objective
		}
	}
}

// taskID builds the stable task identifier, namespaced by timeline and phase.
func taskID(timeline string, phase, task int) string {
	return fmt.Sprintf("%s-p%d-t%d", timeline, phase, task)
}

// tasks converts plain text items into Task values with sequential IDs.
func tasks(timeline string, phase int, texts ...string) []types.Task {
	out := make([]types.Task, 0, len(texts))
	for i, text := range texts {
		out = append(out, types.Task{ID: taskID(timeline, phase, i+1), Text: text})
	}
	return out
}
