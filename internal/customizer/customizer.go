// Package customizer orchestrates the per-phase AI rewrite of a roadmap
// plan. Each phase is customized independently and failures are tolerated:
// one bad phase never aborts the batch, and the caller receives the partial
// overlay together with a success count.
package customizer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ascendlabs/coach-roadmap-service/internal/generation"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

// Generator is the slice of the generation client the customizer needs.
type Generator interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// UserContext carries the profile fields the prompts are built from.
type UserContext struct {
	Name       string
	Timeline   string
	Goal       string
	TargetRole string
}

type Customizer struct {
	gen Generator
}

func New(gen Generator) *Customizer {
	return &Customizer{gen: gen}
}

const systemPrompt = `You are a career coach personalizing one phase of a roadmap.
Respond with a single JSON object and nothing else:
{"objectives": ["..."], "tasks": ["..."]}
Keep exactly the same number of tasks as the input phase, in the same order.
Rewrite the wording to fit the user's situation; do not change the intent of any task.`

// Customize runs the phase-by-phase rewrite. Calls are issued sequentially;
// the context is checked between phases so a server-side timeout stops
// issuing new calls while keeping the results already collected.
func (c *Customizer) Customize(ctx context.Context, user UserContext, plan types.RoadmapPlan, answers types.CustomizeAnswers) types.CustomizeResult {
	result := types.CustomizeResult{Overlay: make(map[int]types.PhaseOverlay)}
	offlineFailures := 0

	for _, phase := range plan.Phases {
		if ctx.Err() != nil {
			result.FailedPhases = append(result.FailedPhases, phase.Number)
			continue
		}

		raw, err := c.gen.Chat(ctx, systemPrompt, buildPhasePrompt(user, plan, phase, answers))
		if err != nil {
			log.Printf("customizer: phase %d generation failed: %v", phase.Number, err)
			if generation.IsOffline(err) {
				offlineFailures++
			}
			result.FailedPhases = append(result.FailedPhases, phase.Number)
			continue
		}

		overlay, err := parsePhaseResponse(raw, phase)
		if err != nil {
			log.Printf("customizer: phase %d response rejected: %v", phase.Number, err)
			result.FailedPhases = append(result.FailedPhases, phase.Number)
			continue
		}

		result.Overlay[phase.Number] = overlay
		result.SucceededCount++
	}

	switch {
	case result.SucceededCount == len(plan.Phases):
		result.Kind = types.CustomizeSuccess
	case result.SucceededCount > 0:
		result.Kind = types.CustomizePartialSuccess
	default:
		result.Kind = types.CustomizeFailure
		result.Overlay = nil
		if offlineFailures == len(plan.Phases) {
			result.Cause = types.FailureCauseOffline
		} else {
			result.Cause = types.FailureCauseGeneric
		}
	}
	return result
}

func buildPhasePrompt(user UserContext, plan types.RoadmapPlan, phase types.Phase, answers types.CustomizeAnswers) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan: %s (%s pacing, %d days total)\n", plan.Name, plan.Strategy, plan.TotalDays)
	fmt.Fprintf(&b, "Phase %d: %s (%s)\n%s\n\n", phase.Number, phase.Title, phase.WeeksLabel, phase.Description)

	b.WriteString("Current objectives:\n")
	for _, objective := range phase.Objectives {
		fmt.Fprintf(&b, "- %s\n", objective)
	}
	b.WriteString("\nCurrent tasks:\n")
	for i, task := range phase.Tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, task.Text)
	}

	b.WriteString("\nAbout the user:\n")
	if user.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", user.Name)
	}
	fmt.Fprintf(&b, "Timeline: %s\n", user.Timeline)
	if user.Goal != "" {
		fmt.Fprintf(&b, "Goal: %s\n", user.Goal)
	}
	if user.TargetRole != "" {
		fmt.Fprintf(&b, "Target role: %s\n", user.TargetRole)
	}
	if answers.CurrentSituation != "" {
		fmt.Fprintf(&b, "Current situation: %s\n", answers.CurrentSituation)
	}
	if answers.BiggestChallenge != "" {
		fmt.Fprintf(&b, "Biggest challenge: %s\n", answers.BiggestChallenge)
	}
	if answers.WeeklyHours != "" {
		fmt.Fprintf(&b, "Available hours per week: %s\n", answers.WeeklyHours)
	}
	if answers.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", answers.Notes)
	}

	return b.String()
}
