// Package progress derives the current position and completion figures for a
// roadmap from the start date and the task completion flags. Everything here
// is pure arithmetic over already-validated plan data.
package progress

import (
	"math"
	"time"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// Status classifies a phase relative to the user's current position.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUpcoming  Status = "upcoming"
)

// CurrentDay returns the number of days into the plan, as the ceiling of the
// absolute difference between now and the start date. The absolute value means
// a start date in the future (clock skew) still yields a day count instead of
// a crash; that quirk is part of the contract and deliberately not corrected.
func CurrentDay(now, start time.Time) int {
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// daysPerPhase is the proportional split of TotalDays across phases. Real
// division: phases advance on fractional boundaries, not calendar ones. A plan
// always has at least one phase, so this never divides by zero.
func daysPerPhase(plan types.RoadmapPlan) float64 {
	return float64(plan.TotalDays) / float64(len(plan.Phases))
}

// CurrentPhaseIndex maps a day count to a phase index, clamped to the last
// phase once the plan's total days are exhausted.
func CurrentPhaseIndex(currentDay int, plan types.RoadmapPlan) int {
	index := int(math.Floor(float64(currentDay) / daysPerPhase(plan)))
	if last := len(plan.Phases) - 1; index > last {
		return last
	}
	return index
}

// WeekInPhase returns the 1-based week within the given phase.
func WeekInPhase(currentDay int, phase types.Phase, plan types.RoadmapPlan) int {
	phaseStartDay := float64(phase.Number-1) * daysPerPhase(plan)
	dayInPhase := float64(currentDay) - phaseStartDay
	week := int(math.Ceil(dayInPhase / 7))
	if week < 1 {
		return 1
	}
	return week
}

// PhaseCompletionPercent is the rounded percentage of completed tasks in a
// phase, 0 for a phase with no tasks.
func PhaseCompletionPercent(phase types.Phase) int {
	if len(phase.Tasks) == 0 {
		return 0
	}
	completed := 0
	for _, task := range phase.Tasks {
		if task.IsCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(phase.Tasks))))
}

// IsPhaseCompleted reports whether every task in the phase is done. A phase
// with zero tasks counts as completed.
func IsPhaseCompleted(phase types.Phase) bool {
	for _, task := range phase.Tasks {
		if !task.IsCompleted {
			return false
		}
	}
	return true
}

// OverallCompletionPercent is the rounded percentage of completed tasks
// across the whole plan, 0 if the plan has no tasks at all.
func OverallCompletionPercent(plan types.RoadmapPlan) int {
	total, completed := 0, 0
	for _, phase := range plan.Phases {
		for _, task := range phase.Tasks {
			total++
			if task.IsCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// PhaseStatus classifies a phase. Task completion takes precedence over the
// calendar index: a phase whose tasks are all done reports completed even if
// the current index has not reached it yet.
func PhaseStatus(phaseIndex, currentPhaseIndex int, phase types.Phase) Status {
	if IsPhaseCompleted(phase) || phaseIndex < currentPhaseIndex {
		return StatusCompleted
	}
	if phaseIndex == currentPhaseIndex {
		return StatusCurrent
	}
	return StatusUpcoming
}
