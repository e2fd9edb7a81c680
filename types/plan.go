package types

// Strategy describes the pacing of a roadmap plan. It is derived from the
// timeline bucket at generation time and used to pick the coaching tone; it is
// never re-derived from TotalDays elsewhere.
type Strategy string

const (
	StrategySprint      Strategy = "sprint"
	StrategyBalanced    Strategy = "balanced"
	StrategySustainable Strategy = "sustainable"
	StrategyStrategic   Strategy = "strategic"
)

// RoadmapPlan is the full career roadmap template for one user. Plans are
// regenerated from (timeline, goal, targetRole) on every read; completion
// flags and customized text live in the profile and are overlaid on top.
type RoadmapPlan struct {
	Name      string   `json:"name"`
	TotalDays int      `json:"total_days"`
	Strategy  Strategy `json:"strategy"`
	Phases    []Phase  `json:"phases"`
}

// Phase is one stage of a plan. Number is 1-based and matches array order;
// phases are never reordered after creation.
type Phase struct {
	Number              int      `json:"number"`
	Title               string   `json:"title"`
	WeeksLabel          string   `json:"weeks_label"`
	Description         string   `json:"description"`
	Objectives          []string `json:"objectives"`
	Tasks               []Task   `json:"tasks"`
	MotivationalMessage string   `json:"motivational_message"`
}

// Task is a single actionable item within a phase. IDs are namespaced by
// timeline and phase (e.g. "1-3m-p1-t1") and are stable across regeneration.
type Task struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"is_completed"`
}
