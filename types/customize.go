package types

// CustomizeKind tags the overall outcome of a customization request.
type CustomizeKind string

const (
	CustomizeSuccess        CustomizeKind = "success"
	CustomizePartialSuccess CustomizeKind = "partial_success"
	CustomizeFailure        CustomizeKind = "failure"
)

// FailureCause loosely classifies a full-failure outcome. It only drives the
// user-facing message, never control flow.
type FailureCause string

const (
	FailureCauseNone    FailureCause = ""
	FailureCauseOffline FailureCause = "offline"
	FailureCauseGeneric FailureCause = "generic"
)

// CustomizeResult is the aggregate outcome of a per-phase customization run.
// Overlay contains entries only for phases that were rewritten successfully.
type CustomizeResult struct {
	Kind           CustomizeKind        `json:"kind"`
	Overlay        map[int]PhaseOverlay `json:"overlay,omitempty"`
	SucceededCount int                  `json:"succeeded_count"`
	FailedPhases   []int                `json:"failed_phases,omitempty"`
	Cause          FailureCause         `json:"cause,omitempty"`
}

// CustomizeAnswers is the free-text context the user supplies when requesting
// a personalized rewrite of their plan.
type CustomizeAnswers struct {
	CurrentSituation string `json:"current_situation,omitempty"`
	BiggestChallenge string `json:"biggest_challenge,omitempty"`
	WeeklyHours      string `json:"weekly_hours,omitempty"`
	Notes            string `json:"notes,omitempty"`
}
