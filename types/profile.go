package types

// SubscriptionStatus is the last-persisted subscription tier for a user. It is
// the fallback when the subscription source cannot be reached.
type SubscriptionStatus string

const (
	SubscriptionFree SubscriptionStatus = "free"
	SubscriptionPro  SubscriptionStatus = "pro"
)

// Profile is the single source of truth for one user. The plan itself is not
// stored here; only the inputs it is regenerated from, plus the completion
// map, customization overlay and entitlement counters.
type Profile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`

	// Plan inputs captured during onboarding.
	TransitionTimeline string `json:"transition_timeline"`
	CareerGoal         string `json:"career_goal,omitempty"`
	TargetRole         string `json:"target_role,omitempty"`
	StartDate          string `json:"start_date"` // RFC 3339

	// Canonical task completion state, keyed by task ID.
	TaskCompletion map[string]bool `json:"task_completion,omitempty"`

	// AI-customized phases, keyed by phase number. Absence of a key means the
	// template phase is used unmodified.
	CustomizedPhases map[int]PhaseOverlay `json:"customized_phases,omitempty"`

	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	CustomizationsUsed int                `json:"customizations_used"`
	CustomizationLimit int                `json:"customization_limit"`
	CustomizationLogs  []CustomizationLog `json:"customization_logs,omitempty"`
	StripeCustomerID   string             `json:"stripe_customer_id,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// PhaseOverlay holds the AI-rewritten content for one phase. Task IDs and
// completion flags are carried over from the template; only text differs.
type PhaseOverlay struct {
	Objectives []string      `json:"objectives"`
	Tasks      []OverlayTask `json:"tasks"`
}

// OverlayTask mirrors Task for the persisted overlay.
type OverlayTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CustomizationLog is one entry in the append-only customization audit trail.
type CustomizationLog struct {
	ID           string `json:"id"`
	Timestamp    int64  `json:"timestamp"`
	FromTimeline string `json:"from_timeline"`
	ToTimeline   string `json:"to_timeline"`
	UserID       string `json:"user_id"`
}
