package catalog

import (
	"strings"
	"testing"
)

func TestGetPlan_TotalityAndNumbering(t *testing.T) {
	goals := append([]string{""}, Goals()...)

	for _, timeline := range Timelines() {
		for _, goal := range goals {
			plan := GetPlan(timeline, goal, "")

			if len(plan.Phases) == 0 {
				t.Fatalf("timeline=%q goal=%q: expected at least one phase", timeline, goal)
			}
			if plan.TotalDays <= 0 {
				t.Errorf("timeline=%q goal=%q: expected positive TotalDays, got %d", timeline, goal, plan.TotalDays)
			}

			seenIDs := make(map[string]bool)
			for i, phase := range plan.Phases {
				if phase.Number != i+1 {
					t.Errorf("timeline=%q goal=%q: phase at index %d has number %d", timeline, goal, i, phase.Number)
				}
				if len(phase.Objectives) == 0 {
					t.Errorf("timeline=%q goal=%q phase %d: no objectives", timeline, goal, phase.Number)
				}
				for _, task := range phase.Tasks {
					if seenIDs[task.ID] {
						t.Errorf("timeline=%q goal=%q: duplicate task id %q", timeline, goal, task.ID)
					}
					seenIDs[task.ID] = true
					if task.IsCompleted {
						t.Errorf("template task %q should not start completed", task.ID)
					}
				}
			}
		}
	}
}

func TestGetPlan_IdempotentRegeneration(t *testing.T) {
	first := GetPlan(Timeline6To12Months, GoalSwitchingToTech, "Data Engineer")
	second := GetPlan(Timeline6To12Months, GoalSwitchingToTech, "Data Engineer")

	if first.Name != second.Name {
		t.Errorf("names differ: %q vs %q", first.Name, second.Name)
	}
	if len(first.Phases) != len(second.Phases) {
		t.Fatalf("phase counts differ: %d vs %d", len(first.Phases), len(second.Phases))
	}
	for i := range first.Phases {
		a, b := first.Phases[i], second.Phases[i]
		if len(a.Tasks) != len(b.Tasks) {
			t.Fatalf("phase %d task counts differ: %d vs %d", a.Number, len(a.Tasks), len(b.Tasks))
		}
		for j := range a.Tasks {
			if a.Tasks[j].ID != b.Tasks[j].ID {
				t.Errorf("phase %d task %d: id %q vs %q", a.Number, j, a.Tasks[j].ID, b.Tasks[j].ID)
			}
			if a.Tasks[j].Text != b.Tasks[j].Text {
				t.Errorf("phase %d task %d: text differs between regenerations", a.Number, j)
			}
		}
	}
}

func TestGetPlan_RegenerationUnaffectedByMutation(t *testing.T) {
	// Callers toggle completion flags and rewrite task text on their working
	// copy; the next regeneration must still hand out pristine templates.
	plan := GetPlan(Timeline1To3Months, "", "")
	plan.Phases[0].Tasks[0].IsCompleted = true
	plan.Phases[0].Tasks[0].Text = "mutated"
	plan.Phases[0].Objectives[0] = "mutated"

	fresh := GetPlan(Timeline1To3Months, "", "")
	if fresh.Phases[0].Tasks[0].IsCompleted {
		t.Error("mutation of a generated plan leaked into the template")
	}
	if fresh.Phases[0].Tasks[0].Text == "mutated" || fresh.Phases[0].Objectives[0] == "mutated" {
		t.Error("template text was mutated by a caller-side edit")
	}
}

func TestGetPlan_TargetRoleNameSubstitution(t *testing.T) {
	plan := GetPlan(Timeline1To3Months, "", "Frontend Developer")

	if !strings.Contains(plan.Name, "Frontend Developer") {
		t.Errorf("expected plan name to contain target role, got %q", plan.Name)
	}
	if strings.Contains(plan.Name, "Career") {
		t.Errorf("expected literal 'Career' to be replaced, got %q", plan.Name)
	}
}

func TestGetPlan_UnknownTimelineFallsBack(t *testing.T) {
	fallback := GetPlan("someday", "", "")
	expected := GetPlan(Timeline3To6Months, "", "")

	if fallback.Name != expected.Name {
		t.Errorf("expected fallback to 3-6m plan, got %q", fallback.Name)
	}
	if len(fallback.Phases) != len(expected.Phases) {
		t.Errorf("expected %d phases, got %d", len(expected.Phases), len(fallback.Phases))
	}
}

func TestGetPlan_SwitchingToTechEndToEnd(t *testing.T) {
	plan := GetPlan(Timeline3To6Months, GoalSwitchingToTech, "")

	if plan.Name != "180-Day Career Transition Roadmap" {
		t.Errorf("unexpected plan name %q", plan.Name)
	}
	if len(plan.Phases) != 6 {
		t.Fatalf("expected 6 phases, got %d", len(plan.Phases))
	}

	substituted := false
	for _, phase := range plan.Phases {
		for _, objective := range phase.Objectives {
			if strings.Contains(objective, "transferable skills") {
				t.Errorf("phase %d still mentions the base wording: %q", phase.Number, objective)
			}
			if strings.Contains(objective, "technical skills and projects") {
				substituted = true
			}
		}
	}
	if !substituted {
		t.Error("expected at least one objective with the tech-specific wording")
	}
}

func TestGetPlan_SpecializedGoalDispatch(t *testing.T) {
	for _, goal := range []string{GoalFreelanceStartup, GoalSalaryNegotiation} {
		quick := GetPlan(Timeline1To3Months, goal, "")
		if len(quick.Phases) != 3 {
			t.Errorf("goal=%q quick: expected 3 phases, got %d", goal, len(quick.Phases))
		}
		long := GetPlan(TimelineOver12Months, goal, "")
		if len(long.Phases) != 5 {
			t.Errorf("goal=%q long: expected 5 phases, got %d", goal, len(long.Phases))
		}
		if quick.Name == long.Name {
			t.Errorf("goal=%q: quick and long catalogs share name %q", goal, quick.Name)
		}
	}

	// The specialized catalogs also serve the middle buckets by pacing group.
	if got := len(GetPlan(Timeline3To6Months, GoalFreelanceStartup, "").Phases); got != 3 {
		t.Errorf("3-6m freelance: expected quick catalog (3 phases), got %d", got)
	}
	if got := len(GetPlan(Timeline6To12Months, GoalSalaryNegotiation, "").Phases); got != 5 {
		t.Errorf("6-12m negotiation: expected long catalog (5 phases), got %d", got)
	}
}

func TestGetPlan_BasePhaseCounts(t *testing.T) {
	cases := []struct {
		timeline string
		phases   int
		days     int
	}{
		{Timeline1To3Months, 3, 90},
		{Timeline3To6Months, 6, 180},
		{Timeline6To12Months, 8, 365},
		{TimelineOver12Months, 10, 540},
	}
	for _, tc := range cases {
		plan := GetPlan(tc.timeline, "", "")
		if len(plan.Phases) != tc.phases {
			t.Errorf("timeline=%q: expected %d phases, got %d", tc.timeline, tc.phases, len(plan.Phases))
		}
		if plan.TotalDays != tc.days {
			t.Errorf("timeline=%q: expected %d days, got %d", tc.timeline, tc.days, plan.TotalDays)
		}
	}
}
