package customizer

import (
	"testing"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

func TestParsePhaseResponse_ObjectTasks(t *testing.T) {
	phase := types.Phase{
		Number: 1,
		Tasks:  []types.Task{{ID: "t1", Text: "old"}, {ID: "t2", Text: "old too"}},
	}
	raw := `{"objectives": ["o1"], "tasks": [{"text": "new one"}, {"text": "new two"}]}`

	overlay, err := parsePhaseResponse(raw, phase)
	if err != nil {
		t.Fatalf("expected object-shaped tasks to parse: %v", err)
	}
	if overlay.Tasks[0].Text != "new one" || overlay.Tasks[1].Text != "new two" {
		t.Errorf("unexpected task texts: %+v", overlay.Tasks)
	}
}

func TestParsePhaseResponse_Rejections(t *testing.T) {
	phase := types.Phase{Number: 1, Tasks: []types.Task{{ID: "t1", Text: "old"}}}

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "I think the phase looks great as-is!"},
		{"no objectives", `{"objectives": [], "tasks": ["a"]}`},
		{"missing tasks", `{"objectives": ["o1"]}`},
		{"task count mismatch", `{"objectives": ["o1"], "tasks": ["a", "b"]}`},
	}
	for _, tc := range cases {
		if _, err := parsePhaseResponse(tc.raw, phase); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestParsePhaseResponse_BlankTaskKeepsTemplateText(t *testing.T) {
	phase := types.Phase{Number: 1, Tasks: []types.Task{{ID: "t1", Text: "keep me"}}}

	overlay, err := parsePhaseResponse(`{"objectives": ["o1"], "tasks": ["  "]}`, phase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overlay.Tasks[0].Text != "keep me" {
		t.Errorf("expected template text to be kept, got %q", overlay.Tasks[0].Text)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"  ```json\n{\"a\": 1}\n```  ", "{\"a\": 1}"},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
