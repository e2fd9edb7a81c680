package customizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// phasePayload is the structured shape the model is asked to return for one
// phase. Tasks may arrive as plain strings or as objects with a text field;
// both are accepted.
type phasePayload struct {
	Objectives []string        `json:"objectives"`
	Tasks      json.RawMessage `json:"tasks"`
}

// stripCodeFence removes a surrounding markdown code block if the model
// wrapped its whole response in one.
func stripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```") {
		if nl := strings.Index(clean, "\n"); nl != -1 {
			clean = clean[nl+1:]
		}
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	return strings.TrimSpace(clean)
}

// parsePhaseResponse validates the model output against the template phase
// and builds the overlay entry. Task identity is preserved: returned text is
// mapped positionally onto the existing task IDs, so a length mismatch is a
// hard failure for this phase.
func parsePhaseResponse(raw string, phase types.Phase) (types.PhaseOverlay, error) {
	var payload phasePayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return types.PhaseOverlay{}, fmt.Errorf("malformed phase payload: %w", err)
	}

	if len(payload.Objectives) == 0 {
		return types.PhaseOverlay{}, fmt.Errorf("phase payload has no objectives")
	}

	texts, err := taskTexts(payload.Tasks)
	if err != nil {
		return types.PhaseOverlay{}, err
	}
	if len(texts) != len(phase.Tasks) {
		return types.PhaseOverlay{}, fmt.Errorf("expected %d tasks, got %d", len(phase.Tasks), len(texts))
	}

	overlay := types.PhaseOverlay{Objectives: payload.Objectives}
	for i, task := range phase.Tasks {
		text := strings.TrimSpace(texts[i])
		if text == "" {
			text = task.Text
		}
		overlay.Tasks = append(overlay.Tasks, types.OverlayTask{ID: task.ID, Text: text})
	}
	return overlay, nil
}

func taskTexts(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("phase payload has no tasks")
	}

	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain, nil
	}

	var objects []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("malformed tasks array: %w", err)
	}
	texts := make([]string, 0, len(objects))
	for _, o := range objects {
		texts = append(texts, o.Text)
	}
	return texts, nil
}
