package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/ascendlabs/coach-roadmap-service/internal/catalog"
	"github.com/ascendlabs/coach-roadmap-service/internal/customizer"
	"github.com/ascendlabs/coach-roadmap-service/internal/entitlement"
	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/subscription"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/types"
)

func authedRequest(method, target, body, userID string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func seedProfile(t *testing.T, store profile.ReadWriter, userID string) *types.Profile {
	t.Helper()
	p := &types.Profile{
		UserID:             userID,
		Name:               "Jordan",
		TransitionTimeline: catalog.Timeline1To3Months,
		CareerGoal:         catalog.GoalFindingNewJob,
		// One hour short of ten full days: the handler computes against its
		// own clock, and RFC 3339 has second precision, so a seed sitting
		// exactly on the day boundary would tip the ceiling to day 11.
		StartDate:          time.Now().Add(-10*24*time.Hour + time.Hour).Format(time.RFC3339),
		CreatedAt:          time.Now().Unix(),
	}
	if err := store.Save(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func TestProfilePostThenGet(t *testing.T) {
	store := profile.NewMemory()
	handler := ProfileHandler(store)

	body := `{"name":"Sam","transition_timeline":"3-6m","career_goal":"Switching to Tech","target_role":"Data Analyst"}`
	w := httptest.NewRecorder()
	handler(w, authedRequest(http.MethodPost, "/profile", body, "u1"))
	if w.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	handler(w, authedRequest(http.MethodGet, "/profile", "", "u1"))
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", w.Code)
	}
	var p types.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.TargetRole != "Data Analyst" || p.TransitionTimeline != "3-6m" {
		t.Errorf("profile = %+v, onboarding inputs not persisted", p)
	}
	if p.StartDate == "" {
		t.Error("StartDate not defaulted on create")
	}
}

func TestProfilePostRequiresTimeline(t *testing.T) {
	w := httptest.NewRecorder()
	ProfileHandler(profile.NewMemory())(w, authedRequest(http.MethodPost, "/profile", `{"name":"Sam"}`, "u1"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRoadmapHandlerWithoutProfile(t *testing.T) {
	w := httptest.NewRecorder()
	RoadmapHandler(profile.NewMemory())(w, authedRequest(http.MethodGet, "/roadmap", "", "ghost"))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRoadmapHandlerReturnsView(t *testing.T) {
	store := profile.NewMemory()
	seedProfile(t, store, "u1")

	w := httptest.NewRecorder()
	RoadmapHandler(store)(w, authedRequest(http.MethodGet, "/roadmap", "", "u1"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var view struct {
		Plan struct {
			Name   string `json:"name"`
			Phases []struct {
				Number int `json:"number"`
			} `json:"phases"`
		} `json:"plan"`
		CurrentDay   int `json:"current_day"`
		CurrentPhase int `json:"current_phase"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if len(view.Plan.Phases) != 3 {
		t.Errorf("phases = %d, want 3 for 1-3m", len(view.Plan.Phases))
	}
	if view.CurrentDay != 10 {
		t.Errorf("CurrentDay = %d, want 10", view.CurrentDay)
	}
}

func TestToggleTaskRoundTrip(t *testing.T) {
	store := profile.NewMemory()
	p := seedProfile(t, store, "u1")
	plan := catalog.GetPlan(p.TransitionTimeline, p.CareerGoal, "")
	taskID := plan.Phases[0].Tasks[0].ID

	router := mux.NewRouter()
	router.HandleFunc("/roadmap/tasks/{taskID}/toggle", ToggleTaskHandler(store))

	toggle := func() bool {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, fmt.Sprintf("/roadmap/tasks/%s/toggle", taskID), "", "u1"))
		if w.Code != http.StatusOK {
			t.Fatalf("toggle status = %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			IsCompleted bool `json:"is_completed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode toggle response: %v", err)
		}
		return resp.IsCompleted
	}

	if !toggle() {
		t.Fatal("first toggle should complete the task")
	}
	if toggle() {
		t.Fatal("second toggle should un-complete the task")
	}

	stored, err := store.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if stored.TaskCompletion[taskID] {
		t.Error("completion flag not persisted through the store")
	}
}

func TestEntitlementHandler(t *testing.T) {
	store := profile.NewMemory()
	seedProfile(t, store, "u1")
	gate := entitlement.NewGate(store, &subscription.Static{}, 3)

	w := httptest.NewRecorder()
	EntitlementHandler(gate)(w, authedRequest(http.MethodGet, "/entitlement", "", "u1"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var status types.EntitlementStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !status.Allowed || status.Remaining != 3 || status.IsPro {
		t.Errorf("status = %+v, want free user with full allowance", status)
	}
}

// echoGenerator returns a valid phase payload echoing the template's task
// count, so every phase rewrite succeeds.
type echoGenerator struct{ calls int }

func (g *echoGenerator) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	g.calls++
	// Task count is derived from the prompt's numbered task list.
	_, rest, _ := strings.Cut(userPrompt, "Current tasks:\n")
	section, _, _ := strings.Cut(rest, "\nAbout the user:")
	n := 0
	for _, line := range strings.Split(section, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	tasks := make([]string, n)
	for i := range tasks {
		tasks[i] = fmt.Sprintf("rewritten task %d", i+1)
	}
	payload := map[string]interface{}{
		"objectives": []string{"rewritten objective"},
		"tasks":      tasks,
	}
	out, _ := json.Marshal(payload)
	return string(out), nil
}

func TestCustomizeHandlerSuccess(t *testing.T) {
	store := profile.NewMemory()
	seedProfile(t, store, "u1")
	gate := entitlement.NewGate(store, &subscription.Static{}, 3)
	cust := customizer.New(&echoGenerator{})

	w := httptest.NewRecorder()
	handler := CustomizeHandler(store, gate, cust, nil)
	handler(w, authedRequest(http.MethodPost, "/roadmap/customize", `{"answers":{"current_situation":"employed"}}`, "u1"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp customizeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Kind != types.CustomizeSuccess {
		t.Errorf("kind = %s, want success", resp.Kind)
	}
	if resp.Remaining != 2 {
		t.Errorf("remaining = %d, want 2 after one use", resp.Remaining)
	}

	stored, _ := store.Get(context.Background(), "u1")
	if len(stored.CustomizedPhases) != 3 {
		t.Errorf("persisted overlay covers %d phases, want 3", len(stored.CustomizedPhases))
	}
	if stored.CustomizationsUsed != 1 {
		t.Errorf("CustomizationsUsed = %d, want 1", stored.CustomizationsUsed)
	}
}

func TestCustomizeHandlerDeniedWhenExhausted(t *testing.T) {
	store := profile.NewMemory()
	p := seedProfile(t, store, "u1")
	p.CustomizationsUsed = 3
	p.CustomizationLimit = 3
	if err := store.Save(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	gate := entitlement.NewGate(store, &subscription.Static{}, 3)
	gen := &echoGenerator{}
	cust := customizer.New(gen)

	w := httptest.NewRecorder()
	CustomizeHandler(store, gate, cust, nil)(w, authedRequest(http.MethodPost, "/roadmap/customize", `{"answers":{}}`, "u1"))
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times behind a denied gate", gen.calls)
	}
}

func TestCustomizeHandlerTimelineChangeResetsOverlay(t *testing.T) {
	store := profile.NewMemory()
	p := seedProfile(t, store, "u1")
	p.CustomizedPhases = map[int]types.PhaseOverlay{
		1: {Objectives: []string{"stale"}},
	}
	if err := store.Save(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	gate := entitlement.NewGate(store, &subscription.Static{}, 3)
	cust := customizer.New(&echoGenerator{})

	w := httptest.NewRecorder()
	body := `{"timeline":"6-12m","answers":{}}`
	CustomizeHandler(store, gate, cust, nil)(w, authedRequest(http.MethodPost, "/roadmap/customize", body, "u1"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	stored, _ := store.Get(context.Background(), "u1")
	if stored.TransitionTimeline != "6-12m" {
		t.Errorf("timeline = %s, want 6-12m", stored.TransitionTimeline)
	}
	// The 6-12m plan has 8 phases; every overlay entry must come from the new
	// run, not the stale single-phase overlay.
	if len(stored.CustomizedPhases) != 8 {
		t.Errorf("overlay covers %d phases, want 8", len(stored.CustomizedPhases))
	}
	if stored.CustomizedPhases[1].Objectives[0] == "stale" {
		t.Error("stale overlay survived a timeline change")
	}
}

func TestServiceHandlerPublic(t *testing.T) {
	w := httptest.NewRecorder()
	ServiceHandler(w, httptest.NewRequest(http.MethodGet, "/service", nil))
	if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var report map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if _, ok := report["health"]; !ok {
		t.Error("report missing health section")
	}
}

func TestOptionsHandler(t *testing.T) {
	w := httptest.NewRecorder()
	OptionsHandler(w, httptest.NewRequest(http.MethodGet, "/options", nil))
	var opts map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(opts["timelines"]) != 4 {
		t.Errorf("timelines = %v, want 4 entries", opts["timelines"])
	}
	if len(opts["goals"]) == 0 {
		t.Error("goals list empty")
	}
}
