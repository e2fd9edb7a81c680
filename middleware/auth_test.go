package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"Bearer  abc123 ", "abc123", true},
		{"Basic abc123", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := extractBearerToken(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Errorf("extractBearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestAuth_DisabledRunsAsLocalDev(t *testing.T) {
	var gotUser string
	handler := Auth(nil)(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/roadmap", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser != "local-dev" {
		t.Errorf("expected local-dev subject, got %q", gotUser)
	}
}

func TestNormalizeIssuer(t *testing.T) {
	if got := normalizeIssuer(" https://id.example.com "); got != "https://id.example.com/" {
		t.Errorf("unexpected issuer %q", got)
	}
	if got := normalizeIssuer("https://id.example.com/"); got != "https://id.example.com/" {
		t.Errorf("trailing slash should be preserved, got %q", got)
	}
	if got := normalizeIssuer(""); got != "" {
		t.Errorf("empty issuer should stay empty, got %q", got)
	}
}
