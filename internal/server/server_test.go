package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwhitfield/bannersmith/internal/banner"
	"github.com/mwhitfield/bannersmith/internal/events"
)

const testEvents = `{
  "events": {
    "MOMD": {
      "full_name": "Mother's Day",
      "spacer_color": "pink",
      "caption_color": "#800020"
    },
    "XMAS": {
      "full_name": "Christmas",
      "spacer_color": "green",
      "caption_color": "gold"
    }
  }
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(testEvents), 0o644); err != nil {
		t.Fatalf("writing events file: %v", err)
	}
	table, err := events.LoadTable(path)
	if err != nil {
		t.Fatalf("loading events: %v", err)
	}

	return &Server{
		Composer: &banner.Composer{
			ImageDir: t.TempDir(),
			Events:   table,
			Style:    banner.DefaultStyle(),
		},
		DefaultBackground: "background.png",
	}
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestVersion(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/version", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var info struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if info.Version == "" {
		t.Error("expected a version string")
	}
}

func TestEvents(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/events", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Events []struct {
			Code     string `json:"code"`
			FullName string `json:"full_name"`
		} `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp.Events))
	}
	// All() returns codes sorted.
	if resp.Events[0].Code != "MOMD" || resp.Events[1].Code != "XMAS" {
		t.Errorf("unexpected event order: %+v", resp.Events)
	}
}

func TestBannerValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			body:    `{"items": [`,
			wantErr: "invalid request body",
		},
		{
			name:    "missing items",
			body:    `{"caption": "Sale", "event": "MOMD"}`,
			wantErr: "items is required",
		},
		{
			name:    "missing caption",
			body:    `{"items": ["107343"], "event": "MOMD"}`,
			wantErr: "caption is required",
		},
		{
			name:    "missing event",
			body:    `{"items": ["107343"], "caption": "Sale"}`,
			wantErr: "event is required",
		},
		{
			name:    "unknown event code",
			body:    `{"items": ["107343"], "caption": "Sale", "event": "NOPE"}`,
			wantErr: "unknown event code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := doRequest(t, s, http.MethodPost, "/api/banner", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %s", tt.wantErr, w.Body.String())
			}
		})
	}
}

func TestBannerNoDefaultBackground(t *testing.T) {
	s := newTestServer(t)
	s.DefaultBackground = ""

	w := doRequest(t, s, http.MethodPost, "/api/banner",
		`{"items": ["107343"], "caption": "Sale", "event": "MOMD"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "background is required") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestBannerMissingBackgroundFile(t *testing.T) {
	s := newTestServer(t)
	s.DefaultBackground = filepath.Join(t.TempDir(), "missing.png")

	w := doRequest(t, s, http.MethodPost, "/api/banner",
		`{"items": ["107343"], "caption": "Sale", "event": "MOMD"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}
