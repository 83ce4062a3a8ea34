package res_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-tracker/pkg/res"
)

func TestJson(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	res.Json(rec, map[string]any{"ok": true}, http.StatusCreated)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	res.ErrorDetails(rec, "internal error", "connection refused", http.StatusInternalServerError)

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "internal error" || body["details"] != "connection refused" {
		t.Fatalf("unexpected body: %v", body)
	}
}
