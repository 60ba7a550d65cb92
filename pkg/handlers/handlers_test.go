package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/pkg/handlers"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]string{"name": "quill"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["name"] != "quill" {
		t.Errorf("name = %q, want %q", body["name"], "quill")
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondError(rec, discardLogger(), http.StatusBadRequest, errors.New("invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "invalid payload" {
		t.Errorf("error = %q, want %q", body["error"], "invalid payload")
	}
}

func TestRequireMethod(t *testing.T) {
	t.Run("matching method passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/", nil)

		if !handlers.RequireMethod(rec, req, http.MethodPost, discardLogger()) {
			t.Fatal("expected RequireMethod to pass for POST")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("no response should have been written, got status %d", rec.Code)
		}
	})

	t.Run("mismatched method responds 405", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)

		if handlers.RequireMethod(rec, req, http.MethodPost, discardLogger()) {
			t.Fatal("expected RequireMethod to fail for GET")
		}
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d, want 405", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "Method Not Allowed" {
			t.Errorf("error = %q, want %q", body["error"], "Method Not Allowed")
		}
	})
}
