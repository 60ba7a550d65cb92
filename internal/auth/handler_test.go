package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quill/internal/auth"
)

func setupMux(secret string) *http.ServeMux {
	h := auth.New(secret, discardLogger()).Handler()

	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := group.Prefix + route.Pattern
		if route.Method != "" {
			pattern = route.Method + " " + pattern
		}
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerVerify(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		body        string
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "correct password",
			secret:      "secret123",
			body:        `{"password":"secret123"}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
		},
		{
			name:        "wrong password",
			secret:      "secret123",
			body:        `{"password":"nope"}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "비밀번호가 올바르지 않습니다.",
		},
		{
			name:        "missing password field",
			secret:      "secret123",
			body:        `{}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "비밀번호가 올바르지 않습니다.",
		},
		{
			name:        "malformed body",
			secret:      "secret123",
			body:        `{not json`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "비밀번호가 올바르지 않습니다.",
		},
		{
			name:        "no secret configured",
			secret:      "",
			body:        `{"password":"secret123"}`,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "서버 설정 오류입니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(tt.secret)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/auth", strings.NewReader(tt.body))
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var result struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("decode response: %v", err)
			}

			if result.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", result.Success, tt.wantSuccess)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", result.Message, tt.wantMessage)
			}
		})
	}
}

func TestHandlerVerifyMethodNotAllowed(t *testing.T) {
	mux := setupMux("secret123")

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(method, "/auth", nil)
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want 405", rec.Code)
			}

			var result struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if result.Error != "Method Not Allowed" {
				t.Errorf("error = %q, want %q", result.Error, "Method Not Allowed")
			}
		})
	}
}
