package history_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"quill/internal/history"
	"quill/pkg/pagination"
)

type mockSystem struct {
	saveFn   func(ctx context.Context, cmd history.CreateCommand) (*history.Record, error)
	listFn   func(ctx context.Context, page pagination.PageRequest, filters history.Filters) (*pagination.PageResult[history.Record], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*history.Record, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *history.Handler {
	return history.NewHandler(
		m,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func (m *mockSystem) Save(ctx context.Context, cmd history.CreateCommand) (*history.Record, error) {
	return m.saveFn(ctx, cmd)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters history.Filters) (*pagination.PageResult[history.Record], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*history.Record, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleRecord() history.Record {
	return history.Record{
		ID:          uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		PersonaID:   "reviewer",
		PersonaName: "Code Reviewer",
		UserTask:    "Review my middleware.",
		Prompt:      "Review the following middleware...",
		Model:       "gemini-2.5-flash",
		DurationMS:  1280,
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandlerList(t *testing.T) {
	rec := sampleRecord()

	t.Run("returns paginated records", func(t *testing.T) {
		sys := &mockSystem{
			listFn: func(_ context.Context, _ pagination.PageRequest, _ history.Filters) (*pagination.PageResult[history.Record], error) {
				result := pagination.NewPageResult([]history.Record{rec}, 1, 1, 20)
				return &result, nil
			},
		}
		mux := setupMux(sys)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/generations", nil)
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var result pagination.PageResult[history.Record]
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if result.Total != 1 || len(result.Data) != 1 {
			t.Fatalf("total = %d, data = %d, want 1 and 1", result.Total, len(result.Data))
		}
		if result.Data[0].PersonaName != rec.PersonaName {
			t.Errorf("persona_name = %q, want %q", result.Data[0].PersonaName, rec.PersonaName)
		}
	})

	t.Run("passes query filters", func(t *testing.T) {
		var gotFilters history.Filters
		sys := &mockSystem{
			listFn: func(_ context.Context, _ pagination.PageRequest, filters history.Filters) (*pagination.PageResult[history.Record], error) {
				gotFilters = filters
				result := pagination.NewPageResult([]history.Record{}, 0, 1, 20)
				return &result, nil
			},
		}
		mux := setupMux(sys)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/generations?persona_id=reviewer&persona_name=Code&model=gemini-2.5-flash", nil)
		mux.ServeHTTP(w, req)

		if gotFilters.PersonaID == nil || *gotFilters.PersonaID != "reviewer" {
			t.Error("persona_id filter not applied")
		}
		if gotFilters.PersonaName == nil || *gotFilters.PersonaName != "Code" {
			t.Error("persona_name filter not applied")
		}
		if gotFilters.Model == nil || *gotFilters.Model != "gemini-2.5-flash" {
			t.Error("model filter not applied")
		}
	})
}

func TestHandlerFind(t *testing.T) {
	rec := sampleRecord()

	tests := []struct {
		name       string
		id         string
		findFn     func(ctx context.Context, id uuid.UUID) (*history.Record, error)
		wantStatus int
	}{
		{
			name: "existing record",
			id:   rec.ID.String(),
			findFn: func(_ context.Context, _ uuid.UUID) (*history.Record, error) {
				return &rec, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown record",
			id:   uuid.NewString(),
			findFn: func(_ context.Context, _ uuid.UUID) (*history.Record, error) {
				return nil, history.ErrNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid uuid",
			id:         "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(&mockSystem{findFn: tt.findFn})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/generations/"+tt.id, nil)
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandlerSearch(t *testing.T) {
	rec := sampleRecord()

	t.Run("returns matching records", func(t *testing.T) {
		var gotPage pagination.PageRequest
		sys := &mockSystem{
			listFn: func(_ context.Context, page pagination.PageRequest, _ history.Filters) (*pagination.PageResult[history.Record], error) {
				gotPage = page
				result := pagination.NewPageResult([]history.Record{rec}, 1, page.Page, page.PageSize)
				return &result, nil
			},
		}
		mux := setupMux(sys)

		body := `{"page":2,"page_size":10,"persona_id":"reviewer"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generations/search", strings.NewReader(body))
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("page = %d/%d, want 2/10", gotPage.Page, gotPage.PageSize)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		mux := setupMux(&mockSystem{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generations/search", strings.NewReader(`{not json`))
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		deleteFn   func(ctx context.Context, id uuid.UUID) error
		wantStatus int
	}{
		{
			name: "existing record",
			id:   uuid.NewString(),
			deleteFn: func(_ context.Context, _ uuid.UUID) error {
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "unknown record",
			id:   uuid.NewString(),
			deleteFn: func(_ context.Context, _ uuid.UUID) error {
				return history.ErrNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid uuid",
			id:         "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(&mockSystem{deleteFn: tt.deleteFn})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("DELETE", "/generations/"+tt.id, nil)
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
