package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tickerpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type fakeReader struct {
	snapshots map[string][]byte
	symbols   []string
	listErr   error
}

func (f *fakeReader) Load(category domain.Category, symbol string) ([]byte, error) {
	key := string(category) + ":" + symbol
	data, ok := f.snapshots[key]
	if !ok {
		return nil, fmt.Errorf("read snapshot: %w", os.ErrNotExist)
	}
	return data, nil
}

func (f *fakeReader) List(category domain.Category) ([]string, error) {
	return f.symbols, f.listErr
}

func newTestRouter(reader SnapshotReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(trace.NewNoopTracerProvider().Tracer("test"), reader)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if body != "{\"status\":\"healthy\"}\n" && body != "{\"status\":\"healthy\"}" {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestListSnapshots(t *testing.T) {
	r := newTestRouter(&fakeReader{symbols: []string{"AAPL", "TSLA"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/price", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var payload struct {
		Category string   `json:"category"`
		Symbols  []string `json:"symbols"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload.Category != "price" || len(payload.Symbols) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestListSnapshotsBadCategory(t *testing.T) {
	r := newTestRouter(&fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/bogus", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetSnapshot(t *testing.T) {
	reader := &fakeReader{snapshots: map[string][]byte{
		"news:AAPL": []byte(`{"ticker":"AAPL"}`),
	}}
	r := newTestRouter(reader)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/news/aapl", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"ticker":"AAPL"}` {
		t.Fatalf("expected raw snapshot passthrough, got %s", w.Body.String())
	}
}

func TestGetSnapshotNotFound(t *testing.T) {
	r := newTestRouter(&fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshots/social/NOPE", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
