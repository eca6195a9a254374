package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleRender(t *testing.T) {
	srv := New(nil, nil)
	handler := srv.Handler()

	body := `{"source":"the dog\nDET dog.NOM\nthe dog","options":{"first_line_orig":"true"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Cached {
		t.Error("first render reported as cached")
	}
	if !strings.Contains(resp.HTML, "gloss__line--original") {
		t.Errorf("first_line_orig option not applied: %s", resp.HTML)
	}
	if !strings.Contains(resp.HTML, `title="nominative"`) {
		t.Errorf("abbreviation tagging missing: %s", resp.HTML)
	}

	// Second identical request hits the in-memory cache.
	req2 := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(body))
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)

	var resp2 renderResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp2.Cached {
		t.Error("identical render not served from cache")
	}
	if resp2.HTML != resp.HTML {
		t.Error("cached rendering differs from original")
	}
}

func TestHandleRenderBadJSON(t *testing.T) {
	handler := New(nil, nil).Handler()
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAbbreviations(t *testing.T) {
	handler := New(nil, nil).Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/abbreviations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var table map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if table["PL"] != "plural" {
		t.Errorf("abbreviations table missing defaults: PL = %q", table["PL"])
	}
}
