package provider

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNewsAPIProviderConfigured(t *testing.T) {
	if NewNewsAPIProvider("", testTracer()).Configured() {
		t.Fatal("expected unconfigured without api key")
	}
	if !NewNewsAPIProvider("key", testTracer()).Configured() {
		t.Fatal("expected configured with api key")
	}
}

func TestNewsAPIProviderFetchEverything(t *testing.T) {
	t.Parallel()

	provider := NewNewsAPIProvider("secret", testTracer())
	provider.baseURL = "http://example"
	provider.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			if q.Get("q") != "(AAPL OR Apple Inc.) stock" {
				t.Fatalf("unexpected query: %q", q.Get("q"))
			}
			if q.Get("apiKey") != "secret" || q.Get("language") != "en" || q.Get("sortBy") != "publishedAt" {
				t.Fatalf("unexpected params: %s", req.URL.RawQuery)
			}
			if q.Get("from") != "2025-01-01" || q.Get("to") != "2025-01-08" {
				t.Fatalf("unexpected window: from=%s to=%s", q.Get("from"), q.Get("to"))
			}
			body := `{"status":"ok","totalResults":1,"articles":[
				{"source":{"name":"Reuters"},"title":"Apple beats estimates",
				"description":"Strong quarter","publishedAt":"2025-01-05T10:00:00Z","url":"http://r"}]}`
			return jsonResponse(http.StatusOK, body), nil
		}),
	}

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	resp, err := provider.FetchEverything(context.Background(), "(AAPL OR Apple Inc.) stock", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" || resp.TotalResults != 1 || len(resp.Articles) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Articles[0].Source.Name != "Reuters" {
		t.Fatalf("unexpected source: %+v", resp.Articles[0])
	}
}

func TestNewsAPIProviderFetchEverythingHTTPError(t *testing.T) {
	t.Parallel()

	provider := NewNewsAPIProvider("secret", testTracer())
	provider.baseURL = "http://example"
	provider.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusInternalServerError, "boom"), nil
		}),
	}

	if _, err := provider.FetchEverything(context.Background(), "q", time.Now(), time.Now()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
