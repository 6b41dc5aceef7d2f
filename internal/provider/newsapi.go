package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// EverythingResponse mirrors the keyword-search provider payload the news
// collector consumes.
type EverythingResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

type RawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

type NewsAPIProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewNewsAPIProvider(apiKey string, tracer trace.Tracer) *NewsAPIProvider {
	return &NewsAPIProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: newsAPIBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// Configured reports whether an API credential is present.
func (p *NewsAPIProvider) Configured() bool {
	return p != nil && p.apiKey != ""
}

// FetchEverything runs a keyword search over [from, to], newest first.
// Non-2xx responses are returned as errors; the caller decides whether that
// routes to a fallback source.
func (p *NewsAPIProvider) FetchEverything(ctx context.Context, query string, from, to time.Time) (*EverythingResponse, error) {
	_, span := p.tracer.Start(ctx, "newsapi.fetch-everything")
	defer span.End()

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from.UTC().Format("2006-01-02"))
	params.Set("to", to.UTC().Format("2006-01-02"))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", p.apiKey)

	u := fmt.Sprintf("%s/everything?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("newsapi error %d: %s", resp.StatusCode, string(body))
	}

	var payload EverythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	return &payload, nil
}
