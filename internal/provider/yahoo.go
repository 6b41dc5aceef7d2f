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

const yahooBaseURL = "https://query1.finance.yahoo.com"

// Bar is one raw OHLCV reading from the chart endpoint. Nil fields are
// readings the provider returned as null.
type Bar struct {
	Time   time.Time
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64
}

// YahooProvider fetches OHLCV history and symbol lookups from the Yahoo
// Finance public endpoints.
type YahooProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewYahooProvider creates a provider with built-in rate limiting.
// Rate limited to 30 requests per minute (one token every 2 seconds).
func NewYahooProvider(tracer trace.Tracer) *YahooProvider {
	return &YahooProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: yahooBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(30, 2 * time.Second),
	}
}

// FetchHistory fetches OHLCV bars for the given provider symbol over the
// requested range and interval (e.g. "30d", "1h").
func (p *YahooProvider) FetchHistory(ctx context.Context, symbol, period, interval string) ([]Bar, error) {
	_, span := p.tracer.Start(ctx, "yahoo.fetch-history")
	defer span.End()

	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		p.baseURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(interval))

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Open   []*float64 `json:"open"`
						High   []*float64 `json:"high"`
						Low    []*float64 `json:"low"`
						Close  []*float64 `json:"close"`
						Volume []*int64   `json:"volume"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
			Error *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse history for %s: %w", symbol, err)
	}
	if raw.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s (%s)", symbol, raw.Chart.Error.Description, raw.Chart.Error.Code)
	}
	if len(raw.Chart.Result) == 0 || len(raw.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := raw.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		bar := Bar{Time: time.Unix(ts, 0).UTC()}
		if i < len(quote.Open) {
			bar.Open = quote.Open[i]
		}
		if i < len(quote.High) {
			bar.High = quote.High[i]
		}
		if i < len(quote.Low) {
			bar.Low = quote.Low[i]
		}
		if i < len(quote.Close) {
			bar.Close = quote.Close[i]
		}
		if i < len(quote.Volume) {
			bar.Volume = quote.Volume[i]
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// LookupShortName resolves the company short name behind an equity symbol.
// Returns an empty string when nothing matches.
func (p *YahooProvider) LookupShortName(ctx context.Context, symbol string) (string, error) {
	_, span := p.tracer.Start(ctx, "yahoo.lookup-short-name")
	defer span.End()

	u := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=1&newsCount=0",
		p.baseURL, url.QueryEscape(symbol))

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return "", fmt.Errorf("lookup short name for %s: %w", symbol, err)
	}

	var raw struct {
		Quotes []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortname"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("parse search for %s: %w", symbol, err)
	}
	if len(raw.Quotes) == 0 {
		return "", nil
	}
	return raw.Quotes[0].ShortName, nil
}

func (p *YahooProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, fmt.Errorf("yahoo API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
