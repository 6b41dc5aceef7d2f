package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestSiteScraperArticleTags(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<article><h2>Apple hits record high</h2><time>2 hours ago</time></article>
		<article><h3>Markets rally on earnings</h3></article>
		<article><p>no heading here</p></article>
	</body></html>`

	scraper := NewSiteScraper(testTracer())
	scraper.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") != scraperUserAgent {
				t.Fatalf("unexpected user agent: %s", req.Header.Get("User-Agent"))
			}
			return jsonResponse(http.StatusOK, page), nil
		}),
	}

	articles, err := scraper.FetchCandidates(context.Background(), "https://www.marketwatch.com/search?q=AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "Apple hits record high" || articles[0].Published != "2 hours ago" {
		t.Fatalf("unexpected first article: %+v", articles[0])
	}
	if articles[1].Published != "N/A" {
		t.Fatalf("expected N/A published for missing date, got %q", articles[1].Published)
	}
	if articles[0].Source != "www.marketwatch.com" {
		t.Fatalf("expected host as source, got %q", articles[0].Source)
	}
}

func TestSiteScraperDivFallback(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<div class="searchresult article-wrap"><h3>Bitcoin climbs past resistance</h3>
			<span class="published-date">Jan 5</span></div>
		<div class="sidebar">ignore me</div>
	</body></html>`

	scraper := NewSiteScraper(testTracer())
	scraper.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, page), nil
		}),
	}

	articles, err := scraper.FetchCandidates(context.Background(), "https://www.coindesk.com/search?q=btc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Title != "Bitcoin climbs past resistance" || articles[0].Published != "Jan 5" {
		t.Fatalf("unexpected article: %+v", articles[0])
	}
}

func TestSiteScraperCapsBlocks(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "<article><h2>headline %d</h2></article>", i)
	}
	sb.WriteString("</body></html>")

	scraper := NewSiteScraper(testTracer())
	scraper.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, sb.String()), nil
		}),
	}

	articles, err := scraper.FetchCandidates(context.Background(), "https://example.com/search")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != maxCandidateBlocks {
		t.Fatalf("expected %d articles, got %d", maxCandidateBlocks, len(articles))
	}
}

func TestSiteScraperHTTPError(t *testing.T) {
	t.Parallel()

	scraper := NewSiteScraper(testTracer())
	scraper.client = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusForbidden, "blocked"), nil
		}),
	}

	if _, err := scraper.FetchCandidates(context.Background(), "https://example.com/search"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
