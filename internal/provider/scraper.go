package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/trace"
)

const (
	scraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	// maxCandidateBlocks caps how many article-looking blocks are taken
	// from one search page.
	maxCandidateBlocks = 20
)

// ScrapedArticle is one candidate article block lifted from a public
// search-result page. Only the heading is reliable; Published may be "N/A".
type ScrapedArticle struct {
	Source    string
	Title     string
	Published string
}

// SiteScraper heuristically extracts article headlines from public news-site
// search pages. It is the news collector's fallback when the keyword-search
// provider is unavailable or empty.
type SiteScraper struct {
	client    *http.Client
	userAgent string
	tracer    trace.Tracer
}

func NewSiteScraper(tracer trace.Tracer) *SiteScraper {
	return &SiteScraper{
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: scraperUserAgent,
		tracer:    tracer,
	}
}

// FetchCandidates downloads one search page and extracts up to 20 candidate
// article blocks: <article> elements, or container elements whose class
// mentions "article" or "story". Blocks without an h2/h3 heading are skipped.
func (s *SiteScraper) FetchCandidates(ctx context.Context, pageURL string) ([]ScrapedArticle, error) {
	_, span := s.tracer.Start(ctx, "scraper.fetch-candidates")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("scrape fetch error %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", pageURL, err)
	}

	blocks := doc.Find("article")
	if blocks.Length() == 0 {
		blocks = doc.Find("div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			class := strings.ToLower(sel.AttrOr("class", ""))
			return strings.Contains(class, "article") || strings.Contains(class, "story")
		})
	}

	source := hostOf(pageURL)
	articles := make([]ScrapedArticle, 0, maxCandidateBlocks)
	blocks.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxCandidateBlocks {
			return false
		}
		title := headingText(sel)
		if title == "" {
			return true
		}
		articles = append(articles, ScrapedArticle{
			Source:    source,
			Title:     title,
			Published: publishedText(sel),
		})
		return true
	})

	return articles, nil
}

func headingText(sel *goquery.Selection) string {
	heading := sel.Find("h2").First()
	if heading.Length() == 0 {
		heading = sel.Find("h3").First()
	}
	if heading.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(heading.Text())
}

func publishedText(sel *goquery.Selection) string {
	dateEl := sel.Find("time").First()
	if dateEl.Length() == 0 {
		dateEl = sel.Find("span").FilterFunction(func(_ int, span *goquery.Selection) bool {
			class := strings.ToLower(span.AttrOr("class", ""))
			return strings.Contains(class, "date") || strings.Contains(class, "time")
		}).First()
	}
	if dateEl.Length() == 0 {
		return "N/A"
	}
	text := strings.TrimSpace(dateEl.Text())
	if text == "" {
		return "N/A"
	}
	return text
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

func truncate(in string, maxLen int) string {
	if len(in) <= maxLen {
		return in
	}
	return in[:maxLen]
}
