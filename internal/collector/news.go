package collector

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tickerpulse/internal/domain"
	"tickerpulse/internal/provider"
	"tickerpulse/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

// minArticleTextLen filters out articles whose combined title+description is
// too short to score meaningfully.
const minArticleTextLen = 20

type NewsSearchProvider interface {
	Configured() bool
	FetchEverything(ctx context.Context, query string, from, to time.Time) (*provider.EverythingResponse, error)
}

type PageScraper interface {
	FetchCandidates(ctx context.Context, pageURL string) ([]provider.ScrapedArticle, error)
}

type NameResolver interface {
	ResolveName(ctx context.Context, symbol string) string
}

// NewsCollector fetches articles from the keyword-search provider, falling
// back to scraped public search pages when the primary path is unavailable or
// yields nothing usable.
type NewsCollector struct {
	api      NewsSearchProvider
	scraper  PageScraper
	names    NameResolver
	analyzer *sentiment.Analyzer
	tracer   trace.Tracer
	now      func() time.Time
}

func NewNewsCollector(api NewsSearchProvider, scraper PageScraper, names NameResolver, analyzer *sentiment.Analyzer, tracer trace.Tracer) *NewsCollector {
	return &NewsCollector{
		api:      api,
		scraper:  scraper,
		names:    names,
		analyzer: analyzer,
		tracer:   tracer,
		now:      time.Now,
	}
}

// Collect scores news for one instrument over a rolling daysBack window.
// A failed or empty primary response routes to the fallback path, never to an
// error; only faults with no remaining path surface as errors.
func (c *NewsCollector) Collect(ctx context.Context, inst domain.Instrument, daysBack int) (*domain.NewsDocument, error) {
	ctx, span := c.tracer.Start(ctx, "collector.news")
	defer span.End()

	if c.api == nil || !c.api.Configured() {
		return c.collectFallback(ctx, inst)
	}

	end := c.now().UTC()
	start := end.AddDate(0, 0, -daysBack)

	resp, err := c.api.FetchEverything(ctx, c.buildQuery(ctx, inst), start, end)
	if err != nil {
		log.Printf("News primary fetch failed for %s, using fallback: %v", inst.Symbol, err)
		return c.collectFallback(ctx, inst)
	}
	if resp.Status != "ok" || resp.TotalResults == 0 {
		return c.collectFallback(ctx, inst)
	}

	articles := make([]domain.NewsArticle, 0, len(resp.Articles))
	for _, raw := range resp.Articles {
		text := raw.Title + " " + raw.Description
		if len(strings.TrimSpace(text)) < minArticleTextLen {
			continue
		}
		articles = append(articles, domain.NewsArticle{
			Source:      raw.Source.Name,
			Title:       raw.Title,
			PublishedAt: raw.PublishedAt,
			URL:         raw.URL,
			Sentiment:   c.analyzer.Score(text),
		})
	}

	return &domain.NewsDocument{
		Ticker:    inst.Symbol,
		AssetType: inst.AssetType,
		News: &domain.NewsBundle{
			DailyAverages: buildDailyAggregates(articles),
			Articles:      articles,
		},
		Metadata: domain.NewsMetadata{
			TotalArticles: len(articles),
			PeriodDays:    daysBack,
			StartDate:     start.Format(domain.DateLayout),
			EndDate:       end.Format(domain.DateLayout),
			CollectedAt:   c.now().UTC().Format(domain.TimestampLayout),
		},
	}, nil
}

// collectFallback scrapes a fixed set of public search pages. Per-source
// failures are swallowed and the next source tried; only the scored titles
// are returned, with no daily aggregates (title-only text is too sparse).
func (c *NewsCollector) collectFallback(ctx context.Context, inst domain.Instrument) (*domain.NewsDocument, error) {
	_, span := c.tracer.Start(ctx, "collector.news-fallback")
	defer span.End()

	if c.scraper == nil {
		return nil, fmt.Errorf("%w: no fallback scraper for %s", ErrProvider, inst.Symbol)
	}

	var articles []domain.NewsArticle
	for _, pageURL := range fallbackSourceURLs(inst) {
		candidates, err := c.scraper.FetchCandidates(ctx, pageURL)
		if err != nil {
			log.Printf("Fallback news source failed for %s (%s): %v", inst.Symbol, pageURL, err)
			continue
		}
		for _, candidate := range candidates {
			articles = append(articles, domain.NewsArticle{
				Source:      candidate.Source,
				Title:       candidate.Title,
				PublishedAt: candidate.Published,
				URL:         "N/A",
				Sentiment:   c.analyzer.Score(candidate.Title),
			})
		}
	}

	collectedAt := c.now().UTC().Format(domain.TimestampLayout)
	if len(articles) == 0 {
		return &domain.NewsDocument{
			Ticker:   inst.Symbol,
			Status:   StatusNoFallbackData,
			Metadata: domain.NewsMetadata{CollectedAt: collectedAt},
		}, nil
	}

	return &domain.NewsDocument{
		Ticker:    inst.Symbol,
		AssetType: inst.AssetType,
		News:      &domain.NewsBundle{Articles: articles},
		Metadata: domain.NewsMetadata{
			TotalArticles: len(articles),
			Note:          fallbackReliabilityNote,
			CollectedAt:   collectedAt,
		},
	}, nil
}

// buildQuery maps an instrument to a provider search query. Crypto majors get
// their common names; equities pair the ticker with the resolved company name.
func (c *NewsCollector) buildQuery(ctx context.Context, inst domain.Instrument) string {
	if inst.AssetType == domain.AssetTypeCrypto {
		switch inst.Symbol {
		case "BTC":
			return "Bitcoin OR BTC"
		case "ETH":
			return "Ethereum OR ETH"
		default:
			return inst.Symbol + " cryptocurrency"
		}
	}

	name := inst.Symbol
	if c.names != nil {
		name = c.names.ResolveName(ctx, inst.Symbol)
	}
	return fmt.Sprintf("(%s OR %s) stock", inst.Symbol, name)
}

// fallbackSourceURLs is the fixed per-instrument set of public search pages,
// distinct for crypto and equities.
func fallbackSourceURLs(inst domain.Instrument) []string {
	lower := strings.ToLower(inst.Symbol)
	if inst.AssetType == domain.AssetTypeCrypto {
		return []string{
			"https://www.coindesk.com/search?q=" + lower,
			"https://cointelegraph.com/tags/" + lower,
		}
	}
	return []string{
		"https://www.marketwatch.com/search?q=" + inst.Symbol + "&ts=0&tab=Articles",
	}
}
