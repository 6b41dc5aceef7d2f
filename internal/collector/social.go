package collector

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tickerpulse/internal/domain"
	"tickerpulse/internal/provider"
	"tickerpulse/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

const (
	// maxFetchedPosts bounds one collection run's paged fetch.
	maxFetchedPosts = 500
	// maxEmbeddedPosts caps the raw post list written to the bundle.
	// Aggregates still cover the full fetched set.
	maxEmbeddedPosts = 100
	// minPostTextLen discards posts whose cleaned text is too short to score.
	minPostTextLen = 10
)

var (
	urlPattern     = regexp.MustCompile(`http\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	leadingRT      = regexp.MustCompile(`^RT\s+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

type SocialSearchProvider interface {
	SearchRecent(ctx context.Context, query string, maxPosts int) ([]provider.Tweet, error)
}

// SocialCollector fetches recent posts from the social-platform search API,
// scores them, and groups them into engagement-weighted hourly buckets.
// A nil search provider means credentials are not configured; collection then
// returns a status document without touching the network.
type SocialCollector struct {
	search   SocialSearchProvider
	analyzer *sentiment.Analyzer
	tracer   trace.Tracer
	now      func() time.Time
}

func NewSocialCollector(search SocialSearchProvider, analyzer *sentiment.Analyzer, tracer trace.Tracer) *SocialCollector {
	return &SocialCollector{
		search:   search,
		analyzer: analyzer,
		tracer:   tracer,
		now:      time.Now,
	}
}

func (c *SocialCollector) Collect(ctx context.Context, inst domain.Instrument, daysBack int) (*domain.SocialDocument, error) {
	_, span := c.tracer.Start(ctx, "collector.social")
	defer span.End()

	if c.search == nil {
		return &domain.SocialDocument{
			Ticker: inst.Symbol,
			Status: StatusNotConfigured,
			Metadata: domain.SocialMetadata{
				CollectedAt: c.now().UTC().Format(domain.TimestampLayout),
			},
		}, nil
	}

	end := c.now().UTC()
	start := end.AddDate(0, 0, -daysBack)

	tweets, err := c.search.SearchRecent(ctx, socialQuery(inst), maxFetchedPosts)
	if err != nil {
		return nil, fmt.Errorf("%w: social search for %s: %v", ErrProvider, inst.Symbol, err)
	}

	posts := make([]domain.SocialPost, 0, len(tweets))
	for _, tweet := range tweets {
		if tweet.CreatedAt.Before(start) {
			continue
		}
		text := cleanPostText(tweet.Text)
		if len(text) < minPostTextLen {
			continue
		}
		posts = append(posts, domain.SocialPost{
			ID:              tweet.ID,
			CreatedAt:       tweet.CreatedAt.UTC().Format(domain.TimestampLayout),
			Text:            text,
			AuthorFollowers: tweet.Followers,
			RepostCount:     tweet.Retweets,
			LikeCount:       tweet.Favorites,
			Sentiment:       c.analyzer.Score(text),
		})
	}

	embedded := posts
	if len(embedded) > maxEmbeddedPosts {
		embedded = embedded[:maxEmbeddedPosts]
	}

	return &domain.SocialDocument{
		Ticker:    inst.Symbol,
		AssetType: inst.AssetType,
		Social: &domain.SocialBundle{
			HourlyAverages: buildHourlyAggregates(posts),
			Posts:          embedded,
		},
		Metadata: domain.SocialMetadata{
			TotalPosts:  len(posts),
			PeriodDays:  daysBack,
			StartDate:   start.Format(domain.DateLayout),
			EndDate:     end.Format(domain.DateLayout),
			CollectedAt: c.now().UTC().Format(domain.TimestampLayout),
		},
	}, nil
}

// cleanPostText strips URLs, @-mentions, and a leading "RT", then collapses
// whitespace.
func cleanPostText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = leadingRT.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// socialQuery mirrors the news query mapping with cashtag/hashtag variants.
func socialQuery(inst domain.Instrument) string {
	if inst.AssetType == domain.AssetTypeCrypto {
		switch inst.Symbol {
		case "BTC":
			return "$BTC OR #Bitcoin OR Bitcoin"
		case "ETH":
			return "$ETH OR #Ethereum OR Ethereum"
		default:
			return fmt.Sprintf("$%s OR #%s", inst.Symbol, inst.Symbol)
		}
	}
	return fmt.Sprintf("$%s OR #%s stock", inst.Symbol, inst.Symbol)
}
