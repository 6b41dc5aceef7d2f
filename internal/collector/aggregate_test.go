package collector

import (
	"testing"

	"tickerpulse/internal/domain"
)

func scored(compound float64) domain.SentimentScore {
	return domain.SentimentScore{
		Compound: compound,
		Label:    domain.LabelForCompound(compound),
	}
}

func TestBuildDailyAggregates(t *testing.T) {
	articles := []domain.NewsArticle{
		{PublishedAt: "2025-06-02T09:00:00Z", Sentiment: scored(0.4)},
		{PublishedAt: "2025-06-02T15:00:00Z", Sentiment: scored(-0.2)},
		{PublishedAt: "2025-06-01T10:00:00Z", Sentiment: scored(0)},
	}

	aggregates := buildDailyAggregates(articles)
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 daily buckets, got %d", len(aggregates))
	}
	if aggregates[0].Date != "2025-06-01" || aggregates[1].Date != "2025-06-02" {
		t.Fatalf("buckets should sort ascending: %+v", aggregates)
	}

	first := aggregates[0]
	if first.ArticlesCount != 1 || first.NeutralRatio != 1 {
		t.Fatalf("unexpected first bucket: %+v", first)
	}

	second := aggregates[1]
	if second.ArticlesCount != 2 {
		t.Fatalf("expected 2 articles on 2025-06-02, got %d", second.ArticlesCount)
	}
	if second.AvgSentiment != 0.1 {
		t.Fatalf("expected avg 0.1, got %f", second.AvgSentiment)
	}
	if second.PositiveRatio != 0.5 || second.NegativeRatio != 0.5 || second.NeutralRatio != 0 {
		t.Fatalf("unexpected ratios: %+v", second)
	}
}

func TestBuildDailyAggregatesEmpty(t *testing.T) {
	if got := buildDailyAggregates(nil); len(got) != 0 {
		t.Fatalf("expected no buckets, got %+v", got)
	}
}

func TestEngagementWeight(t *testing.T) {
	post := domain.SocialPost{AuthorFollowers: 1000, RepostCount: 2, LikeCount: 3}
	if got := engagementWeight(post); got != 2.5 {
		t.Fatalf("expected weight 2.5, got %f", got)
	}

	baseline := engagementWeight(domain.SocialPost{})
	if baseline != 1 {
		t.Fatalf("expected baseline weight 1, got %f", baseline)
	}

	louder := engagementWeight(domain.SocialPost{RepostCount: 10})
	if louder <= baseline {
		t.Fatal("more engagement must never lower the weight")
	}
}

func TestBuildHourlyAggregatesWeighting(t *testing.T) {
	posts := []domain.SocialPost{
		{CreatedAt: "2025-06-02 14:05:00", Sentiment: scored(1), AuthorFollowers: 9000, RepostCount: 0, LikeCount: 0},
		{CreatedAt: "2025-06-02 14:45:00", Sentiment: scored(-1)},
		{CreatedAt: "2025-06-02 13:10:00", Sentiment: scored(0.2)},
	}

	aggregates := buildHourlyAggregates(posts)
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 hourly buckets, got %d", len(aggregates))
	}
	if aggregates[0].DateHour != "2025-06-02 13" || aggregates[1].DateHour != "2025-06-02 14" {
		t.Fatalf("buckets should sort ascending: %+v", aggregates)
	}

	mixed := aggregates[1]
	if mixed.PostsCount != 2 || mixed.AvgSentiment != 0 {
		t.Fatalf("unexpected bucket: %+v", mixed)
	}
	// weights: 10 for the positive post, 1 for the negative one.
	// weighted = (1*10 + -1*1) / 11
	if mixed.WeightedSentiment != 0.818 {
		t.Fatalf("expected weighted sentiment 0.818, got %f", mixed.WeightedSentiment)
	}
	if mixed.PositiveRatio != 0.5 || mixed.NegativeRatio != 0.5 {
		t.Fatalf("unexpected ratios: %+v", mixed)
	}
}

func TestDateHourOfShortValue(t *testing.T) {
	if got := dateHourOf("bad"); got != "bad" {
		t.Fatalf("short values pass through, got %q", got)
	}
}
