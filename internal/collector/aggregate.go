package collector

import (
	"math"
	"sort"

	"tickerpulse/internal/domain"
)

// dailyAccumulator tracks one calendar date's article bucket while grouping.
type dailyAccumulator struct {
	count    int
	sum      float64
	positive int
	negative int
	neutral  int
}

// buildDailyAggregates groups scored articles by UTC calendar date and
// finalizes the buckets in one ascending pass. Empty buckets cannot occur:
// a bucket exists only because an article landed in it.
func buildDailyAggregates(articles []domain.NewsArticle) []domain.DailyAggregate {
	buckets := make(map[string]*dailyAccumulator)
	for _, article := range articles {
		date := dateOf(article.PublishedAt)
		acc, ok := buckets[date]
		if !ok {
			acc = &dailyAccumulator{}
			buckets[date] = acc
		}
		acc.count++
		acc.sum += article.Sentiment.Compound
		switch article.Sentiment.Label {
		case domain.LabelPositive:
			acc.positive++
		case domain.LabelNegative:
			acc.negative++
		default:
			acc.neutral++
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]domain.DailyAggregate, 0, len(dates))
	for _, date := range dates {
		acc := buckets[date]
		n := float64(acc.count)
		out = append(out, domain.DailyAggregate{
			Date:          date,
			ArticlesCount: acc.count,
			AvgSentiment:  round3(acc.sum / n),
			PositiveRatio: round3(float64(acc.positive) / n),
			NegativeRatio: round3(float64(acc.negative) / n),
			NeutralRatio:  round3(float64(acc.neutral) / n),
		})
	}
	return out
}

// hourlyAccumulator tracks one calendar-date-hour social bucket, including
// the engagement-weighted running sums.
type hourlyAccumulator struct {
	count       int
	sum         float64
	weightedSum float64
	totalWeight float64
	positive    int
	negative    int
	neutral     int
}

// engagementWeight upweights posts with higher engagement:
// weight = 1 + 0.1*(reposts + likes) + 0.001*followers.
func engagementWeight(post domain.SocialPost) float64 {
	return 1 + 0.1*float64(post.RepostCount+post.LikeCount) + 0.001*float64(post.AuthorFollowers)
}

// buildHourlyAggregates groups scored posts by UTC calendar-date-hour. The
// weighted average falls back to the unweighted one when total weight is zero.
func buildHourlyAggregates(posts []domain.SocialPost) []domain.HourlyAggregate {
	buckets := make(map[string]*hourlyAccumulator)
	for _, post := range posts {
		hour := dateHourOf(post.CreatedAt)
		acc, ok := buckets[hour]
		if !ok {
			acc = &hourlyAccumulator{}
			buckets[hour] = acc
		}
		weight := engagementWeight(post)
		acc.count++
		acc.sum += post.Sentiment.Compound
		acc.weightedSum += post.Sentiment.Compound * weight
		acc.totalWeight += weight
		switch post.Sentiment.Label {
		case domain.LabelPositive:
			acc.positive++
		case domain.LabelNegative:
			acc.negative++
		default:
			acc.neutral++
		}
	}

	hours := make([]string, 0, len(buckets))
	for hour := range buckets {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	out := make([]domain.HourlyAggregate, 0, len(hours))
	for _, hour := range hours {
		acc := buckets[hour]
		n := float64(acc.count)
		avg := acc.sum / n
		weighted := avg
		if acc.totalWeight > 0 {
			weighted = acc.weightedSum / acc.totalWeight
		}
		out = append(out, domain.HourlyAggregate{
			DateHour:          hour,
			PostsCount:        acc.count,
			AvgSentiment:      round3(avg),
			WeightedSentiment: round3(weighted),
			PositiveRatio:     round3(float64(acc.positive) / n),
			NegativeRatio:     round3(float64(acc.negative) / n),
			NeutralRatio:      round3(float64(acc.neutral) / n),
		})
	}
	return out
}

// dateOf takes the calendar-date prefix of an RFC3339-ish timestamp.
func dateOf(publishedAt string) string {
	for i := 0; i < len(publishedAt); i++ {
		if publishedAt[i] == 'T' {
			return publishedAt[:i]
		}
	}
	return publishedAt
}

// dateHourOf takes the "YYYY-MM-DD HH" prefix of a snapshot timestamp.
func dateHourOf(createdAt string) string {
	if len(createdAt) < len(domain.DateHourLayout) {
		return createdAt
	}
	return createdAt[:len(domain.DateHourLayout)]
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
