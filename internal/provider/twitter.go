package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dghubble/oauth1"
	"go.opentelemetry.io/otel/trace"
)

const (
	twitterBaseURL = "https://api.twitter.com"
	// tweetsPerPage is the platform maximum for one search page.
	tweetsPerPage = 100
)

// TwitterCredentials is the OAuth1 credential set for the social-platform
// search API. All four values are required for the provider to operate.
type TwitterCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// Configured reports whether the full credential set is present.
func (c TwitterCredentials) Configured() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// Tweet is one post returned by the search API in extended-text mode.
type Tweet struct {
	ID        string
	CreatedAt time.Time
	Text      string
	Followers int
	Retweets  int
	Favorites int
}

type TwitterProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

// NewTwitterProvider builds a provider whose HTTP client signs every request
// with the given OAuth1 credentials. Returns nil when credentials are absent.
func NewTwitterProvider(creds TwitterCredentials, tracer trace.Tracer) *TwitterProvider {
	if !creds.Configured() {
		return nil
	}
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	client := config.Client(oauth1.NoContext, token)
	client.Timeout = 20 * time.Second
	return &TwitterProvider{
		client:  client,
		baseURL: twitterBaseURL,
		tracer:  tracer,
	}
}

// SearchRecent pages through recent matching posts, 100 per page, in
// extended-text mode, until maxPosts are collected or results run out.
func (p *TwitterProvider) SearchRecent(ctx context.Context, query string, maxPosts int) ([]Tweet, error) {
	_, span := p.tracer.Start(ctx, "twitter.search-recent")
	defer span.End()

	if maxPosts <= 0 {
		maxPosts = 500
	}

	tweets := make([]Tweet, 0, maxPosts)
	var maxID int64

	for len(tweets) < maxPosts {
		page, err := p.fetchPage(ctx, query, maxID)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		for _, row := range page {
			tweets = append(tweets, row)
			if len(tweets) >= maxPosts {
				break
			}
		}

		lowest, err := strconv.ParseInt(page[len(page)-1].ID, 10, 64)
		if err != nil {
			break
		}
		maxID = lowest - 1
	}

	return tweets, nil
}

func (p *TwitterProvider) fetchPage(ctx context.Context, query string, maxID int64) ([]Tweet, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("count", strconv.Itoa(tweetsPerPage))
	params.Set("tweet_mode", "extended")
	params.Set("result_type", "recent")
	if maxID > 0 {
		params.Set("max_id", strconv.FormatInt(maxID, 10))
	}

	u := fmt.Sprintf("%s/1.1/search/tweets.json?%s", p.baseURL, params.Encode())
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
		return nil, fmt.Errorf("twitter API error %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var payload struct {
		Statuses []struct {
			IDStr         string `json:"id_str"`
			CreatedAt     string `json:"created_at"`
			FullText      string `json:"full_text"`
			RetweetCount  int    `json:"retweet_count"`
			FavoriteCount int    `json:"favorite_count"`
			User          struct {
				FollowersCount int `json:"followers_count"`
			} `json:"user"`
		} `json:"statuses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode twitter response: %w", err)
	}

	tweets := make([]Tweet, 0, len(payload.Statuses))
	for _, row := range payload.Statuses {
		createdAt, err := time.Parse(time.RubyDate, row.CreatedAt)
		if err != nil {
			continue
		}
		tweets = append(tweets, Tweet{
			ID:        row.IDStr,
			CreatedAt: createdAt.UTC(),
			Text:      row.FullText,
			Followers: row.User.FollowersCount,
			Retweets:  row.RetweetCount,
			Favorites: row.FavoriteCount,
		})
	}

	return tweets, nil
}
