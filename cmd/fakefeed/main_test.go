package main

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func newGenerators(seed int64) (*rand.Rand, *gofakeit.Faker) {
	return rand.New(rand.NewSource(seed)), gofakeit.New(seed)
}

func TestGeneratePostsDeterministic(t *testing.T) {
	rngA, fakerA := newGenerators(42)
	rngB, fakerB := newGenerators(42)

	a := generatePosts(rngA, fakerA, 50)
	b := generatePosts(rngB, fakerB, 50)

	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("expected 50 posts each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Username != b[i].Username || a[i].Text != b[i].Text {
			t.Fatalf("post %d differs across equal seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratePostsRanges(t *testing.T) {
	rng, faker := newGenerators(7)
	posts := generatePosts(rng, faker, 200)

	cutoff := time.Now().AddDate(0, 0, -91)
	for _, post := range posts {
		if post.Followers < 50 || post.Followers > 500000 {
			t.Fatalf("followers out of range: %d", post.Followers)
		}
		if post.Retweets < 0 || post.Retweets > 2000 {
			t.Fatalf("retweets out of range: %d", post.Retweets)
		}
		if post.Likes < 0 || post.Likes > 5000 {
			t.Fatalf("likes out of range: %d", post.Likes)
		}
		ts, err := time.Parse(time.RFC3339, post.Timestamp)
		if err != nil {
			t.Fatalf("invalid timestamp %q: %v", post.Timestamp, err)
		}
		if ts.Before(cutoff) {
			t.Fatalf("timestamp outside the 90-day window: %s", post.Timestamp)
		}
		if strings.Contains(post.Text, "{product}") || strings.Contains(post.Text, "{company}") {
			t.Fatalf("unreplaced placeholder in %q", post.Text)
		}
	}
}
