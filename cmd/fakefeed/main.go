package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// FakePost mirrors the raw social post shape the collector consumes, for
// exercising the pipeline without platform credentials.
type FakePost struct {
	Username  string `json:"username"`
	Text      string `json:"tweet_text"`
	Timestamp string `json:"timestamp"`
	Followers int    `json:"followers"`
	Retweets  int    `json:"retweets"`
	Likes     int    `json:"likes"`
}

var products = []string{
	"Google Search", "Gmail", "Google Cloud", "Android", "YouTube",
	"Google Maps", "Google Workspace", "Google AI", "Google Ads",
	"Chrome", "Pixel", "Google Assistant",
}

var patterns = []string{
	"🚀 $GOOG is looking strong today! Huge gains incoming!",
	"🔥 $GOOG breaking out to new highs! Investors are excited!",
	"Google's {product} revenue surged by {percent}% 💰💡",
	"Massive earnings beat! Google reports {value} billion in revenue! 💵🚀",
	"Bullish on {product}, impressive performance! 📈🔥",
	"Google just acquired {company}, big move! 💼💡",
	"Strong demand for Google's {product}, stock is flying! 🚀💰",
	"Google stock up {percent}% after stellar earnings report! 📈💵",
	"Investors are loving Google's latest {product} innovation! 🔥💡",
	"Google under pressure after missing earnings! 📉",
	"⚠️ $GOOG breaking down, rough market reaction! 📉",
	"Google's {product} faces tough competition from {company}.",
	"Regulatory concerns hitting Google, potential lawsuits ahead! ⚖️📉",
	"Google layoffs reported in {product} division, stock down! 😞",
	"📢 Google announces updates for {product} at its latest event.",
	"📊 $GOOG trading sideways, waiting for earnings.",
	"💡 Google investing in {product}, interesting development!",
	"🤝 Google partnering with {company} on new tech initiative.",
	"📈 Google hiring aggressively in {product} sector.",
	"📢 Google conference reveals new {product} features.",
}

var hashtags = []string{"#Google", "#GOOG", "#Stocks", "#Finance", "#TechStocks", "#Investing"}

func generatePosts(rng *rand.Rand, faker *gofakeit.Faker, count int) []FakePost {
	end := time.Now()
	start := end.AddDate(0, 0, -90)

	posts := make([]FakePost, 0, count)
	for i := 0; i < count; i++ {
		text := patterns[rng.Intn(len(patterns))]
		text = strings.ReplaceAll(text, "{product}", products[rng.Intn(len(products))])
		text = strings.ReplaceAll(text, "{company}", faker.Company())
		text = strings.ReplaceAll(text, "{percent}", fmt.Sprintf("%d%%", 1+rng.Intn(15)))
		text = strings.ReplaceAll(text, "{value}", fmt.Sprintf("%.2f", 10+rng.Float64()*40))

		if rng.Float64() < 0.3 {
			for _, tag := range pickTags(rng, 1+rng.Intn(3)) {
				text += " " + tag
			}
		}
		if rng.Float64() < 0.4 {
			text += " $GOOG"
		}

		posted := start.Add(time.Duration(rng.Int63n(int64(end.Sub(start)))))
		posts = append(posts, FakePost{
			Username:  faker.Username(),
			Text:      text,
			Timestamp: posted.Format(time.RFC3339),
			Followers: 50 + rng.Intn(500000-50+1),
			Retweets:  rng.Intn(2001),
			Likes:     rng.Intn(5001),
		})
	}
	return posts
}

func pickTags(rng *rand.Rand, k int) []string {
	shuffled := append([]string(nil), hashtags...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}

func main() {
	count := flag.Int("count", 10000, "number of posts to generate")
	seed := flag.Int64("seed", 42, "random seed for reproducible output")
	out := flag.String("out", "google_financial_tweets.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	faker := gofakeit.New(*seed)

	posts := generatePosts(rng, faker, *count)

	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		log.Fatalf("failed to marshal posts: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}
	log.Printf("Generated %d posts and saved to %s", len(posts), *out)
}
