package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"tickerpulse/internal/provider"
)

type Config struct {
	OutputDir string

	NewsAPIKey string
	Twitter    provider.TwitterCredentials

	RedisURL string

	TelegramBotToken string
	TelegramChatID   int64

	PricePeriod    string
	PriceInterval  string
	NewsDaysBack   int
	SocialDaysBack int

	Workers int

	StockList  string
	CryptoList string

	CollectPrice  bool
	CollectNews   bool
	CollectSocial bool

	ServerPort int
}

func Load() *Config {
	cfg := &Config{
		NewsAPIKey: os.Getenv("NEWS_API_KEY"),
		Twitter: provider.TwitterCredentials{
			APIKey:       os.Getenv("TWITTER_API_KEY"),
			APISecret:    os.Getenv("TWITTER_API_SECRET"),
			AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
			AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
		},
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	cfg.OutputDir = strings.TrimSpace(os.Getenv("OUTPUT_DIR"))
	if cfg.OutputDir == "" {
		cfg.OutputDir = "data"
	}

	if cfg.NewsAPIKey == "" {
		log.Println("Warning: NEWS_API_KEY not set, news collection will use fallback sources")
	}
	if !cfg.Twitter.Configured() {
		log.Println("Warning: Twitter credentials not set, social collection will be skipped")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, company name caching disabled")
	}

	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = n
		} else {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID=%q, batch summaries disabled", v)
		}
	}

	cfg.PricePeriod = strings.TrimSpace(os.Getenv("PRICE_PERIOD"))
	if cfg.PricePeriod == "" {
		cfg.PricePeriod = "30d"
	}

	cfg.PriceInterval = strings.TrimSpace(os.Getenv("PRICE_INTERVAL"))
	if cfg.PriceInterval == "" {
		cfg.PriceInterval = "1h"
	}

	cfg.NewsDaysBack = 7
	if v := strings.TrimSpace(os.Getenv("NEWS_DAYS_BACK")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NewsDaysBack = n
		}
	}

	cfg.SocialDaysBack = 3
	if v := strings.TrimSpace(os.Getenv("SOCIAL_DAYS_BACK")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SocialDaysBack = n
		}
	}

	cfg.Workers = 5
	if v := strings.TrimSpace(os.Getenv("COLLECT_WORKERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	cfg.StockList = strings.ToLower(strings.TrimSpace(os.Getenv("STOCK_LIST")))
	if cfg.StockList == "" {
		cfg.StockList = "major"
	}

	cfg.CryptoList = strings.ToLower(strings.TrimSpace(os.Getenv("CRYPTO_LIST")))
	if cfg.CryptoList == "" {
		cfg.CryptoList = "major"
	}

	cfg.CollectPrice = boolEnv("COLLECT_PRICE", true)
	cfg.CollectNews = boolEnv("COLLECT_NEWS", true)
	cfg.CollectSocial = boolEnv("COLLECT_SOCIAL", true)

	cfg.ServerPort = 8080
	if v := strings.TrimSpace(os.Getenv("SERVER_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ServerPort = n
		}
	}

	return cfg
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true")
}
