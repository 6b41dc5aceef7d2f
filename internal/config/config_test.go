package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"OUTPUT_DIR", "NEWS_API_KEY",
		"TWITTER_API_KEY", "TWITTER_API_SECRET", "TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_SECRET",
		"REDIS_URL", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		"PRICE_PERIOD", "PRICE_INTERVAL", "NEWS_DAYS_BACK", "SOCIAL_DAYS_BACK",
		"COLLECT_WORKERS", "STOCK_LIST", "CRYPTO_LIST",
		"COLLECT_PRICE", "COLLECT_NEWS", "COLLECT_SOCIAL", "SERVER_PORT",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.OutputDir != "data" {
		t.Fatalf("expected default output dir, got %s", cfg.OutputDir)
	}
	if cfg.PricePeriod != "30d" || cfg.PriceInterval != "1h" {
		t.Fatalf("unexpected price defaults: %s %s", cfg.PricePeriod, cfg.PriceInterval)
	}
	if cfg.NewsDaysBack != 7 || cfg.SocialDaysBack != 3 {
		t.Fatalf("unexpected window defaults: %d %d", cfg.NewsDaysBack, cfg.SocialDaysBack)
	}
	if cfg.Workers != 5 {
		t.Fatalf("expected 5 workers, got %d", cfg.Workers)
	}
	if cfg.StockList != "major" || cfg.CryptoList != "major" {
		t.Fatalf("unexpected list defaults: %s %s", cfg.StockList, cfg.CryptoList)
	}
	if !cfg.CollectPrice || !cfg.CollectNews || !cfg.CollectSocial {
		t.Fatal("all collection phases should default on")
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.Twitter.Configured() {
		t.Fatal("twitter should be unconfigured without credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OUTPUT_DIR", "/tmp/snapshots")
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("TWITTER_API_KEY", "a")
	t.Setenv("TWITTER_API_SECRET", "b")
	t.Setenv("TWITTER_ACCESS_TOKEN", "c")
	t.Setenv("TWITTER_ACCESS_SECRET", "d")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("PRICE_PERIOD", "7d")
	t.Setenv("NEWS_DAYS_BACK", "14")
	t.Setenv("COLLECT_WORKERS", "3")
	t.Setenv("STOCK_LIST", "MEME")
	t.Setenv("COLLECT_SOCIAL", "false")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()

	if cfg.OutputDir != "/tmp/snapshots" || cfg.NewsAPIKey != "key" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if !cfg.Twitter.Configured() {
		t.Fatal("twitter should be configured")
	}
	if cfg.TelegramChatID != -100123 {
		t.Fatalf("expected negative chat id, got %d", cfg.TelegramChatID)
	}
	if cfg.PricePeriod != "7d" || cfg.NewsDaysBack != 14 || cfg.Workers != 3 {
		t.Fatalf("unexpected values: %s %d %d", cfg.PricePeriod, cfg.NewsDaysBack, cfg.Workers)
	}
	if cfg.StockList != "meme" {
		t.Fatalf("list names should lowercase, got %s", cfg.StockList)
	}
	if cfg.CollectSocial {
		t.Fatal("COLLECT_SOCIAL=false should disable the phase")
	}
	if cfg.ServerPort != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.ServerPort)
	}
}

func TestLoadInvalidNumbersKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_DAYS_BACK", "-2")
	t.Setenv("COLLECT_WORKERS", "zero")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	cfg := Load()
	if cfg.NewsDaysBack != 7 || cfg.Workers != 5 || cfg.TelegramChatID != 0 {
		t.Fatalf("invalid values should keep defaults: %d %d %d", cfg.NewsDaysBack, cfg.Workers, cfg.TelegramChatID)
	}
}
