package main

import (
	"context"
	"log"
	"time"

	"tickerpulse/internal/batch"
	"tickerpulse/internal/cache"
	"tickerpulse/internal/collector"
	"tickerpulse/internal/config"
	"tickerpulse/internal/domain"
	"tickerpulse/internal/notify"
	"tickerpulse/internal/provider"
	"tickerpulse/internal/sentiment"
	"tickerpulse/internal/store"
	"tickerpulse/pkg/tracing"

	"github.com/joho/godotenv"
)

var (
	loadEnvFunc      = godotenv.Load
	loadConfigFunc   = config.Load
	initTracerFunc   = tracing.InitTracer
	newStoreFunc     = store.NewSnapshotStore
	newNameCacheFunc = cache.NewRedisNameCache
	newNotifierFunc  = notify.NewTelegramNotifier
	fatalFunc        = log.Fatalf
)

func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		fatalFunc("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	snapshots, err := newStoreFunc(cfg.OutputDir)
	if err != nil {
		fatalFunc("failed to prepare snapshot store: %v", err)
	}

	// A Redis outage only disables name caching, never the run.
	var nameCache collector.NameCache
	if redisCache, err := newNameCacheFunc(ctx, cfg.RedisURL); err != nil {
		log.Printf("Warning: Redis unavailable, name caching disabled: %v", err)
	} else if redisCache != nil {
		nameCache = redisCache
		defer redisCache.Close()
	}

	analyzer := sentiment.NewAnalyzer(nil)
	yahoo := provider.NewYahooProvider(tracer)
	names := collector.NewCompanyNameResolver(yahoo, nameCache, tracer)

	// A typed nil provider must not reach the interface field.
	var search collector.SocialSearchProvider
	if twitter := provider.NewTwitterProvider(cfg.Twitter, tracer); twitter != nil {
		search = twitter
	}

	orchestrator := batch.NewOrchestrator(
		tracer,
		collector.NewPriceCollector(yahoo, tracer),
		collector.NewNewsCollector(provider.NewNewsAPIProvider(cfg.NewsAPIKey, tracer), provider.NewSiteScraper(tracer), names, analyzer, tracer),
		collector.NewSocialCollector(search, analyzer, tracer),
		snapshots,
		consoleReporter{},
		batchOptions(cfg),
	)

	instruments := append(domain.StockList(cfg.StockList), domain.CryptoList(cfg.CryptoList)...)

	started := time.Now()
	result := orchestrator.CollectBatch(ctx, instruments)
	elapsed := time.Since(started)

	if err := snapshots.SaveCombined(started.UTC().Format("2006-01-02"), result); err != nil {
		log.Printf("failed to write combined snapshot: %v", err)
	}

	notifier, err := newNotifierFunc(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("Warning: telegram notifier unavailable: %v", err)
	} else if notifier != nil {
		if err := notifier.SendBatchSummary(result, elapsed); err != nil {
			log.Printf("failed to send batch summary: %v", err)
		}
	}

	log.Printf("Batch finished in %s for %d instruments", elapsed.Round(time.Second), len(instruments))
}

// batchOptions derives the run options from config. Without platform
// credentials the social phase is dropped outright: no tasks are submitted
// and no status snapshots are written.
func batchOptions(cfg *config.Config) batch.Options {
	collectSocial := cfg.CollectSocial && cfg.Twitter.Configured()
	if cfg.CollectSocial && !collectSocial {
		log.Printf("Warning: social platform credentials not provided, skipping social phase")
	}
	return batch.Options{
		CollectPrice:   cfg.CollectPrice,
		CollectNews:    cfg.CollectNews,
		CollectSocial:  collectSocial,
		PricePeriod:    cfg.PricePeriod,
		PriceInterval:  cfg.PriceInterval,
		NewsDaysBack:   cfg.NewsDaysBack,
		SocialDaysBack: cfg.SocialDaysBack,
		Workers:        cfg.Workers,
	}
}
