package batch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"tickerpulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const defaultWorkers = 5

// Per-category pacing applied after handling each completed task, to stay
// within external provider rate limits.
const (
	defaultPriceDelay  = 500 * time.Millisecond
	defaultNewsDelay   = 1 * time.Second
	defaultSocialDelay = 2 * time.Second
)

type PriceCollector interface {
	Collect(ctx context.Context, inst domain.Instrument, period, interval string) (*domain.PriceDocument, error)
}

type NewsCollector interface {
	Collect(ctx context.Context, inst domain.Instrument, daysBack int) (*domain.NewsDocument, error)
}

type SocialCollector interface {
	Collect(ctx context.Context, inst domain.Instrument, daysBack int) (*domain.SocialDocument, error)
}

// SnapshotStore persists one successful per-instrument, per-category payload.
type SnapshotStore interface {
	SavePrice(symbol string, doc *domain.PriceDocument) error
	SaveNews(symbol string, doc *domain.NewsDocument) error
	SaveSocial(symbol string, doc *domain.SocialDocument) error
}

// Reporter receives console-observable batch progress.
type Reporter interface {
	PhaseStarted(category domain.Category, instruments int)
	Completed(category domain.Category, symbol string, err error)
}

// Options configures one batch run. Zero-valued delays/workers fall back to
// the defaults above; tests set explicit tiny delays.
type Options struct {
	CollectPrice  bool
	CollectNews   bool
	CollectSocial bool

	PricePeriod    string
	PriceInterval  string
	NewsDaysBack   int
	SocialDaysBack int

	Workers     int
	PriceDelay  *time.Duration
	NewsDelay   *time.Duration
	SocialDelay *time.Duration
}

// Orchestrator fans collection out across instruments phase by phase
// (price, then news, then social) on a bounded worker pool, isolating
// per-instrument failures and persisting each success as it completes.
type Orchestrator struct {
	tracer   trace.Tracer
	price    PriceCollector
	news     NewsCollector
	social   SocialCollector
	store    SnapshotStore
	reporter Reporter

	opts Options

	mu sync.Mutex
}

func NewOrchestrator(tracer trace.Tracer, price PriceCollector, news NewsCollector, social SocialCollector, store SnapshotStore, reporter Reporter, opts Options) *Orchestrator {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.PricePeriod == "" {
		opts.PricePeriod = "30d"
	}
	if opts.PriceInterval == "" {
		opts.PriceInterval = "1h"
	}
	if opts.NewsDaysBack <= 0 {
		opts.NewsDaysBack = 7
	}
	if opts.SocialDaysBack <= 0 {
		opts.SocialDaysBack = 3
	}
	if reporter == nil {
		reporter = noopReporter{}
	}
	return &Orchestrator{
		tracer:   tracer,
		price:    price,
		news:     news,
		social:   social,
		store:    store,
		reporter: reporter,
		opts:     opts,
	}
}

// CollectBatch runs the enabled phases over all instruments and returns the
// per-instrument result map. One instrument's or category's failure never
// blocks or discards any other result.
func (o *Orchestrator) CollectBatch(ctx context.Context, instruments []domain.Instrument) domain.BatchResult {
	ctx, span := o.tracer.Start(ctx, "batch.collect")
	defer span.End()

	result := make(domain.BatchResult, len(instruments))

	if o.opts.CollectPrice && o.price != nil {
		o.reporter.PhaseStarted(domain.CategoryPrice, len(instruments))
		runPhase(ctx, o, instruments, delayOr(o.opts.PriceDelay, defaultPriceDelay),
			func(ctx context.Context, inst domain.Instrument) (*domain.PriceDocument, error) {
				return o.price.Collect(ctx, inst, o.opts.PricePeriod, o.opts.PriceInterval)
			},
			func(inst domain.Instrument, doc *domain.PriceDocument, err error) {
				entry := o.entry(result, inst.Symbol)
				if err == nil {
					if saveErr := o.store.SavePrice(inst.Symbol, doc); saveErr != nil {
						err = saveErr
					}
				}
				if err != nil {
					entry.PriceError = err.Error()
				} else {
					entry.Price = doc
				}
				o.reporter.Completed(domain.CategoryPrice, inst.Symbol, err)
			})
	}

	if o.opts.CollectNews && o.news != nil {
		o.reporter.PhaseStarted(domain.CategoryNews, len(instruments))
		runPhase(ctx, o, instruments, delayOr(o.opts.NewsDelay, defaultNewsDelay),
			func(ctx context.Context, inst domain.Instrument) (*domain.NewsDocument, error) {
				return o.news.Collect(ctx, inst, o.opts.NewsDaysBack)
			},
			func(inst domain.Instrument, doc *domain.NewsDocument, err error) {
				entry := o.entry(result, inst.Symbol)
				if err == nil {
					if saveErr := o.store.SaveNews(inst.Symbol, doc); saveErr != nil {
						err = saveErr
					}
				}
				if err != nil {
					entry.NewsError = err.Error()
				} else {
					entry.News = doc
				}
				o.reporter.Completed(domain.CategoryNews, inst.Symbol, err)
			})
	}

	// The social phase submits no tasks at all without configured credentials.
	if o.opts.CollectSocial && o.social != nil {
		o.reporter.PhaseStarted(domain.CategorySocial, len(instruments))
		runPhase(ctx, o, instruments, delayOr(o.opts.SocialDelay, defaultSocialDelay),
			func(ctx context.Context, inst domain.Instrument) (*domain.SocialDocument, error) {
				return o.social.Collect(ctx, inst, o.opts.SocialDaysBack)
			},
			func(inst domain.Instrument, doc *domain.SocialDocument, err error) {
				entry := o.entry(result, inst.Symbol)
				if err == nil {
					if saveErr := o.store.SaveSocial(inst.Symbol, doc); saveErr != nil {
						err = saveErr
					}
				}
				if err != nil {
					entry.SocialError = err.Error()
				} else {
					entry.Social = doc
				}
				o.reporter.Completed(domain.CategorySocial, inst.Symbol, err)
			})
	}

	return result
}

// entry returns the result-map slot for a symbol, creating it under the lock.
func (o *Orchestrator) entry(result domain.BatchResult, symbol string) *domain.InstrumentResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry, ok := result[symbol]
	if !ok {
		entry = &domain.InstrumentResult{}
		result[symbol] = entry
	}
	return entry
}

type phaseOutcome[T any] struct {
	inst    domain.Instrument
	payload T
	err     error
}

// runPhase executes one task per instrument on the bounded pool and consumes
// completions in arrival order. After handling each completed task the
// reducer pauses for the per-category delay before taking the next one.
func runPhase[T any](
	ctx context.Context,
	o *Orchestrator,
	instruments []domain.Instrument,
	delay time.Duration,
	collect func(ctx context.Context, inst domain.Instrument) (T, error),
	handle func(inst domain.Instrument, payload T, err error),
) {
	jobs := make(chan domain.Instrument)
	results := make(chan phaseOutcome[T])

	var wg sync.WaitGroup
	for w := 0; w < o.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inst := range jobs {
				payload, err := collectSafely(ctx, inst, collect)
				results <- phaseOutcome[T]{inst: inst, payload: payload, err: err}
			}
		}()
	}

	go func() {
		for _, inst := range instruments {
			jobs <- inst
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	for outcome := range results {
		if outcome.err != nil {
			log.Printf("Batch %T error for %s: %v", outcome.payload, outcome.inst.Symbol, outcome.err)
		}
		handle(outcome.inst, outcome.payload, outcome.err)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// collectSafely converts a collector panic into that instrument's error so a
// single bad payload cannot take down the batch.
func collectSafely[T any](ctx context.Context, inst domain.Instrument, collect func(ctx context.Context, inst domain.Instrument) (T, error)) (payload T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collector panic for %s: %v", inst.Symbol, r)
		}
	}()
	return collect(ctx, inst)
}

func delayOr(configured *time.Duration, fallback time.Duration) time.Duration {
	if configured != nil {
		return *configured
	}
	return fallback
}

type noopReporter struct{}

func (noopReporter) PhaseStarted(domain.Category, int)        {}
func (noopReporter) Completed(domain.Category, string, error) {}
