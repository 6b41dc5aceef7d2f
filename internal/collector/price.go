package collector

import (
	"context"
	"fmt"
	"math"
	"time"

	"tickerpulse/internal/domain"
	"tickerpulse/internal/provider"

	"go.opentelemetry.io/otel/trace"
)

// indicatorWindow is the trailing window length for derived price indicators.
const indicatorWindow = 5

type PriceHistoryProvider interface {
	FetchHistory(ctx context.Context, symbol, period, interval string) ([]provider.Bar, error)
}

// PriceCollector fetches OHLCV history for one instrument and derives rolling
// 5-period indicators once the trailing window is filled.
type PriceCollector struct {
	history PriceHistoryProvider
	tracer  trace.Tracer
	now     func() time.Time
}

func NewPriceCollector(history PriceHistoryProvider, tracer trace.Tracer) *PriceCollector {
	return &PriceCollector{history: history, tracer: tracer, now: time.Now}
}

// Collect fetches bars for the requested period/interval and builds the price
// document. Provider faults come back as errors carrying the instrument; they
// never propagate further than the caller's error branch.
func (c *PriceCollector) Collect(ctx context.Context, inst domain.Instrument, period, interval string) (*domain.PriceDocument, error) {
	_, span := c.tracer.Start(ctx, "collector.price")
	defer span.End()

	bars, err := c.history.FetchHistory(ctx, inst.ProviderSymbol(), period, interval)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProvider, inst.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrEmptyHistory, inst.Symbol)
	}

	points := make([]domain.PricePoint, 0, len(bars))
	for _, bar := range bars {
		points = append(points, domain.PricePoint{
			Timestamp: bar.Time.UTC().Format(domain.TimestampLayout),
			Open:      finiteFloat(bar.Open),
			High:      finiteFloat(bar.High),
			Low:       finiteFloat(bar.Low),
			Close:     finiteFloat(bar.Close),
			Volume:    bar.Volume,
		})
	}

	attachIndicators(points)

	collectedAt := c.now().UTC().Format(domain.TimestampLayout)
	return &domain.PriceDocument{
		Ticker:    inst.Symbol,
		AssetType: inst.AssetType,
		Interval:  interval,
		Points:    points,
		Metadata: domain.PriceMetadata{
			Period:      period,
			DataPoints:  len(points),
			StartTime:   points[0].Timestamp,
			EndTime:     points[len(points)-1].Timestamp,
			CollectedAt: collectedAt,
		},
	}, nil
}

// attachIndicators derives volatility, momentum, and volume ratio for every
// index with a fully available trailing window. Nothing is emitted before
// index 5, and a window containing an absent reading yields no indicator.
func attachIndicators(points []domain.PricePoint) {
	if len(points) <= indicatorWindow {
		return
	}

	for i := indicatorWindow; i < len(points); i++ {
		if closes, ok := closeWindow(points, i); ok && points[i].Close != nil {
			m := mean(closes)
			if m != 0 {
				volatility := round2(popStddev(closes, m) / m * 100)
				points[i].Volatility5 = &volatility
			}
			base := closes[0]
			if base != 0 {
				momentum := round2((*points[i].Close - base) / base * 100)
				points[i].Momentum5 = &momentum
			}
		}
		if volumes, ok := volumeWindow(points, i); ok && points[i].Volume != nil {
			avg := mean(volumes)
			if avg > 0 {
				ratio := round2(float64(*points[i].Volume) / avg)
				points[i].VolumeRatio5 = &ratio
			}
		}
	}
}

// closeWindow returns the trailing closes [i-5, i) or false when any reading
// is absent.
func closeWindow(points []domain.PricePoint, i int) ([]float64, bool) {
	window := make([]float64, 0, indicatorWindow)
	for j := i - indicatorWindow; j < i; j++ {
		if points[j].Close == nil {
			return nil, false
		}
		window = append(window, *points[j].Close)
	}
	return window, true
}

func volumeWindow(points []domain.PricePoint, i int) ([]float64, bool) {
	window := make([]float64, 0, indicatorWindow)
	for j := i - indicatorWindow; j < i; j++ {
		if points[j].Volume == nil {
			return nil, false
		}
		window = append(window, float64(*points[j].Volume))
	}
	return window, true
}

func finiteFloat(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStddev is the population standard deviation around the given mean.
func popStddev(values []float64, m float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
