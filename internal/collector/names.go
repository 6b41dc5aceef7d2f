package collector

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

type ShortNameLookup interface {
	LookupShortName(ctx context.Context, symbol string) (string, error)
}

// NameCache is an optional read-through cache for resolved company names.
type NameCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// CompanyNameResolver resolves the company name behind an equity ticker for
// news query construction. Lookup failures degrade to the bare ticker.
type CompanyNameResolver struct {
	lookup ShortNameLookup
	cache  NameCache
	tracer trace.Tracer
}

func NewCompanyNameResolver(lookup ShortNameLookup, cache NameCache, tracer trace.Tracer) *CompanyNameResolver {
	return &CompanyNameResolver{lookup: lookup, cache: cache, tracer: tracer}
}

func (r *CompanyNameResolver) ResolveName(ctx context.Context, symbol string) string {
	_, span := r.tracer.Start(ctx, "collector.resolve-name")
	defer span.End()

	if r.cache != nil {
		if name, ok := r.cache.Get(ctx, cacheKey(symbol)); ok && name != "" {
			return name
		}
	}

	if r.lookup == nil {
		return symbol
	}
	name, err := r.lookup.LookupShortName(ctx, symbol)
	if err != nil || strings.TrimSpace(name) == "" {
		return symbol
	}
	name = strings.TrimSpace(name)

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey(symbol), name)
	}
	return name
}

func cacheKey(symbol string) string {
	return "company_name:" + strings.ToUpper(symbol)
}
