package bars

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ggggzj/la-cocktail-finder/app/observability/metrics"
	"github.com/ggggzj/la-cocktail-finder/internal/api/provider"
	"github.com/ggggzj/la-cocktail-finder/internal/types"
)

// maxResults bounds every aggregated result set.
const maxResults = 20

var _ Service = (*ServiceImpl)(nil)

// Service aggregates both lookup providers into one ranked, bounded,
// deduplicated bar set. Both operations are non-throwing: the worst
// case is the static fallback dataset (FetchBarsNear) or the unmodified
// input (EnrichWithDetails).
type Service interface {
	FetchBarsNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar
	EnrichWithDetails(ctx context.Context, bar types.Bar) types.Bar
	ProviderStatus() types.ProviderStatus
}

type ServiceImpl struct {
	logger *slog.Logger
	google provider.Client
	yelp   provider.Client
}

// NewServiceImpl builds the aggregator over the two injected provider
// clients. Google results take priority over Yelp on name collisions.
func NewServiceImpl(google, yelp provider.Client, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		google: google,
		yelp:   yelp,
	}
}

type searchResult struct {
	provider string
	bars     []types.Bar
}

// FetchBarsNear fans out to both providers concurrently, merges with
// first-provider-wins name dedup, substitutes the sample dataset when
// the merge comes up empty, and returns the top bars by rating.
func (s *ServiceImpl) FetchBarsNear(ctx context.Context, lat, lng float64, radiusMeters int) []types.Bar {
	ctx, span := otel.Tracer("BarService").Start(ctx, "FetchBarsNear", trace.WithAttributes(
		attribute.Float64("search.latitude", lat),
		attribute.Float64("search.longitude", lng),
		attribute.Int("search.radius_meters", radiusMeters),
	))
	defer span.End()

	resultCh := make(chan searchResult, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	s.searchWorker(&wg, ctx, s.google, lat, lng, radiusMeters, resultCh)
	s.searchWorker(&wg, ctx, s.yelp, lat, lng, radiusMeters, resultCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	byProvider := map[string][]types.Bar{}
	for result := range resultCh {
		byProvider[result.provider] = result.bars
	}

	// Google's results take priority; Yelp fills in names not already
	// seen. Exact case-insensitive match only, no fuzzy matching.
	merged := mergeByName(byProvider[s.google.Name()], byProvider[s.yelp.Name()])

	if len(merged) == 0 {
		s.logger.InfoContext(ctx, "No provider results, serving sample dataset")
		metrics.Get().AggregationFallbacksTotal.Add(ctx, 1)
		span.AddEvent("Fell back to sample dataset")
		merged = append(merged, SampleBars...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rating > merged[j].Rating
	})
	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}

	span.SetAttributes(attribute.Int("bars.count", len(merged)))
	span.SetStatus(codes.Ok, "Bars aggregated")
	return merged
}

// searchWorker runs one provider search on its own goroutine. A panic
// inside a provider degrades to an empty result for that provider only.
func (s *ServiceImpl) searchWorker(wg *sync.WaitGroup, ctx context.Context, client provider.Client,
	lat, lng float64, radiusMeters int, resultCh chan<- searchResult) {
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.ErrorContext(ctx, "Provider search panicked",
					slog.String("provider", client.Name()), slog.Any("panic", r))
				resultCh <- searchResult{provider: client.Name()}
			}
		}()

		start := time.Now()
		bars := client.SearchNear(ctx, lat, lng, radiusMeters)

		m := metrics.Get()
		providerAttr := metric.WithAttributes(attribute.String("provider", client.Name()))
		m.ProviderSearchesTotal.Add(ctx, 1, providerAttr)
		m.ProviderSearchDurationSeconds.Record(ctx, time.Since(start).Seconds(), providerAttr)

		resultCh <- searchResult{provider: client.Name(), bars: bars}
	}()
}

// mergeByName keeps all of primary, then appends secondary entries whose
// name (case-insensitive, exact) was not already seen. First seen wins.
func mergeByName(primary, secondary []types.Bar) []types.Bar {
	merged := make([]types.Bar, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary))

	for _, bar := range primary {
		merged = append(merged, bar)
		seen[strings.ToLower(bar.Name)] = struct{}{}
	}
	for _, bar := range secondary {
		if _, ok := seen[strings.ToLower(bar.Name)]; ok {
			continue
		}
		merged = append(merged, bar)
		seen[strings.ToLower(bar.Name)] = struct{}{}
	}
	return merged
}

type detailsResult struct {
	provider string
	details  *types.BarDetails
}

// EnrichWithDetails asks both providers for richer fields concurrently
// and layers the successful patches onto a copy of the input, Google
// first, then Yelp (Yelp wins on overlapping fields). If both calls
// fail the input is returned unchanged.
func (s *ServiceImpl) EnrichWithDetails(ctx context.Context, bar types.Bar) types.Bar {
	ctx, span := otel.Tracer("BarService").Start(ctx, "EnrichWithDetails", trace.WithAttributes(
		attribute.String("bar.id", bar.ID),
	))
	defer span.End()

	resultCh := make(chan detailsResult, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	s.detailsWorker(&wg, ctx, s.google, bar.ID, resultCh)
	s.detailsWorker(&wg, ctx, s.yelp, bar.ID, resultCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	byProvider := map[string]*types.BarDetails{}
	for result := range resultCh {
		byProvider[result.provider] = result.details
	}

	enriched := bar
	applyDetails(&enriched, byProvider[s.google.Name()])
	applyDetails(&enriched, byProvider[s.yelp.Name()])

	span.SetStatus(codes.Ok, "Bar enriched")
	return enriched
}

func (s *ServiceImpl) detailsWorker(wg *sync.WaitGroup, ctx context.Context, client provider.Client,
	id string, resultCh chan<- detailsResult) {
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.ErrorContext(ctx, "Provider details fetch panicked",
					slog.String("provider", client.Name()), slog.Any("panic", r))
				resultCh <- detailsResult{provider: client.Name()}
			}
		}()
		resultCh <- detailsResult{provider: client.Name(), details: client.GetDetails(ctx, id)}
	}()
}

// applyDetails shallow-merges a details patch onto the bar. A nil patch
// is a no-op; within a patch, present fields overwrite.
func applyDetails(bar *types.Bar, details *types.BarDetails) {
	if details == nil {
		return
	}
	if details.PhoneNumber != "" {
		bar.PhoneNumber = details.PhoneNumber
	}
	if details.Website != "" {
		bar.Website = details.Website
	}
	if len(details.OpenHours) > 0 {
		bar.OpenHours = details.OpenHours
	}
	if details.Reviews != nil {
		bar.Reviews = details.Reviews
	}
}

// ProviderStatus reports configured credentials, for diagnostics only.
func (s *ServiceImpl) ProviderStatus() types.ProviderStatus {
	return types.ProviderStatus{
		Google: s.google.Configured(),
		Yelp:   s.yelp.Configured(),
	}
}
