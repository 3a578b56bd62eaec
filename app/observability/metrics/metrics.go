package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	ProviderSearchesTotal         metric.Int64Counter
	ProviderSearchDurationSeconds metric.Float64Histogram
	AggregationFallbacksTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get returns the global metrics instance, creating the instruments on
// first use from the globally configured MeterProvider. Instruments
// created before tracer init come from the no-op provider, which keeps
// tests free of setup.
func Get() *AppMetrics {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("la-cocktail-finder")
		var err error
		m := &AppMetrics{}

		m.ProviderSearchesTotal, err = meter.Int64Counter(
			"provider_searches_total",
			metric.WithDescription("Total number of provider nearby searches issued"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create provider_searches_total: %v", err)
		}

		m.ProviderSearchDurationSeconds, err = meter.Float64Histogram(
			"provider_search_duration_seconds",
			metric.WithDescription("Duration of provider nearby searches in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create provider_search_duration_seconds: %v", err)
		}

		m.AggregationFallbacksTotal, err = meter.Int64Counter(
			"aggregation_fallbacks_total",
			metric.WithDescription("Times the aggregator served the sample dataset instead of live results"),
			metric.WithUnit("{fallback}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create aggregation_fallbacks_total: %v", err)
		}

		appMetrics = m
	})
	return appMetrics
}
