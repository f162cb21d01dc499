package track

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type trackerMetrics struct {
	allocated metric.Int64Counter
	freed     metric.Int64Counter
	liveCount metric.Int64UpDownCounter
}

func newTrackerMetrics(provider metric.MeterProvider) (trackerMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter("ownership.track")

	var (
		metrics trackerMetrics
		err     error
	)

	metrics.allocated, err = meter.Int64Counter(
		"ownership.payloads.allocated",
		metric.WithDescription("Number of payloads that gained a first owning handle"),
		metric.WithUnit("{payload}"),
	)
	if err != nil {
		return trackerMetrics{}, fmt.Errorf("create ownership.payloads.allocated counter: %w", err)
	}

	metrics.freed, err = meter.Int64Counter(
		"ownership.payloads.freed",
		metric.WithDescription("Number of payloads finalized by their last owning handle"),
		metric.WithUnit("{payload}"),
	)
	if err != nil {
		return trackerMetrics{}, fmt.Errorf("create ownership.payloads.freed counter: %w", err)
	}

	metrics.liveCount, err = meter.Int64UpDownCounter(
		"ownership.payloads.live",
		metric.WithDescription("Number of payloads currently owned and not yet freed"),
		metric.WithUnit("{payload}"),
	)
	if err != nil {
		return trackerMetrics{}, fmt.Errorf("create ownership.payloads.live counter: %w", err)
	}

	return metrics, nil
}
