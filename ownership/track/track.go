package track

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LerianStudio/lib-ownership/ownership/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Tracker accounts for live payloads across ownership handles. It implements
// ownership.Observer: attach it with ownership.WithObserver and every payload
// adopted by the handle family is registered on first ownership and struck
// off when finalized. Anything still registered at shutdown is a leak.
//
// Unlike a single handle family, a Tracker may be shared freely across
// goroutines; its registry is mutex-guarded.
type Tracker struct {
	mu      sync.Mutex
	live    map[any]entry
	logger  log.Logger
	metrics trackerMetrics
}

type entry struct {
	id          uuid.UUID
	typeName    string
	allocatedAt time.Time
}

// Leak describes a payload that was allocated but never freed.
type Leak struct {
	ID          uuid.UUID
	Type        string
	AllocatedAt time.Time
}

// Option configures a Tracker.
type Option func(*settings)

type settings struct {
	logger   log.Logger
	provider metric.MeterProvider
}

// WithLogger routes allocation and free diagnostics through the given logger.
// Without it, diagnostics are dropped.
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMeterProvider overrides the OpenTelemetry meter provider used for the
// tracker's instruments. Without it, the global provider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(s *settings) {
		s.provider = provider
	}
}

// New creates a Tracker.
//
// Example:
//
//	tracker, err := track.New(track.WithLogger(logger))
//	if err != nil {
//	    return fmt.Errorf("create tracker: %w", err)
//	}
//	w := ownership.MakeSharedOf(Widget{Size: 5}, ownership.WithObserver[Widget](tracker))
func New(opts ...Option) (*Tracker, error) {
	var cfg settings

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.logger == nil {
		cfg.logger = log.NewNop()
	}

	metrics, err := newTrackerMetrics(cfg.provider)
	if err != nil {
		return nil, fmt.Errorf("create tracker metrics: %w", err)
	}

	return &Tracker{
		live:    make(map[any]entry),
		logger:  cfg.logger,
		metrics: metrics,
	}, nil
}

// OnAlloc registers a payload that just gained its first owning handle.
func (t *Tracker) OnAlloc(payload any) {
	if t == nil || payload == nil {
		return
	}

	typeName := fmt.Sprintf("%T", payload)

	record := entry{
		id:          uuid.New(),
		typeName:    typeName,
		allocatedAt: time.Now(),
	}

	t.mu.Lock()
	t.live[payload] = record
	t.mu.Unlock()

	ctx := context.Background()
	typeAttr := metric.WithAttributes(attribute.String("payload.type", typeName))
	t.metrics.allocated.Add(ctx, 1, typeAttr)
	t.metrics.liveCount.Add(ctx, 1, typeAttr)

	t.logger.Log(ctx, log.LevelDebug, "payload allocated",
		log.String("allocation_id", record.id.String()),
		log.String("payload_type", typeName),
	)
}

// OnFree strikes a finalized payload off the registry. Freeing a payload the
// tracker never saw is logged as a warning and otherwise ignored.
func (t *Tracker) OnFree(payload any) {
	if t == nil || payload == nil {
		return
	}

	t.mu.Lock()
	record, tracked := t.live[payload]

	if tracked {
		delete(t.live, payload)
	}
	t.mu.Unlock()

	ctx := context.Background()

	if !tracked {
		t.logger.Log(ctx, log.LevelWarn, "free of untracked payload",
			log.String("payload_type", fmt.Sprintf("%T", payload)),
		)

		return
	}

	typeAttr := metric.WithAttributes(attribute.String("payload.type", record.typeName))
	t.metrics.freed.Add(ctx, 1, typeAttr)
	t.metrics.liveCount.Add(ctx, -1, typeAttr)

	t.logger.Log(ctx, log.LevelDebug, "payload freed",
		log.String("allocation_id", record.id.String()),
		log.String("payload_type", record.typeName),
	)
}

// Live returns the number of payloads currently allocated and not yet freed.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.live)
}

// Leaks returns a snapshot of every payload still live. Order is unspecified.
func (t *Tracker) Leaks() []Leak {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaks := make([]Leak, 0, len(t.live))

	for _, record := range t.live {
		leaks = append(leaks, Leak{
			ID:          record.id,
			Type:        record.typeName,
			AllocatedAt: record.allocatedAt,
		})
	}

	return leaks
}
