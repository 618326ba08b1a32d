package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
)

// Dependency names shared by the health reporter and the metrics gauge.
const (
	DependencyDatabase = "database"
	DependencyLLM      = "llm"
	DependencyRedis    = "redis"
)

const probeTimeout = 5 * time.Second

// HealthProbeWorker pings the database and the LLM provider, publishing the
// result to the gRPC health server and the dependency_up gauge. The overall
// status follows the database only; the provider is optional.
type HealthProbeWorker struct {
	database Pinger
	llm      Pinger
	// redis is probed only when the shared rate limit store is in use.
	redis Pinger

	// reporter may be nil when the gRPC server is disabled.
	reporter StatusReporter
	metrics  *metrics.Metrics

	interval time.Duration
	logger   *logger.Logger
}

// ProbeOption adds optional dependencies to a HealthProbeWorker.
type ProbeOption func(*HealthProbeWorker)

// WithRedis probes the Redis rate limit store as the "redis" dependency.
func WithRedis(redis Pinger) ProbeOption {
	return func(w *HealthProbeWorker) {
		w.redis = redis
	}
}

func NewHealthProbeWorker(database, llm Pinger, reporter StatusReporter, m *metrics.Metrics, interval time.Duration, logger *logger.Logger, opts ...ProbeOption) Worker {
	if interval <= 0 {
		return nil
	}

	w := &HealthProbeWorker{
		database: database,
		llm:      llm,
		reporter: reporter,
		metrics:  m,
		interval: interval,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run probes once immediately, then on every tick.
func (w *HealthProbeWorker) Run(ctx context.Context) {
	w.Probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Probe(ctx)
		}
	}
}

// Probe checks every dependency once.
func (w *HealthProbeWorker) Probe(ctx context.Context) {
	databaseUp := w.ping(ctx, DependencyDatabase, w.database)
	llmUp := w.ping(ctx, DependencyLLM, w.llm)

	// the limiter fails open, so redis never affects the overall status
	var redisUp bool
	if w.redis != nil {
		redisUp = w.ping(ctx, DependencyRedis, w.redis)
	}

	if w.reporter != nil {
		w.reporter.SetServingStatus(DependencyDatabase, databaseUp)
		w.reporter.SetServingStatus(DependencyLLM, llmUp)
		if w.redis != nil {
			w.reporter.SetServingStatus(DependencyRedis, redisUp)
		}
		w.reporter.SetServingStatus("", databaseUp)
	}
}

func (w *HealthProbeWorker) ping(ctx context.Context, dependency string, pinger Pinger) bool {
	if pinger == nil {
		w.metrics.SetDependencyUp(dependency, false)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := pinger.Ping(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Str("dependency", dependency).Msg("health probe failed")
	}

	up := err == nil
	w.metrics.SetDependencyUp(dependency, up)
	return up
}
