package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type recordingReporter struct {
	mu       sync.Mutex
	statuses map[string]bool
}

func (r *recordingReporter) SetServingStatus(service string, serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.statuses == nil {
		r.statuses = map[string]bool{}
	}
	r.statuses[service] = serving
}

func (r *recordingReporter) get(service string) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.statuses[service]
	return v, ok
}

var (
	up   = pingerFunc(func(context.Context) error { return nil })
	down = pingerFunc(func(context.Context) error { return errors.New("unreachable") })
)

func TestHealthProbeWorker_Probe(t *testing.T) {
	tests := []struct {
		name        string
		database    Pinger
		llm         Pinger
		wantDB      bool
		wantLLM     bool
		wantOverall bool
	}{
		{name: "all up", database: up, llm: up, wantDB: true, wantLLM: true, wantOverall: true},
		{name: "llm down keeps overall serving", database: up, llm: down, wantDB: true, wantOverall: true},
		{name: "database down", database: down, llm: up, wantLLM: true},
		{name: "no llm configured", database: up, llm: nil, wantDB: true, wantOverall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			m := metrics.New()
			worker := NewHealthProbeWorker(tt.database, tt.llm, reporter, m, time.Minute, logger.Nop()).(*HealthProbeWorker)

			worker.Probe(context.Background())

			db, _ := reporter.get(DependencyDatabase)
			llm, _ := reporter.get(DependencyLLM)
			overall, _ := reporter.get("")
			assert.Equal(t, tt.wantDB, db)
			assert.Equal(t, tt.wantLLM, llm)
			assert.Equal(t, tt.wantOverall, overall)

			assert.Equal(t, boolGauge(tt.wantDB), testutil.ToFloat64(m.DependencyUp.WithLabelValues(DependencyDatabase)))
			assert.Equal(t, boolGauge(tt.wantLLM), testutil.ToFloat64(m.DependencyUp.WithLabelValues(DependencyLLM)))
		})
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func TestHealthProbeWorker_RunProbesImmediately(t *testing.T) {
	reporter := &recordingReporter{}
	worker := NewHealthProbeWorker(up, up, reporter, nil, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	assert.Eventually(t, func() bool {
		serving, ok := reporter.get("")
		return ok && serving
	}, time.Second, 5*time.Millisecond)
}

func TestNewHealthProbeWorker_ZeroInterval(t *testing.T) {
	assert.Nil(t, NewHealthProbeWorker(up, up, nil, nil, 0, logger.Nop()))
}

func TestHealthProbeWorker_Redis(t *testing.T) {
	tests := []struct {
		name      string
		redis     Pinger
		wantRedis bool
	}{
		{name: "redis up", redis: up, wantRedis: true},
		{name: "redis down leaves overall serving", redis: down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			m := metrics.New()
			worker := NewHealthProbeWorker(up, up, reporter, m, time.Minute, logger.Nop(), WithRedis(tt.redis)).(*HealthProbeWorker)

			worker.Probe(context.Background())

			redis, ok := reporter.get(DependencyRedis)
			assert.True(t, ok)
			assert.Equal(t, tt.wantRedis, redis)

			overall, _ := reporter.get("")
			assert.True(t, overall)
			assert.Equal(t, boolGauge(tt.wantRedis), testutil.ToFloat64(m.DependencyUp.WithLabelValues(DependencyRedis)))
		})
	}
}

func TestHealthProbeWorker_NoRedisNotReported(t *testing.T) {
	reporter := &recordingReporter{}
	worker := NewHealthProbeWorker(up, up, reporter, nil, time.Minute, logger.Nop()).(*HealthProbeWorker)

	worker.Probe(context.Background())

	_, ok := reporter.get(DependencyRedis)
	assert.False(t, ok)
}
