package providers

import (
	"sync"
	"time"
)

// local mocks to avoid an import cycle with testutil

type testLogger struct {
	mu    sync.Mutex
	lines []string
	types []TypeEnum
}

func (m *testLogger) record(t TypeEnum, format string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, format)
	m.types = append(m.types, t)
}

func (m *testLogger) Errorf(t TypeEnum, format string, _ ...interface{}) { m.record(t, format) }
func (m *testLogger) Warnf(t TypeEnum, format string, _ ...interface{})  { m.record(t, format) }
func (m *testLogger) Debugf(t TypeEnum, format string, _ ...interface{}) { m.record(t, format) }
func (m *testLogger) Infof(t TypeEnum, format string, _ ...interface{})  { m.record(t, format) }
func (m *testLogger) Fatalf(t TypeEnum, format string, _ ...interface{}) { m.record(t, format) }
func (m *testLogger) Close()                                             {}

type testMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            map[string]int
	misses          map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{hits: make(map[string]int), misses: make(map[string]int)}
}

func (m *testMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *testMetrics) IncCacheHits(endpoint string)                     { m.hits[endpoint]++ }
func (m *testMetrics) IncCacheMisses(endpoint string)                   { m.misses[endpoint]++ }
func (m *testMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *testMetrics) IncDrinks(_ string)                               {}
func (m *testMetrics) ObserveDrinkVolume(_ int)                         {}
func (m *testMetrics) IncTicks()                                        {}
func (m *testMetrics) SetAlertActive(_ bool)                            {}
