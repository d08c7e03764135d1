package providers

import (
	"hydrod/internal/structures"
	"strings"
)

// MetricsCacheProvider counts hits and misses per endpoint, taken from the
// key prefix produced by StateKey.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	endpoint := keyEndpoint(key)
	if ok {
		c.metrics.IncCacheHits(endpoint)
	} else {
		c.metrics.IncCacheMisses(endpoint)
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func keyEndpoint(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}

// NewInstrumentedCacheProvider returns the plain noop cache when caching is
// disabled so no phantom misses are counted.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
