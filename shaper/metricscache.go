// SPDX-License-Identifier: Unlicense OR MIT

package shaper

import (
	"fmt"
	"math"
)

// MetricsKey identifies one cached FontMetrics computation.
type MetricsKey struct {
	FontIdx int
	Size    float64
	DPI     uint32
}

// metricsCache memoizes FontMetrics per (slot, size, dpi). Nothing in this
// package invalidates it; a caller that needs a refresh discards the
// Shaper and builds a new one.
type metricsCache struct {
	m map[MetricsKey]FontMetrics
}

func newMetricsCache() *metricsCache {
	return &metricsCache{m: make(map[MetricsKey]FontMetrics)}
}

func (c *metricsCache) get(k MetricsKey) (FontMetrics, bool) {
	v, ok := c.m[k]
	return v, ok
}

func (c *metricsCache) put(k MetricsKey, v FontMetrics) error {
	if math.IsNaN(k.Size) {
		return fmt.Errorf("shaper: refusing to cache metrics keyed on a NaN size")
	}
	c.m[k] = v
	return nil
}
