// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopByDefault(t *testing.T) {
	assert.Nil(t, HTTPHandler())

	// all meter kinds are usable without initialization
	Counter("test_count").Add(1)
	Gauge("test_gauge").Set(7)
	Histogram("test_histogram", Bucket10s).Observe(100)
	CounterVec("test_count_vec", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "a"})
	GaugeVec("test_gauge_vec", []string{"kind"}).SetWithLabel(1, map[string]string{"kind": "a"})
}

func TestPrometheusMeters(t *testing.T) {
	InitializePrometheusMetrics()
	assert.NotNil(t, HTTPHandler())

	c := Counter("blocks_packed_total")
	c.Add(2)
	// same name returns the same meter
	assert.Equal(t, c, Counter("blocks_packed_total"))

	Gauge("best_height").Set(42)
	Histogram("pack_duration_ms", Bucket10s).Observe(12)
}
