package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the amm module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	SwapFeesRetained *prometheus.CounterVec

	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	PoolsTotal     prometheus.Gauge
	RewardsClaimed *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// GetMetrics returns the process-wide amm metrics, registering them on first
// use.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "swaps_total",
				Help:      "Total number of executed swaps per pool",
			}, []string{"pool_id", "token_in"}),
			SwapVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "swap_volume",
				Help:      "Cumulative swap input volume per pool and token",
			}, []string{"pool_id", "token_in"}),
			SwapFeesRetained: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "swap_fees_retained",
				Help:      "Cumulative fee amounts retained in pool reserves",
			}, []string{"pool_id", "token_in"}),
			LiquidityAdded: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "liquidity_added",
				Help:      "Cumulative liquidity added per pool and token",
			}, []string{"pool_id", "token"}),
			LiquidityRemoved: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "liquidity_removed",
				Help:      "Cumulative liquidity removed per pool and token",
			}, []string{"pool_id", "token"}),
			PoolsTotal: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "amm",
				Name:      "pools_total",
				Help:      "Number of pools in the registry",
			}),
			RewardsClaimed: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "rewards_claimed",
				Help:      "Cumulative pending rewards recorded per denom",
			}, []string{"denom"}),
		}
	})
	return metrics
}
