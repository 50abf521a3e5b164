package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type poolStater interface {
	Stat() *pgxpool.Stat
}

// poolCollector exports pgxpool statistics at scrape time.
type poolCollector struct {
	pool poolStater

	acquired *prometheus.Desc
	idle     *prometheus.Desc
	total    *prometheus.Desc
	max      *prometheus.Desc
	acquires *prometheus.Desc
	waits    *prometheus.Desc
}

func newPoolCollector(pool poolStater) *poolCollector {
	return &poolCollector{
		pool:     pool,
		acquired: prometheus.NewDesc("doblock_db_pool_acquired_conns", "Connections currently in use", nil, nil),
		idle:     prometheus.NewDesc("doblock_db_pool_idle_conns", "Idle connections", nil, nil),
		total:    prometheus.NewDesc("doblock_db_pool_total_conns", "Total connections in the pool", nil, nil),
		max:      prometheus.NewDesc("doblock_db_pool_max_conns", "Maximum pool size", nil, nil),
		acquires: prometheus.NewDesc("doblock_db_pool_acquires_total", "Cumulative successful acquires", nil, nil),
		waits:    prometheus.NewDesc("doblock_db_pool_empty_acquires_total", "Acquires that had to wait for a connection", nil, nil),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquires
	ch <- c.waits
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.waits, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
}
