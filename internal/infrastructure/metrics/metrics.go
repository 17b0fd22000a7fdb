package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	reg        *prometheus.Registry
	repayments *prometheus.CounterVec
	amounts    *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		repayments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studentloan",
			Name:      "repayments_total",
			Help:      "Repayment attempts by outcome.",
		}, []string{"outcome"}),
		amounts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "studentloan",
			Name:      "repayment_amount",
			Help:      "Submitted repayment amounts by outcome.",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.repayments,
		m.amounts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRepayment records one processed repayment. A zero amount (never
// parsed) only bumps the counter.
func (m *Metrics) ObserveRepayment(outcome string, amount decimal.Decimal) {
	m.repayments.WithLabelValues(outcome).Inc()
	if amount.IsPositive() {
		f, _ := amount.Float64()
		m.amounts.WithLabelValues(outcome).Observe(f)
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
