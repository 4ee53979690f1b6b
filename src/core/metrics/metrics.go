package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	CandidatesMatchedTotal *prometheus.CounterVec
	CandidatesPassedTotal  *prometheus.CounterVec
	CandidatesCheckedTotal prometheus.Counter
	EntriesResolvedTotal   *prometheus.CounterVec
	ResolveErrorsTotal     *prometheus.CounterVec
	ErrorsTotal            *prometheus.CounterVec
}

var metrics *Metrics

func init() {
	metrics = &Metrics{
		CandidatesMatchedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "candidates_matched_total",
				Help:      "Total number of matched candidates",
			},
			[]string{"reason"},
		),
		CandidatesPassedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "candidates_passed_total",
				Help:      "Total number of passed candidates",
			},
			[]string{"reason"},
		),
		CandidatesCheckedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "candidates_checked_total",
				Help:      "Total number of checked candidates",
			},
		),
		EntriesResolvedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "entries_resolved_total",
				Help:      "Total number of resolved specification entries",
			},
			[]string{"kind"},
		),
		ResolveErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "resolve_errors_total",
				Help:      "Total number of entry resolution failures",
			},
			[]string{"stage"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bouncer",
				Subsystem: "core",
				Name:      "errors_total",
				Help:      "Total number of errors",
			},
			[]string{"error"},
		),
	}
}

func Get() *Metrics {
	return metrics
}

func (m *Metrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(m.CandidatesMatchedTotal)
	reg.MustRegister(m.CandidatesPassedTotal)
	reg.MustRegister(m.CandidatesCheckedTotal)
	reg.MustRegister(m.EntriesResolvedTotal)
	reg.MustRegister(m.ResolveErrorsTotal)
	reg.MustRegister(m.ErrorsTotal)
}
