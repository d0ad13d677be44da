// Package metrics exposes requirement checks as Prometheus metrics.
//
//	obs := metrics.NewObserver(prometheus.DefaultRegisterer)
//	reg := contract.NewRegistry(contract.WithObserver(obs))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DT021/invis/pkg/contract"
)

const namespace = "invis"

// Check outcomes used as the "outcome" label value.
const (
	OutcomePassed       = "passed"
	OutcomeTypeMismatch = "type_mismatch"
	OutcomeRuleFailed   = "rule_failed"
)

// Observer counts checks per requirement and outcome. It implements
// contract.Observer.
type Observer struct {
	checks *prometheus.CounterVec
}

// NewObserver creates an Observer and registers its collectors with r.
// It panics if registration fails, like prometheus.MustRegister.
func NewObserver(r prometheus.Registerer) *Observer {
	o := &Observer{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checks_total",
				Help:      "Requirement checks by requirement and outcome.",
			},
			[]string{"requirement", "outcome"},
		),
	}
	r.MustRegister(o.checks)
	return o
}

func (o *Observer) ObserveCheck(requirement string, err error) {
	o.checks.WithLabelValues(requirement, Outcome(err)).Inc()
}

// Outcome classifies the result of a check.
func Outcome(err error) string {
	if err == nil {
		return OutcomePassed
	}
	if tm, ok := contract.AsTypeMismatch(err); ok && tm.Rule != "" {
		return OutcomeRuleFailed
	}
	return OutcomeTypeMismatch
}

// RegisterRegistry exports the number of requirements in reg as the gauge
// invis_requirements.
func RegisterRegistry(r prometheus.Registerer, reg *contract.Registry) error {
	return r.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "requirements",
			Help:      "Requirements currently registered.",
		},
		func() float64 { return float64(len(reg.Names())) },
	))
}
